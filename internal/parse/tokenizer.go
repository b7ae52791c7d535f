package parse

import "strings"

// SplitEntries splits input into candidate entry fragments on semicolons,
// ignoring semicolons that appear inside angle brackets so an address like
// `<a;b@x.com>` stays whole. Fragments are trimmed and empty ones dropped.
//
// Unbalanced brackets leave the in-bracket flag stuck for the rest of the
// input, which can under- or over-segment. The tokenizer never fails; that
// degradation is accepted.
func SplitEntries(input string) []string {
	var fragments []string
	var current strings.Builder
	inBrackets := false

	for _, ch := range input {
		switch ch {
		case '<':
			inBrackets = true
		case '>':
			inBrackets = false
		}
		if ch == ';' && !inBrackets {
			if fragment := strings.TrimSpace(current.String()); fragment != "" {
				fragments = append(fragments, fragment)
			}
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}

	if fragment := strings.TrimSpace(current.String()); fragment != "" {
		fragments = append(fragments, fragment)
	}
	return fragments
}
