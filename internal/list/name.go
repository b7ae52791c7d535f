package list

import "strings"

// SplitName decomposes a free-text full name into first, middle, and last
// components by counting whitespace-separated tokens: one token is a first
// name, two are first and last, three or more put everything between the
// first and last token into the middle component.
//
// This is a deliberate approximation with no cultural name-order awareness;
// the components only feed the recipient-field rendering.
func SplitName(fullName string) (first, middle, last string) {
	name := strings.Trim(fullName, " '\"")
	if name == "" {
		return "", "", ""
	}

	parts := strings.Fields(name)
	switch len(parts) {
	case 1:
		return parts[0], "", ""
	case 2:
		return parts[0], "", parts[1]
	default:
		return parts[0], strings.Join(parts[1:len(parts)-1], " "), parts[len(parts)-1]
	}
}
