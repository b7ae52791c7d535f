package parse

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"mailbatch/internal/list"
)

// emailPatternCore is the syntactic email check applied to every parsed
// entry. Deliverability is out of scope; this only guards the wire format.
const emailPatternCore = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var (
	nameEmailPattern  = regexp.MustCompile(`^(.*?)\s*<(` + emailPatternCore + `)>$`)
	angleEmailPattern = regexp.MustCompile(`^<(` + emailPatternCore + `)>$`)
	plainEmailPattern = regexp.MustCompile(`^(` + emailPatternCore + `)$`)
)

// Result carries the entries parsed from one input string together with the
// fragments that matched no known format.
type Result struct {
	Entries []list.Entry
	Skipped []string
}

// Entries tokenizes input and classifies each fragment against the known
// formats, in order: `Name <email>`, `<email>`, bare email. Unparseable
// fragments are logged and collected in Result.Skipped instead of failing
// the parse. Every returned entry has a non-empty email matching the core
// pattern.
func Entries(input string, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var result Result
	for _, fragment := range SplitEntries(input) {
		entry, ok := parseFragment(fragment)
		if !ok {
			logger.Warn("skipping unparseable entry", "fragment", fragment)
			result.Skipped = append(result.Skipped, fragment)
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}

func parseFragment(fragment string) (list.Entry, bool) {
	cleaned := strings.Trim(fragment, " '\"")

	if m := nameEmailPattern.FindStringSubmatch(cleaned); m != nil {
		name := strings.Trim(m[1], " '\"")
		return list.NewEntry(name, strings.TrimSpace(m[2])), true
	}
	if m := angleEmailPattern.FindStringSubmatch(cleaned); m != nil {
		return list.NewEntry("", strings.TrimSpace(m[1])), true
	}
	if m := plainEmailPattern.FindStringSubmatch(cleaned); m != nil {
		return list.NewEntry("", strings.TrimSpace(m[1])), true
	}
	return list.Entry{}, false
}
