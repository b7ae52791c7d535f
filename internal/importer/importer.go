package importer

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"mailbatch/internal/list"
)

// Options selects the spreadsheet columns and the email domain used when
// synthesizing addresses.
type Options struct {
	IDColumn    string
	NameColumn  string
	EmailDomain string
}

// Candidate is one spreadsheet row prepared for insertion. Row is the
// 1-based data row number for diagnostics.
type Candidate struct {
	Row   int
	Entry list.Entry
}

// Report aggregates the outcome of applying candidates to a store.
type Report struct {
	Added   int
	Skipped int
}

var nonDigits = regexp.MustCompile(`\D+`)

// BuildEntries converts spreadsheet rows into insertion candidates. Rows
// without a usable id or name are dropped, ids are reduced to digits, and
// duplicate emails within the sheet are dropped case-insensitively (first
// occurrence wins).
func BuildEntries(headers []string, rows [][]string, opts Options, logger *slog.Logger) ([]Candidate, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if strings.TrimSpace(opts.EmailDomain) == "" {
		return nil, fmt.Errorf("email domain is required to synthesize addresses")
	}

	idCol, err := ResolveColumn(headers, opts.IDColumn)
	if err != nil {
		return nil, fmt.Errorf("id column: %w", err)
	}
	nameCol, err := ResolveColumn(headers, opts.NameColumn)
	if err != nil {
		return nil, fmt.Errorf("name column: %w", err)
	}

	seen := make(map[string]struct{})
	var candidates []Candidate
	for i, row := range rows {
		id := normalizeID(cell(row, idCol))
		name := strings.TrimSpace(cell(row, nameCol))
		if id == "" || name == "" {
			logger.Debug("skipping row without id or name", "row", i+1)
			continue
		}

		email := id + "@" + opts.EmailDomain
		folded := strings.ToLower(email)
		if _, dup := seen[folded]; dup {
			logger.Debug("skipping duplicate row", "row", i+1, "email", email)
			continue
		}
		seen[folded] = struct{}{}

		candidates = append(candidates, Candidate{Row: i + 1, Entry: list.NewEntry(name, email)})
	}
	return candidates, nil
}

// Apply inserts every candidate into the store, counting additions and
// already-present skips. The caller is responsible for saving the store.
func Apply(store *list.Store, candidates []Candidate) (Report, error) {
	var report Report
	for _, candidate := range candidates {
		outcome, err := store.Insert(candidate.Entry)
		if err != nil {
			return report, fmt.Errorf("row %d: %w", candidate.Row, err)
		}
		if outcome == list.InsertAdded {
			report.Added++
		} else {
			report.Skipped++
		}
	}
	return report, nil
}

// CountExisting reports how many candidates are already present in the
// store without mutating it; used by dry runs.
func CountExisting(store *list.Store, candidates []Candidate) int {
	existing := 0
	for _, candidate := range candidates {
		if store.Exists(candidate.Entry.Email) {
			existing++
		}
	}
	return existing
}

// normalizeID strips everything but digits from a raw id cell. Spreadsheet
// exports routinely render ids as floats ("60123.0") or with stray spaces.
func normalizeID(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	// "60123.0" would keep a trailing zero that is part of the float
	// rendering, not the id; trim the fractional part first.
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		digits = nonDigits.ReplaceAllString(raw[:dot], "")
	}
	return digits
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
