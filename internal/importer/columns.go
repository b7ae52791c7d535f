package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	letterSpec = regexp.MustCompile(`^[A-Za-z]+$`)
	indexSpec  = regexp.MustCompile(`^\d+$`)
)

// ResolveColumn maps a user-supplied column spec to a zero-based column
// index. Resolution order: exact header match, case-insensitive header
// match, Excel-style letter (D, AA), zero-based numeric index. Header
// matches win over letters so a sheet with a literal "D" header stays
// addressable.
func ResolveColumn(headers []string, spec string) (int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, fmt.Errorf("column spec is empty")
	}

	for i, header := range headers {
		if strings.TrimSpace(header) == spec {
			return i, nil
		}
	}
	for i, header := range headers {
		if strings.EqualFold(strings.TrimSpace(header), spec) {
			return i, nil
		}
	}

	if letterSpec.MatchString(spec) {
		idx := excelColumnIndex(spec)
		if idx >= len(headers) {
			return 0, fmt.Errorf("column letter %q (index %d) is outside the sheet range", spec, idx)
		}
		return idx, nil
	}

	if indexSpec.MatchString(spec) {
		idx, err := strconv.Atoi(spec)
		if err != nil || idx >= len(headers) {
			return 0, fmt.Errorf("column index %s is outside the sheet range", spec)
		}
		return idx, nil
	}

	return 0, fmt.Errorf("could not resolve column %q; use a header name, letter, or index", spec)
}

// excelColumnIndex converts an Excel column letter to a zero-based index:
// A=0, Z=25, AA=26.
func excelColumnIndex(column string) int {
	index := 0
	for _, ch := range strings.ToUpper(column) {
		index = index*26 + int(ch-'A') + 1
	}
	return index - 1
}
