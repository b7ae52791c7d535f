package importer

import "testing"

func TestResolveColumn(t *testing.T) {
	headers := []string{"Term", "Course", "Section", "ID", "Student Name"}

	cases := []struct {
		spec string
		want int
	}{
		{"ID", 3},              // exact header
		{"id", 3},              // case-insensitive header
		{"Student Name", 4},    // header with spaces
		{"D", 3},               // Excel letter
		{"e", 4},               // lowercase Excel letter
		{"0", 0},               // numeric index
		{"4", 4},               // numeric index
		{"  Course  ", 1},      // padded spec
	}

	for _, tc := range cases {
		got, err := ResolveColumn(headers, tc.spec)
		if err != nil {
			t.Errorf("ResolveColumn(%q): %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveColumn(%q) = %d, want %d", tc.spec, got, tc.want)
		}
	}
}

func TestResolveColumnHeaderWinsOverLetter(t *testing.T) {
	// A literal "D" header must take priority over the Excel letter D.
	headers := []string{"D", "Name"}
	got, err := ResolveColumn(headers, "D")
	if err != nil {
		t.Fatalf("ResolveColumn: %v", err)
	}
	if got != 0 {
		t.Errorf("ResolveColumn(D) = %d, want 0", got)
	}
}

func TestResolveColumnErrors(t *testing.T) {
	headers := []string{"ID", "Name"}

	for _, spec := range []string{"", "Z", "9", "!!"} {
		if _, err := ResolveColumn(headers, spec); err == nil {
			t.Errorf("ResolveColumn(%q): expected error", spec)
		}
	}
}

func TestExcelColumnIndex(t *testing.T) {
	cases := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"D", 3},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
	}

	for _, tc := range cases {
		if got := excelColumnIndex(tc.column); got != tc.want {
			t.Errorf("excelColumnIndex(%q) = %d, want %d", tc.column, got, tc.want)
		}
	}
}
