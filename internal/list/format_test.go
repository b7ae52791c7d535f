package list

import (
	"strings"
	"testing"
)

func TestCanonicalText(t *testing.T) {
	if got := CanonicalText("Jane Public", "jane@example.com"); got != `"Jane Public" <jane@example.com>;` {
		t.Errorf("with name: %q", got)
	}
	if got := CanonicalText("", "jane@example.com"); got != "<jane@example.com>;" {
		t.Errorf("without name: %q", got)
	}
}

func TestDisplayNameFallsBackToRawName(t *testing.T) {
	entry := NewEntry("Jane Q. Public", "jane@example.com")
	if got := entry.DisplayName(); got != "Jane Public" {
		t.Errorf("DisplayName = %q, want %q", got, "Jane Public")
	}

	// A hand-edited document may carry a name without components.
	entry = Entry{Name: "Madonna", Email: "m@example.com"}
	if got := entry.DisplayName(); got != "Madonna" {
		t.Errorf("DisplayName = %q, want Madonna", got)
	}

	entry = Entry{Email: "anon@example.com"}
	if got := entry.DisplayName(); got != "" {
		t.Errorf("DisplayName = %q, want empty", got)
	}
}

func TestRecipientLineSuppressesFinalSemicolon(t *testing.T) {
	entry := NewEntry("Jane Public", "jane@example.com")

	if got := RecipientLine(entry, false); got != "Jane Public <jane@example.com>;" {
		t.Errorf("non-last: %q", got)
	}
	if got := RecipientLine(entry, true); got != "Jane Public <jane@example.com>" {
		t.Errorf("last: %q", got)
	}
}

func TestWriteRecipients(t *testing.T) {
	batch := Batch{
		ID: 3,
		Emails: []Entry{
			NewEntry("Jane Public", "jane@example.com"),
			NewEntry("", "bob@example.com"),
		},
	}

	var buf strings.Builder
	if err := WriteRecipients(&buf, batch); err != nil {
		t.Fatalf("WriteRecipients: %v", err)
	}

	want := "=== Batch 3 ===\n\n" +
		"Jane Public <jane@example.com>;\n" +
		"<bob@example.com>\n"
	if buf.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", buf.String(), want)
	}
}
