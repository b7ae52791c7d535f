package list

import (
	"fmt"
	"io"
	"strings"
)

// CanonicalText renders the normalized storage form of an entry:
// `"Name" <email>;` when a name is present, `<email>;` otherwise.
func CanonicalText(name, email string) string {
	if name != "" {
		return fmt.Sprintf("%q <%s>;", name, email)
	}
	return fmt.Sprintf("<%s>;", email)
}

// DisplayName returns the name used in recipient-field output: first and
// last name when either is present, otherwise the raw name, otherwise empty.
func (e Entry) DisplayName() string {
	name := strings.TrimSpace(e.FirstName + " " + e.LastName)
	if name == "" {
		name = e.Name
	}
	return name
}

// RecipientLine renders one entry in the email client's recipient format.
// The trailing semicolon is suppressed on the last entry of a batch so the
// output can be pasted directly into a recipient field.
func RecipientLine(e Entry, last bool) string {
	line := strings.TrimSpace(e.DisplayName() + " <" + e.Email + ">")
	if !last {
		line += ";"
	}
	return line
}

// WriteRecipients writes a batch header followed by one recipient line per
// entry.
func WriteRecipients(w io.Writer, b Batch) error {
	if _, err := fmt.Fprintf(w, "=== Batch %d ===\n\n", b.ID); err != nil {
		return err
	}
	for i, entry := range b.Emails {
		if _, err := fmt.Fprintln(w, RecipientLine(entry, i == len(b.Emails)-1)); err != nil {
			return err
		}
	}
	return nil
}
