package list

import "time"

// TimestampLayout is the format used for the created and last_modified
// fields of the persisted document.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is a single contact record. FullEntry caches the canonical
// `"Name" <email>;` rendering and can be re-derived from Name and Email at
// any time.
type Entry struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	FullEntry   string `json:"full_entry"`
	FirstName   string `json:"first_name"`
	MiddleNames string `json:"middle_names"`
	LastName    string `json:"last_name"`
}

// Batch is an ordered, capacity-bounded group of entries. ID is the 1-based
// position of the batch within the collection.
type Batch struct {
	ID     int     `json:"id"`
	Emails []Entry `json:"emails"`
}

// Collection is a whole mailing-list database.
type Collection struct {
	Name         string  `json:"name"`
	Created      string  `json:"created"`
	LastModified string  `json:"last_modified"`
	Batches      []Batch `json:"batches"`
}

// NewEntry builds an Entry from a display name (may be empty) and an email
// address, deriving the name components and the canonical text.
func NewEntry(name, email string) Entry {
	first, middle, last := SplitName(name)
	return Entry{
		Email:       email,
		Name:        name,
		FullEntry:   CanonicalText(name, email),
		FirstName:   first,
		MiddleNames: middle,
		LastName:    last,
	}
}

// NewCollection returns an empty collection stamped with the current time.
func NewCollection(name string, now time.Time) *Collection {
	stamp := now.Format(TimestampLayout)
	return &Collection{
		Name:         name,
		Created:      stamp,
		LastModified: stamp,
		Batches:      []Batch{},
	}
}

// TotalEntries counts entries across all batches.
func (c *Collection) TotalEntries() int {
	total := 0
	for _, batch := range c.Batches {
		total += len(batch.Emails)
	}
	return total
}

// Flatten returns every entry in collection order.
func (c *Collection) Flatten() []Entry {
	entries := make([]Entry, 0, c.TotalEntries())
	for _, batch := range c.Batches {
		entries = append(entries, batch.Emails...)
	}
	return entries
}
