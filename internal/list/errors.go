package list

import "errors"

var (
	// ErrNotFound reports that the database file does not exist. Reads never
	// create a database; the caller must run `new` or `activate` first.
	ErrNotFound = errors.New("database not found")

	// ErrExists reports an attempt to create a database over an existing file.
	ErrExists = errors.New("database already exists")

	// ErrEntryNotFound reports a removal target that is not in the collection.
	ErrEntryNotFound = errors.New("entry not found")
)
