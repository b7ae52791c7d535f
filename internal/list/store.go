package list

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// InsertOutcome reports what Insert did with an entry.
type InsertOutcome int

const (
	// InsertAdded means the entry was placed into a batch.
	InsertAdded InsertOutcome = iota
	// InsertDuplicate means the email already exists and nothing changed.
	InsertDuplicate
)

// location addresses an entry by batch index and offset within the batch.
type location struct {
	batch int
	entry int
}

// Store manages one mailing-list collection loaded from its JSON document.
// Mutations happen in memory; Save writes the document back.
type Store struct {
	path   string
	limit  int
	col    *Collection
	index  map[string]location
	logger *slog.Logger
	now    func() time.Time
}

// Create writes a new, empty database document at path. It refuses to
// overwrite an existing file.
func Create(path, name string, now time.Time) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database %q: %w", filepath.Base(path), ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return writeDocument(path, NewCollection(name, now))
}

// Open loads the collection at path. limit is the batch capacity used for
// subsequent inserts and rebalancing. The document is validated on load:
// empty emails and case-insensitive duplicates are rejected, and batch ids
// are renumbered if a hand-edited file left them non-contiguous.
func Open(path string, limit int, logger *slog.Logger) (*Store, error) {
	if limit < 1 {
		return nil, fmt.Errorf("batch capacity must be at least 1, got %d", limit)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("database %q: %w", filepath.Base(path), ErrNotFound)
		}
		return nil, fmt.Errorf("read database: %w", err)
	}

	col := &Collection{}
	if err := json.Unmarshal(data, col); err != nil {
		return nil, fmt.Errorf("parse database %q: %w", filepath.Base(path), err)
	}

	store := &Store{
		path:   path,
		limit:  limit,
		col:    col,
		logger: logger,
		now:    time.Now,
	}
	if err := store.validate(); err != nil {
		return nil, fmt.Errorf("database %q: %w", filepath.Base(path), err)
	}
	store.reindex()
	return store, nil
}

// validate checks the loaded document against the collection invariants and
// silently repairs non-contiguous batch ids.
func (s *Store) validate() error {
	seen := make(map[string]struct{})
	for i := range s.col.Batches {
		batch := &s.col.Batches[i]
		if len(batch.Emails) == 0 {
			return fmt.Errorf("batch %d is empty", batch.ID)
		}
		for _, entry := range batch.Emails {
			if strings.TrimSpace(entry.Email) == "" {
				return fmt.Errorf("batch %d contains an entry without an email address", batch.ID)
			}
			folded := foldEmail(entry.Email)
			if _, dup := seen[folded]; dup {
				return fmt.Errorf("duplicate email %q", entry.Email)
			}
			seen[folded] = struct{}{}
		}
		if batch.ID != i+1 {
			s.logger.Warn("renumbering batch with out-of-sequence id",
				"batch_id", batch.ID, "position", i+1)
			batch.ID = i + 1
		}
	}
	return nil
}

// reindex rebuilds the case-folded email index from the collection.
func (s *Store) reindex() {
	s.index = make(map[string]location, s.col.TotalEntries())
	for bi, batch := range s.col.Batches {
		for ei, entry := range batch.Emails {
			s.index[foldEmail(entry.Email)] = location{batch: bi, entry: ei}
		}
	}
}

// Collection exposes the loaded collection for read-only presentation.
func (s *Store) Collection() *Collection {
	return s.col
}

// Limit returns the batch capacity the store was opened with.
func (s *Store) Limit() int {
	return s.limit
}

// Exists reports case-insensitive membership of email across all batches.
func (s *Store) Exists(email string) bool {
	_, ok := s.index[foldEmail(email)]
	return ok
}

// Insert places entry into the last batch if it has room, or opens a new
// batch with the next sequence number. Entries whose email already exists
// (case-insensitively) are rejected without mutation.
func (s *Store) Insert(entry Entry) (InsertOutcome, error) {
	if strings.TrimSpace(entry.Email) == "" {
		return InsertDuplicate, errors.New("entry has no email address")
	}
	if s.Exists(entry.Email) {
		return InsertDuplicate, nil
	}

	last := len(s.col.Batches) - 1
	if last >= 0 && len(s.col.Batches[last].Emails) < s.limit {
		s.col.Batches[last].Emails = append(s.col.Batches[last].Emails, entry)
		s.index[foldEmail(entry.Email)] = location{batch: last, entry: len(s.col.Batches[last].Emails) - 1}
		return InsertAdded, nil
	}

	s.col.Batches = append(s.col.Batches, Batch{
		ID:     len(s.col.Batches) + 1,
		Emails: []Entry{entry},
	})
	s.index[foldEmail(entry.Email)] = location{batch: len(s.col.Batches) - 1, entry: 0}
	return InsertAdded, nil
}

// Remove deletes the entry with the given email (case-insensitive). A batch
// left empty is dropped and the following batches are renumbered so ids stay
// contiguous from 1. The removed entry is returned for reporting.
func (s *Store) Remove(email string) (Entry, error) {
	loc, ok := s.index[foldEmail(email)]
	if !ok {
		return Entry{}, fmt.Errorf("email %q: %w", email, ErrEntryNotFound)
	}

	batch := &s.col.Batches[loc.batch]
	removed := batch.Emails[loc.entry]
	batch.Emails = append(batch.Emails[:loc.entry], batch.Emails[loc.entry+1:]...)

	if len(batch.Emails) == 0 {
		droppedID := batch.ID
		s.col.Batches = append(s.col.Batches[:loc.batch], s.col.Batches[loc.batch+1:]...)
		for i := range s.col.Batches {
			s.col.Batches[i].ID = i + 1
		}
		s.logger.Info("dropped empty batch", "batch_id", droppedID, "remaining", len(s.col.Batches))
	}

	s.reindex()
	return removed, nil
}

// Optimize flattens all entries in collection order and re-chunks them into
// consecutive batches of exactly the capacity (the final batch may be
// smaller), renumbering from 1. Running it twice yields the same boundaries
// because order and count are unchanged. It returns the batch counts before
// and after.
func (s *Store) Optimize() (before, after int) {
	before = len(s.col.Batches)
	entries := s.col.Flatten()

	batches := make([]Batch, 0, (len(entries)+s.limit-1)/s.limit)
	for start := 0; start < len(entries); start += s.limit {
		end := start + s.limit
		if end > len(entries) {
			end = len(entries)
		}
		chunk := make([]Entry, end-start)
		copy(chunk, entries[start:end])
		batches = append(batches, Batch{ID: len(batches) + 1, Emails: chunk})
	}

	s.col.Batches = batches
	s.reindex()
	return before, len(batches)
}

// Stats is a read-only summary of the collection.
type Stats struct {
	Name         string
	LastModified string
	TotalEntries int
	BatchCounts  []int
}

// Stats summarizes the collection without mutating it.
func (s *Store) Stats() Stats {
	counts := make([]int, 0, len(s.col.Batches))
	for _, batch := range s.col.Batches {
		counts = append(counts, len(batch.Emails))
	}
	return Stats{
		Name:         s.col.Name,
		LastModified: s.col.LastModified,
		TotalEntries: s.col.TotalEntries(),
		BatchCounts:  counts,
	}
}

// Search returns all entries whose email or canonical text matches pattern,
// compiled as a case-insensitive regular expression.
func (s *Store) Search(pattern string) ([]Entry, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	var matches []Entry
	for _, entry := range s.col.Flatten() {
		if re.MatchString(entry.Email) || re.MatchString(entry.FullEntry) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Save bumps last_modified and writes the document back to disk. The write
// goes through a temporary file so a failure leaves the previous document
// intact.
func (s *Store) Save() error {
	s.col.LastModified = s.now().Format(TimestampLayout)
	return writeDocument(s.path, s.col)
}

func writeDocument(path string, col *Collection) error {
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mailbatch-*.json")
	if err != nil {
		return fmt.Errorf("create temp database file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close database file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace database file: %w", err)
	}
	return nil
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
