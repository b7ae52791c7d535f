package testsupport

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"mailbatch/internal/config"
	"mailbatch/internal/list"
	"mailbatch/internal/logging"
)

// MustCreateDatabase creates the active database file for tests.
func MustCreateDatabase(t testing.TB, cfg *config.Config) {
	t.Helper()

	path := cfg.ActiveDatabasePath()
	name := strings.TrimSuffix(cfg.List.ActiveDatabase, ".json")
	if err := list.Create(path, name, time.Now()); err != nil {
		t.Fatalf("list.Create: %v", err)
	}
}

// MustOpenStore opens the active database for tests, creating it first.
func MustOpenStore(t testing.TB, cfg *config.Config) *list.Store {
	t.Helper()

	MustCreateDatabase(t, cfg)
	store, err := list.Open(cfg.ActiveDatabasePath(), cfg.List.MaxBatchSize, logging.NewNop())
	if err != nil {
		t.Fatalf("list.Open: %v", err)
	}
	return store
}

// SeedEntries inserts count distinct entries into the store.
func SeedEntries(t testing.TB, store *list.Store, count int) {
	t.Helper()

	for i := 0; i < count; i++ {
		entry := list.NewEntry(fmt.Sprintf("Person %d", i), fmt.Sprintf("person%d@example.com", i))
		outcome, err := store.Insert(entry)
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if outcome != list.InsertAdded {
			t.Fatalf("expected entry %d to be added", i)
		}
	}
}
