package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.List.MaxBatchSize != 57 {
		t.Errorf("max batch size = %d, want 57", cfg.List.MaxBatchSize)
	}
	if cfg.List.ActiveDatabase != "MailingList.json" {
		t.Errorf("active database = %q", cfg.List.ActiveDatabase)
	}
	if cfg.List.DefaultDatabase != "MailingList" {
		t.Errorf("default database = %q", cfg.List.DefaultDatabase)
	}
	if cfg.Import.IDColumn != "D" || cfg.Import.NameColumn != "E" {
		t.Errorf("import columns = %q/%q, want D/E", cfg.Import.IDColumn, cfg.Import.NameColumn)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.List.MaxBatchSize != 57 {
		t.Errorf("max batch size = %d, want default", cfg.List.MaxBatchSize)
	}
}

func TestLoadAppliesOverridesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
database_dir = "` + filepath.ToSlash(filepath.Join(dir, "databases")) + `"

[list]
active_database = "  Assembly  "
max_batch_size = 25

[import]
email_domain = "example.edu"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for a present file")
	}
	if cfg.List.ActiveDatabase != "Assembly.json" {
		t.Errorf("active database = %q, want Assembly.json", cfg.List.ActiveDatabase)
	}
	if cfg.List.MaxBatchSize != 25 {
		t.Errorf("max batch size = %d, want 25", cfg.List.MaxBatchSize)
	}
	if cfg.Import.EmailDomain != "example.edu" {
		t.Errorf("email domain = %q", cfg.Import.EmailDomain)
	}
	if cfg.Import.IDColumn != "D" {
		t.Errorf("id column = %q, want default D", cfg.Import.IDColumn)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero batch size", "[list]\nmax_batch_size = -3\n"},
		{"bad log format", "[logging]\nformat = \"yaml\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDatabaseFileName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Assembly", "Assembly.json"},
		{"Assembly.json", "Assembly.json"},
		{"  Assembly  ", "Assembly.json"},
		{"../escape", "escape.json"},
	}

	for _, tc := range cases {
		if got := DatabaseFileName(tc.input); got != tc.want {
			t.Errorf("DatabaseFileName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	cfg.Paths.DatabaseDir = "/tmp/databases"
	cfg.List.ActiveDatabase = "Assembly.json"

	if got := cfg.DatabasePath("Choir"); got != filepath.Join("/tmp/databases", "Choir.json") {
		t.Errorf("DatabasePath = %q", got)
	}
	if got := cfg.ActiveDatabasePath(); got != filepath.Join("/tmp/databases", "Assembly.json") {
		t.Errorf("ActiveDatabasePath = %q", got)
	}
}

func TestListDatabases(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DatabaseDir = dir

	for _, name := range []string{"Assembly.json", "Choir.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	names, err := cfg.ListDatabases()
	if err != nil {
		t.Fatalf("ListDatabases: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("names = %v, want two .json files", names)
	}
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			t.Errorf("unexpected name %q", name)
		}
	}

	cfg.Paths.DatabaseDir = filepath.Join(dir, "missing")
	names, err = cfg.ListDatabases()
	if err != nil || names != nil {
		t.Errorf("missing dir: names=%v err=%v, want nil/nil", names, err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.List.ActiveDatabase = "Choir.json"

	if err := Save(&cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("saved config not found")
	}
	if loaded.List.ActiveDatabase != "Choir.json" {
		t.Errorf("active database = %q, want Choir.json", loaded.List.ActiveDatabase)
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
