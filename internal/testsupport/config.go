package testsupport

import (
	"path/filepath"
	"testing"

	"mailbatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DatabaseDir = filepath.Join(base, "databases")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.List.ActiveDatabase = "Test.json"
	cfg.Import.EmailDomain = "example.edu"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}

// WithMaxBatchSize overrides the batch capacity on the test config.
func WithMaxBatchSize(size int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.List.MaxBatchSize = size
	}
}

// WithActiveDatabase sets the active database file name on the test config.
func WithActiveDatabase(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.List.ActiveDatabase = name
	}
}
