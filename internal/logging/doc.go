// Package logging assembles the structured slog loggers used across
// mailbatch commands.
//
// It owns the console and JSON handler construction, centralizes level and
// output plumbing, and provides a no-op logger for tests. Prefer these
// constructors over hand-rolled slog setup so every command emits log lines
// with the same shape.
package logging
