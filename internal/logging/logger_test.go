package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"  WARN  ", slog.LevelWarn},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.input); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("saved database", "entries", 42, "name", "Test List")

	line := buf.String()
	if !strings.Contains(line, " INFO saved database") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "entries=42") {
		t.Errorf("int attr missing: %q", line)
	}
	if !strings.Contains(line, `name="Test List"`) {
		t.Errorf("spaced string not quoted: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, lvl))

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record not filtered: %q", out)
	}
	if !strings.Contains(out, "WARN kept") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, lvl)).
		WithGroup("import").With("sheet", "roster")

	logger.Info("loaded", "rows", 3)

	line := buf.String()
	if !strings.Contains(line, "import.sheet=roster") {
		t.Errorf("grouped attr missing: %q", line)
	}
	if !strings.Contains(line, "import.rows=3") {
		t.Errorf("grouped record attr missing: %q", line)
	}
}

func TestJSONHandlerKeys(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, lvl))

	logger.Warn("low capacity", "free", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if record["msg"] != "low capacity" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["level"] != "warn" {
		t.Errorf("level = %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("ts key missing")
	}
	if record["free"] != float64(2) {
		t.Errorf("free = %v", record["free"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
