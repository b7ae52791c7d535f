package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestStdinConfirmer(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"no\n", false},
		{"y\n", false},
		{"", false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		ask := stdinConfirmer(strings.NewReader(tc.input), &out)
		if got := ask("Delete? "); got != tc.want {
			t.Errorf("confirm with input %q = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "Delete? ") {
			t.Errorf("prompt not shown for input %q", tc.input)
		}
	}
}

func TestStdinConfirmerRefusesWithoutTerminal(t *testing.T) {
	file, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open devnull: %v", err)
	}
	defer file.Close()

	var out bytes.Buffer
	ask := stdinConfirmer(file, &out)
	if ask("Delete? ") {
		t.Fatal("confirmed without a terminal")
	}
	if !strings.Contains(out.String(), "pass --yes") {
		t.Errorf("refusal notice missing: %q", out.String())
	}
}
