package parse

import (
	"reflect"
	"testing"
)

func TestSplitEntries(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single fragment",
			input: "jane@example.com",
			want:  []string{"jane@example.com"},
		},
		{
			name:  "multiple fragments with padding",
			input: "a@x.com ;  b@x.com; c@x.com",
			want:  []string{"a@x.com", "b@x.com", "c@x.com"},
		},
		{
			name:  "trailing semicolon",
			input: "a@x.com;",
			want:  []string{"a@x.com"},
		},
		{
			name:  "empty fragments dropped",
			input: ";;a@x.com;;;b@x.com;;",
			want:  []string{"a@x.com", "b@x.com"},
		},
		{
			name:  "semicolon inside angle brackets preserved",
			input: "<a;b@x.com>; c@x.com",
			want:  []string{"<a;b@x.com>", "c@x.com"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitEntries(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitEntries(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
