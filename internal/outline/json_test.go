package outline

import (
	"errors"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare array",
			input:    `[{"title":"a"}]`,
			expected: `[{"title":"a"}]`,
		},
		{
			name:     "conversational preamble",
			input:    "Sure! Here is your outline:\n[{\"title\":\"a\"}]",
			expected: `[{"title":"a"}]`,
		},
		{
			name:     "trailing commentary",
			input:    `[{"title":"a"}] Let me know if you want changes.`,
			expected: `[{"title":"a"}]`,
		},
		{
			name:     "markdown fence",
			input:    "```json\n[{\"title\":\"a\"}]\n```",
			expected: `[{"title":"a"}]`,
		},
		{
			name:     "nested arrays",
			input:    `before [[1,2],[3,[4]]] after`,
			expected: `[[1,2],[3,[4]]]`,
		},
		{
			name:     "brackets inside string values",
			input:    `[{"title":"array [syntax] in Go"}]`,
			expected: `[{"title":"array [syntax] in Go"}]`,
		},
		{
			name:     "escaped quotes inside strings",
			input:    `[{"title":"she said \"use ]\" loudly"}]`,
			expected: `[{"title":"she said \"use ]\" loudly"}]`,
		},
		{
			name:     "unbalanced first bracket, balanced later array",
			input:    `broken [ fragment ... text [1,2,3]`,
			expected: `[1,2,3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONArray(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtractJSONArrayRecoversLaterArray(t *testing.T) {
	// The first bracket never closes because a string swallows the rest of
	// the text; the scan must fall back to the next candidate.
	input := `[ "unterminated string... then elsewhere: ` + "\n" + `and [1,2]`
	got, err := ExtractJSONArray(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "[1,2]" {
		t.Errorf("Expected fallback to [1,2], got %q", got)
	}
}

func TestExtractJSONArrayFailures(t *testing.T) {
	for _, input := range []string{
		"",
		"no array here at all",
		"[1, 2, 3",
		`{"title": "an object, not an array"}`,
	} {
		if _, err := ExtractJSONArray(input); !errors.Is(err, ErrNoJSONArray) {
			t.Errorf("Expected ErrNoJSONArray for %q, got %v", input, err)
		}
	}
}
