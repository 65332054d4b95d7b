package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"offer_type\": \"cashback\"}\n```",
			expected: `{"offer_type": "cashback"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"offer_type\": \"cashback\"}\n```",
			expected: `{"offer_type": "cashback"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"matching_ids\": [1, 2]}\n```",
			expected: `{"matching_ids": [1, 2]}`,
		},
		{
			name:     "plain JSON",
			input:    `{"matching_ids": []}`,
			expected: `{"matching_ids": []}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"value\": 20}\n  ",
			expected: `{"value": 20}`,
		},
		{
			name:     "inner content preserved verbatim",
			input:    "```json\n{\"description\": \"use ``` carefully\", \"value\": 5}\n```",
			expected: "{\"description\": \"use ``` carefully\", \"value\": 5}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// Stripping must be idempotent: running it over an already-stripped string
// yields the same string.
func TestCleanJSONBlock_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"key\": \"value\"}\n```",
		"```\n[1, 2, 3]\n```",
		`{"key": "value"}`,
		"",
	}

	for _, input := range inputs {
		once := CleanJSONBlock(input)
		twice := CleanJSONBlock(once)
		if once != twice {
			t.Errorf("CleanJSONBlock not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
