package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text passes through",
			input:    "List all organizations",
			expected: "List all organizations",
		},
		{
			name:     "only the first line survives",
			input:    "List all organizations\nwith extra detail\nand more",
			expected: "List all organizations",
		},
		{
			name:     "double quote gets a triple backslash",
			input:    `say "hello"`,
			expected: `say \\\"hello\\\"`,
		},
		{
			name:     "backtick gets a triple backslash",
			input:    "run `deploy` first",
			expected: "run \\\\\\`deploy\\\\\\` first",
		},
		{
			name:     "brackets get a double backslash",
			input:    "values [dev, prod]",
			expected: `values \\[dev, prod\\]`,
		},
		{
			name:     "unicode passes through unchanged",
			input:    "déployer l'application 🚀",
			expected: "déployer l'application 🚀",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIsNotIdempotent(t *testing.T) {
	// Callers sanitize exactly once, at catalog build time. Running the
	// sanitizer twice escalates the escaping, which is why nothing
	// downstream is allowed to re-sanitize.
	once := Sanitize(`a "quote"`)
	twice := Sanitize(once)
	assert.NotEqual(t, once, twice)
}
