package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{10}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "id repetido: %s", id)
		seen[id] = true
	}
}

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name:     "Struct - deve indentar com tabs",
			input:    struct{ Name string `json:"name"` }{Name: "ad"},
			expected: "{\n\t\"name\": \"ad\"\n}",
		},
		{
			name:     "JSON bruto - deve reformatar",
			input:    []byte(`{"a":1}`),
			expected: "{\n\t\"a\": 1\n}",
		},
		{
			name:     "Bytes inválidos - deve devolver o texto original",
			input:    []byte(`not json`),
			expected: "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.input))
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	assert.Equal(t, 180*time.Second, NewHTTPClient(0).Timeout)
	assert.Equal(t, 5*time.Second, NewHTTPClient(5*time.Second).Timeout)
}
