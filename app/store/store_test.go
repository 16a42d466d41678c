package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVisitor(t *testing.T) {
	tests := []struct {
		name, input, expected string
	}{
		{"simple id", "abc", "abc"},
		{"upper case", "ABC-def", "abc-def"},
		{"whitespace", "  abc  ", "abc"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeVisitor(tc.input))
		})
	}
}
