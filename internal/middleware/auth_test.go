package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "start",
			text:     "/start",
			expected: true,
		},
		{
			name:     "start with bot name",
			text:     "/start@ShelfmarkBot",
			expected: true,
		},
		{
			name:     "help",
			text:     "/help",
			expected: true,
		},
		{
			name:     "help with bot name",
			text:     "/help@ShelfmarkBot",
			expected: true,
		},
		{
			name:     "logout needs a session",
			text:     "/logout",
			expected: false,
		},
		{
			name:     "plain text",
			text:     "hello",
			expected: false,
		},
		{
			name:     "empty",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isPublicCommand(tt.text))
		})
	}
}
