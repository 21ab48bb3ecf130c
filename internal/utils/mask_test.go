package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaskSensitive covers the masking rules for credential-looking keys.
func TestMaskSensitive(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{
			name:     "api key is masked",
			key:      "API_KEY",
			value:    "ghp_1234567890abcf9a",
			expected: "ghp...f9a",
		},
		{
			name:     "token lowercase is masked",
			key:      "session_token",
			value:    "abcdefghijklmnop",
			expected: "abc...nop",
		},
		{
			name:     "secret is masked",
			key:      "CLIENT_SECRET",
			value:    "s3cr3tv4lu3s",
			expected: "s3c...u3s",
		},
		{
			name:     "password is masked",
			key:      "DB_PASSWORD",
			value:    "correcthorsebattery",
			expected: "cor...ery",
		},
		{
			name:     "short sensitive value stays intact",
			key:      "API_KEY",
			value:    "short",
			expected: "short",
		},
		{
			name:     "ten characters is the threshold",
			key:      "API_KEY",
			value:    "0123456789",
			expected: "0123456789",
		},
		{
			name:     "non-sensitive key stays intact",
			key:      "COMMAND",
			value:    "npx --yes something-long",
			expected: "npx --yes something-long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskSensitive(tt.key, tt.value))
		})
	}
}
