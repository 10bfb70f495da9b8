package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTPCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, code)
		}
		seen[code] = true
	}
	// 50 draws from a million codes colliding every time would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestGenerateOTPCodeZeroLength(t *testing.T) {
	code, err := GenerateOTPCode(0)
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"full number", "+917417119014", "*********9014"},
		{"bare digits", "9876543210", "******3210"},
		{"too short to mask", "1234", "1234"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.phone))
		})
	}
}

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"e164", "+917417119014", "917417119014"},
		{"spaced and dashed", "+91 74171-19014", "917417119014"},
		{"already clean", "917417119014", "917417119014"},
		{"no digits", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDigits(tt.in))
		})
	}
}
