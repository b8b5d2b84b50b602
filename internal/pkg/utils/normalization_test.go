package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Not At All", "not at all"},
		{"trims", "  several days  ", "several days"},
		{"collapses internal runs", "more  than\thalf   the days", "more than half the days"},
		{"blank collapses to empty", "   \t ", ""},
		{"already normalized", "nearly every day", "nearly every day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAnswer(tt.input))
		})
	}
}

func TestPlatform(t *testing.T) {
	assert.Equal(t, "gforms", Platform("gforms:abc123"))
	assert.Equal(t, "typeform", Platform("typeform:x:y"))
	assert.Equal(t, "", Platform("plainform"))
	assert.Equal(t, "", Platform(":leading"))
}

func TestSafeFileComponent(t *testing.T) {
	assert.Equal(t, "gforms_abc123", SafeFileComponent("gforms:abc123"))
	assert.Equal(t, "a_b_c", SafeFileComponent("a/b:c"))
	assert.Equal(t, "plain", SafeFileComponent("plain"))
}
