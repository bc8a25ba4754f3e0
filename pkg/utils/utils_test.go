package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"The Owl's Secret":    "The Owl's Secret",
		"  a/b\\c:d  ":        "a_b_c_d",
		"what? <now> | \"x\"": "what_ _now_ _ _x_",
		"tab\there":           "tabhere",
		"کہانی":               "کہانی",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestLimitStr(t *testing.T) {
	assert.Equal(t, "abc", LimitStr("abc", 5))
	assert.Equal(t, "ab...", LimitStr("abcdef", 2))
	assert.Equal(t, "کہ...", LimitStr("کہانی", 2))
}

func TestErrJSON(t *testing.T) {
	assert.Equal(t, map[string]any{"success": false, "error": "boom"}, ErrJSON("boom"))
}
