package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassCharsets(t *testing.T) {
	tests := []struct {
		class   Class
		name    string
		charset string
	}{
		{Digits, "digits", "0123456789"},
		{Lowercase, "lowercase", "abcdefghijklmnopqrstuvwxyz"},
		{Uppercase, "uppercase", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{Special, "special", "!?#$_%&*+,./\\:;^~[]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.class.String())
			assert.Equal(t, tc.charset, tc.class.Charset())

			p := newPool(tc.class)
			assert.Equal(t, tc.class, p.Class())
			assert.Equal(t, len(tc.charset), p.Len())
			assert.Equal(t, tc.charset, p.String())
		})
	}
}

func TestClassCharsetsAreUnique(t *testing.T) {
	seen := map[rune]Class{}
	for _, c := range AllClasses() {
		for _, r := range c.Charset() {
			prev, dup := seen[r]
			assert.Falsef(t, dup, "%q appears in both %s and %s", r, prev, c)
			seen[r] = c
		}
	}
	assert.Len(t, seen, 10+26+26+19)
}

func TestUnknownClass(t *testing.T) {
	c := Class(9)
	assert.Equal(t, "class(9)", c.String())
	assert.Equal(t, "", c.Charset())
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in   string
		want Class
	}{
		{"digits", Digits},
		{"integer", Digits},
		{"i", Digits},
		{"Lowercase", Lowercase},
		{"lc", Lowercase},
		{" l ", Lowercase},
		{"UPPERCASE", Uppercase},
		{"uc", Uppercase},
		{"special", Special},
		{"specialchar", Special},
		{"s", Special},
	}

	for _, tc := range tests {
		got, err := ParseClass(tc.in)
		require.NoError(t, err, "ParseClass(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseClass(%q)", tc.in)
	}
}

func TestParseClass_Unknown(t *testing.T) {
	_, err := ParseClass("emoji")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown character class "emoji"`)
}
