package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 62)

	// No duplicate characters; every code position draws from 62 symbols.
	seen := make(map[rune]bool)
	for _, r := range Alphabet {
		assert.False(t, seen[r], "duplicate alphabet character %q", r)
		seen[r] = true
	}
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := Generate()
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "character %q outside alphabet", r)
		}
	}
}

func TestGenerate_Varies(t *testing.T) {
	codes := make(map[string]bool)
	for i := 0; i < 100; i++ {
		codes[Generate()] = true
	}
	// 100 draws from 62^6 colliding down to a handful would mean a broken
	// generator.
	assert.Greater(t, len(codes), 90)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"lowercase code", "abcdef", true},
		{"mixed code", "aB3xY9", true},
		{"too short", "abc12", false},
		{"too long", "abc1234", false},
		{"empty", "", false},
		{"hyphen", "abc-12", false},
		{"space", "abc 12", false},
		{"unicode", "abc12é", false},
		{"favicon path", "favico", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.s))
		})
	}
}

func TestGeneratedCodesAreValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.True(t, Valid(Generate()))
	}
}
