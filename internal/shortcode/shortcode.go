package shortcode

import (
	"math/rand/v2"
	"strings"
)

const (
	// Alphabet is the character set short codes are drawn from
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the fixed short code length. 62^6 gives roughly 56.8
	// billion combinations.
	Length = 6
	// MaxAttempts bounds the allocation retry loop
	MaxAttempts = 10
)

// Generate returns a fresh random candidate short code. Uniqueness is the
// caller's concern.
func Generate() string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(Alphabet[rand.IntN(len(Alphabet))])
	}
	return b.String()
}

// Valid reports whether s has the shape of a short code. It lets the
// redirect path skip lookups for paths that can never resolve.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
