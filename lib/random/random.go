// Package random holds a few functions for generating the random
// component of temporary file names.
package random

import (
	"math/rand"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base36 creates a random string of n characters drawn from [0-9a-z].
//
// The result is not cryptographically strong. Callers which rely on a
// name being fresh must pair it with an exclusive create on disk.
func Base36(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = base36[rand.Intn(len(base36))]
	}
	return string(out)
}

// String create a random string for test purposes.
//
// Do not use these for passwords.
func String(n int) string {
	const (
		vowel     = "aeiou"
		consonant = "bcdfghjklmnpqrstvwxyz"
		digit     = "0123456789"
	)
	pattern := []string{consonant, vowel, consonant, vowel, consonant, vowel, consonant, digit}
	out := make([]byte, n)
	p := 0
	for i := range out {
		source := pattern[p]
		p = (p + 1) % len(pattern)
		out[i] = source[rand.Intn(len(source))]
	}
	return string(out)
}
