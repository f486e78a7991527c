// Package ident generates short opaque identifiers for locally created
// records. IDs are random base-36 strings, uppercased for readability.
// Not cryptographically secure; collisions are accepted as negligible
// for a single-user dataset.
package ident

import (
	"math/rand"
	"strings"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultLength is the identifier length used for store records.
const DefaultLength = 8

// New returns a random identifier of the given length. Lengths below 1
// fall back to DefaultLength.
func New(length int) string {
	if length < 1 {
		length = DefaultLength
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Default returns a new identifier of DefaultLength.
func Default() string {
	return New(DefaultLength)
}
