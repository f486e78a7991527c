package ident

import (
	"strings"
	"testing"
)

func TestNewLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"default length", DefaultLength, 8},
		{"explicit length", 12, 12},
		{"single character", 1, 1},
		{"zero falls back to default", 0, DefaultLength},
		{"negative falls back to default", -3, DefaultLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.length)
			if len(got) != tt.want {
				t.Errorf("New(%d) length = %d, want %d", tt.length, len(got), tt.want)
			}
		})
	}
}

func TestNewAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := New(16)
		for _, c := range id {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("New() produced character %q outside base-36 alphabet", c)
			}
		}
	}
}

func TestDefaultUniqueness(t *testing.T) {
	// Not a collision-resistance guarantee, just a sanity check that the
	// generator is not returning a constant.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Default()] = true
	}
	if len(seen) < 990 {
		t.Errorf("got %d unique ids out of 1000", len(seen))
	}
}
