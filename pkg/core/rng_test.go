package core

import "testing"

func TestRNGReseedReplays(t *testing.T) {
	r := NewRNG(1337)
	first := make([]int, 32)
	for i := range first {
		first[i] = r.IntN(100)
	}
	r.Reseed(1337)
	for i, want := range first {
		if got := r.IntN(100); got != want {
			t.Fatalf("draw %d = %d after reseed, want %d", i, got, want)
		}
	}
}
