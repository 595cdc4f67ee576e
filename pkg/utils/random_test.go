package utils

import "testing"

func TestRangeBetween(t *testing.T) {
	rng := NewRand(42)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		v := RangeBetween(rng, 0, 5)
		if v < 0 || v >= 5 {
			t.Fatalf("Expected value in [0, 5), got %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected all 5 values to appear, got %d distinct", len(seen))
	}
}

func TestRangeBetweenEmptyRange(t *testing.T) {
	rng := NewRand(1)
	if v := RangeBetween(rng, 3, 3); v != 3 {
		t.Errorf("Expected 3 for empty range, got %d", v)
	}
}

func TestNewRandIsDeterministicForSeed(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 20; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("Expected identical sequences, diverged at %d", i)
		}
	}
}
