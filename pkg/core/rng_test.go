package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-3); got != 0 {
		t.Fatalf("IntN(-3) = %d, want 0", got)
	}
}

func TestPickEmpty(t *testing.T) {
	if got := Pick(NewRNG(1), 0); got != -1 {
		t.Fatalf("Pick on empty = %d, want -1", got)
	}
	for i := 0; i < 16; i++ {
		if got := Pick(NewRNG(int64(i)), 3); got < 0 || got >= 3 {
			t.Fatalf("Pick out of range: %d", got)
		}
	}
}
