package engine

import (
	"math/rand"
	"testing"
)

func TestBagSeventyDrawsAreFair(t *testing.T) {
	bag := NewBag(rand.NewSource(42))

	counts := make(map[PieceKind]int)
	for i := 0; i < 70; i++ {
		counts[bag.Next()]++
	}

	if len(counts) != 7 {
		t.Fatalf("expected all 7 kinds drawn, got %d", len(counts))
	}
	for kind, n := range counts {
		if n != 10 {
			t.Errorf("kind %s drawn %d times in 70 draws, want 10", kind, n)
		}
	}
}

func TestBagAlignedWindowsContainEachKindOnce(t *testing.T) {
	bag := NewBag(rand.NewSource(7))

	for window := 0; window < 10; window++ {
		seen := make(map[PieceKind]bool)
		for i := 0; i < 7; i++ {
			kind := bag.Next()
			if seen[kind] {
				t.Fatalf("window %d: kind %s repeated within one bag", window, kind)
			}
			seen[kind] = true
		}
	}
}

func TestBagPermutationsVary(t *testing.T) {
	// Statistical check: consecutive bags must not all be the same
	// permutation. 30 identical bags from a uniform shuffle is (1/5040)^29.
	bag := NewBag(rand.NewSource(99))

	draw := func() [7]PieceKind {
		var out [7]PieceKind
		for i := range out {
			out[i] = bag.Next()
		}
		return out
	}

	first := draw()
	varied := false
	for i := 0; i < 29; i++ {
		if draw() != first {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("30 consecutive bags were identical permutations")
	}
}

func TestBagRemaining(t *testing.T) {
	bag := NewBag(rand.NewSource(1))
	if bag.Remaining() != 0 {
		t.Errorf("fresh bag should be empty until first draw, got %d", bag.Remaining())
	}
	bag.Next()
	if bag.Remaining() != 6 {
		t.Errorf("after one draw expected 6 remaining, got %d", bag.Remaining())
	}
}
