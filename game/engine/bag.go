package engine

import (
	"math/rand"
	"time"
)

// Bag supplies piece kinds using the 7-bag scheme: all seven kinds in a
// uniformly random permutation, drawn without replacement, refilled on
// exhaustion. Within any window aligned to a bag boundary each kind appears
// exactly once, so no kind can repeat more than once across a boundary.
type Bag struct {
	queue []PieceKind
	rng   *rand.Rand
}

// NewBag creates a bag randomizer. A nil source seeds from the clock;
// tests pass a fixed source for reproducible draws.
func NewBag(src rand.Source) *Bag {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Bag{
		queue: make([]PieceKind, 0, len(Kinds)),
		rng:   rand.New(src),
	}
}

// Next returns the next piece kind, refilling the bag when empty
func (b *Bag) Next() PieceKind {
	if len(b.queue) == 0 {
		b.refill()
	}
	kind := b.queue[0]
	b.queue = b.queue[1:]
	return kind
}

// Remaining reports how many draws are left in the current bag
func (b *Bag) Remaining() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	b.queue = append(b.queue[:0], Kinds[:]...)
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
