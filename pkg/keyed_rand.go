package pkg

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// NewKeyedRand returns a pseudo-random generator deterministically derived
// from the given key parts. The same parts always yield the same generator,
// regardless of call order or any other draws made elsewhere, so callers can
// treat each draw as a pure function of its semantic key.
func NewKeyedRand(parts ...string) *rand.Rand {
	h := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.WriteString("\x1f")
		}
		_, _ = h.WriteString(p)
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// KeyedChance rolls a single boolean with probability p for the given key parts.
func KeyedChance(p float64, parts ...string) bool {
	return NewKeyedRand(parts...).Float64() < p
}

// WeightedIndex picks an index from the weights slice, each index having a
// probability proportional to its weight. Weights must be positive and the
// slice non-empty.
func WeightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}
