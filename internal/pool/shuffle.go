package pool

import "math/rand/v2"

// NewRand returns a PRNG suitable for round randomization. Tests inject
// their own seeded source for determinism.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Shuffle permutes items in place with a Fisher-Yates shuffle driven by rng.
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy, leaving the original untouched.
func Shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	Shuffle(rng, out)
	return out
}
