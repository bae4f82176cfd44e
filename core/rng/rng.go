package rng

import (
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand consumed by the biasing components.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// New returns a PCG-backed generator seeded with seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewSeed draws a fresh non-zero seed from the runtime generator. It is only
// used to pick a seed when the caller did not supply one; the chosen seed is
// reported back so the run can be reproduced. Drawn seeds stay below 2^63 so
// they fit a signed 64-bit column.
func NewSeed() uint64 {
	for {
		if s := rand.Int64(); s != 0 {
			return uint64(s)
		}
	}
}

// Shuffle shuffles s in place.
func Shuffle[T any](r Source, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Sample draws k distinct elements of s without replacement, in draw order.
// s is not modified.
func Sample[T any](r Source, s []T, k int) ([]T, error) {
	if k < 0 || k > len(s) {
		return nil, fmt.Errorf("sample of %d from population of %d", k, len(s))
	}
	work := make([]T, len(s))
	copy(work, s)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k], nil
}
