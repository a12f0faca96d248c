// ABOUTME: Injectable random source for like counts and character sampling
// ABOUTME: Production source wraps math/rand; tests script exact outcomes

package rng

import "math/rand/v2"

// Source supplies every randomized decision in the document: like and reply
// counts, and the sample of characters chosen to reply to a post. Injecting
// it keeps domain operations deterministic under test.
type Source interface {
	// IntBetween returns a uniform integer in [min, max] inclusive. Inverted
	// bounds are swapped before drawing.
	IntBetween(min, max int) int
	// Sample returns k distinct indices from [0, n) in no particular order.
	// k greater than n returns all n indices.
	Sample(n, k int) []int
}

type source struct {
	r *rand.Rand
}

// New returns a Source backed by the given rand.Rand.
func New(r *rand.Rand) Source {
	return &source{r: r}
}

// Default returns a Source seeded from the global generator.
func Default() Source {
	return &source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *source) IntBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.IntN(max-min+1)
}

func (s *source) Sample(n, k int) []int {
	if n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	indices := s.r.Perm(n)
	return indices[:k]
}
