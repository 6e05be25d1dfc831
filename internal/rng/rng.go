// Package rng supplies the single seedable PRNG implementation the rest of
// the scheduler depends on through the calendar.Rand interface. Tests seed
// it explicitly so both engines run deterministically; production seeds it
// from the request's optional seed field or, absent that, the current time.
package rng

import "math/rand"

// Source wraps *rand.Rand behind calendar.Rand so solvers never import
// math/rand directly — one seed point, one place to swap algorithms.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

func (s *Source) Float64() float64 {
	return s.r.Float64()
}

func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
