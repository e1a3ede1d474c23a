package evolve

import "math/rand"

// Selector picks parent ranks from a population sorted best first. Each
// tier but the last is entered with probability Accept/Draw, so with the
// default odds the tiers are used 70%, 21% and 9% of the time.
type Selector struct {
	Bounds []int
	Accept int
	Draw   int
}

func NewSelector(cfg Config) Selector {
	return Selector{
		Bounds: cfg.TierBounds,
		Accept: cfg.TierAccept,
		Draw:   cfg.TierDraw,
	}
}

// Pick returns a rank in [0, bound] of the first accepted tier.
func (s Selector) Pick(rng *rand.Rand) int {
	return rng.Intn(s.bound(rng) + 1)
}

// Pair draws two parents independently; both may be the same rank.
func (s Selector) Pair(rng *rand.Rand) (int, int) {
	return s.Pick(rng), s.Pick(rng)
}

func (s Selector) bound(rng *rand.Rand) int {
	last := len(s.Bounds) - 1
	for _, bound := range s.Bounds[:last] {
		if roll(rng, s.Draw) <= s.Accept {
			return bound
		}
	}
	return s.Bounds[last]
}

// roll is a uniform draw in [1, n].
func roll(rng *rand.Rand, n int) int {
	return 1 + rng.Intn(n)
}
