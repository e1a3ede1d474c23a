package evolve

import (
	"github.com/jsphweid/genecomposer/constants"
	"github.com/pkg/errors"
)

// Config holds the knobs of a run.
type Config struct {
	// PopulationSize is the number of compositions in every generation.
	PopulationSize int

	// TierBounds are the highest ranks each selection tier can pick. A tier
	// is accepted when a draw in [1, TierDraw] is at most TierAccept; the
	// last tier is taken unconditionally.
	TierBounds []int
	TierAccept int
	TierDraw   int

	// A copied note is replaced when a draw in [1, MutationDraw] exceeds
	// MutationDraw-MutationChance.
	MutationChance int
	MutationDraw   int

	// Elitism carries a copy of the best composition into the next
	// generation.
	Elitism bool
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: constants.PopulationSize,
		TierBounds:     []int{constants.TopTier, constants.MiddleTier, constants.BottomTier},
		TierAccept:     constants.TierAccept,
		TierDraw:       constants.TierDraw,
		MutationChance: constants.MutationChance,
		MutationDraw:   constants.MutationDraw,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return errors.Wrapf(ErrConfiguration, "population size must be positive, got %d", c.PopulationSize)
	}
	if len(c.TierBounds) == 0 {
		return errors.Wrap(ErrConfiguration, "at least one selection tier is required")
	}
	prev := -1
	for _, bound := range c.TierBounds {
		if bound <= prev {
			return errors.Wrapf(ErrConfiguration, "tier bounds must be ascending and non-negative, got %v", c.TierBounds)
		}
		prev = bound
	}
	if prev >= c.PopulationSize {
		return errors.Wrapf(ErrConfiguration, "tier bound %d is outside a population of %d", prev, c.PopulationSize)
	}
	if c.TierDraw <= 0 || c.TierAccept < 0 || c.TierAccept > c.TierDraw {
		return errors.Wrapf(ErrConfiguration, "tier odds %d/%d are invalid", c.TierAccept, c.TierDraw)
	}
	if c.MutationDraw <= 0 || c.MutationChance < 0 || c.MutationChance > c.MutationDraw {
		return errors.Wrapf(ErrConfiguration, "mutation odds %d/%d are invalid", c.MutationChance, c.MutationDraw)
	}
	return nil
}
