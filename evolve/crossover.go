package evolve

import (
	"math/rand"

	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/pkg/errors"
)

// Crossover splices two parents at a random threshold and mutates the
// copied notes with probability Chance/Draw.
type Crossover struct {
	Chance int
	Draw   int
}

func NewCrossover(cfg Config) Crossover {
	return Crossover{Chance: cfg.MutationChance, Draw: cfg.MutationDraw}
}

// Combine takes positions below the threshold from a and the rest from b.
// Rests and chords are always copied untouched.
func (x Crossover) Combine(rng *rand.Rand, a, b []model.Element) ([]model.Element, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return nil, ErrInvalidReference
	}

	threshold := rng.Intn(len(a))
	child := make([]model.Element, len(a))
	for i := 0; i < threshold; i++ {
		child[i] = x.take(rng, a[i])
	}
	for i := threshold; i < len(b); i++ {
		child[i] = x.take(rng, b[i])
	}
	return child, nil
}

func (x Crossover) take(rng *rand.Rand, e model.Element) model.Element {
	if !e.IsPitched() || roll(rng, x.Draw) <= x.Draw-x.Chance {
		return e
	}
	return note.Random(rng, e.Duration)
}
