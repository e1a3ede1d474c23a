package composition

import (
	"math/rand"
	"sort"

	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/pkg/errors"
)

var ErrInvalidReference = errors.New("reference must contain at least one element")

func Validate(reference []model.Element) error {
	if len(reference) == 0 {
		return ErrInvalidReference
	}
	return nil
}

// Random builds a candidate shaped like the reference: random pitches
// everywhere, rests and chords copied over, durations forced to match.
func Random(reference []model.Element, rng *rand.Rand) model.Composition {
	var c model.Composition
	c.Notes = make([]model.Element, len(reference))
	for i, e := range reference {
		c.Notes[i] = note.Random(rng, e.Duration)
	}
	assignRestsAndChords(&c, reference)
	assignDurations(&c, reference)
	Evaluate(&c, reference)
	return c
}

func assignRestsAndChords(c *model.Composition, reference []model.Element) {
	for i, e := range reference {
		if !e.IsPitched() {
			c.Notes[i] = e
		}
	}
}

func assignDurations(c *model.Composition, reference []model.Element) {
	for i, e := range reference {
		c.Notes[i].Duration = e.Duration
	}
}

// Evaluate recomputes the fitness from scratch as the summed pitch
// distance over the positions where the reference holds a note.
func Evaluate(c *model.Composition, reference []model.Element) {
	c.Fitness = 0
	for i, e := range reference {
		if e.IsPitched() {
			c.Fitness += note.Distance(e.Pitch, c.Notes[i].Pitch)
		}
	}
}

// Sort ranks a population by ascending fitness. Ties keep their
// construction order.
func Sort(population model.Population) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Fitness < population[j].Fitness
	})
}

func IsSorted(population model.Population) bool {
	return sort.SliceIsSorted(population, func(i, j int) bool {
		return population[i].Fitness < population[j].Fitness
	})
}
