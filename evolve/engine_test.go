package evolve

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jsphweid/genecomposer/composition"
	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T, cfg Config, seed int64, notes ...string) *Engine {
	reference, err := note.ParseAll(notes)
	if err != nil {
		t.Fatalf("parse reference: %v", err)
	}
	e, err := New(reference, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestNewRejectsEmptyReference(t *testing.T) {
	_, err := New(nil, DefaultConfig(), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	assert := assert.New(t)
	reference, _ := note.ParseAll([]string{"C4"})

	cfg := DefaultConfig()
	cfg.PopulationSize = 0
	_, err := New(reference, cfg, rand.New(rand.NewSource(1)))
	assert.ErrorIs(err, ErrConfiguration)

	_, err = New(reference, DefaultConfig(), nil)
	assert.ErrorIs(err, ErrConfiguration)
}

func TestStateTransitions(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, DefaultConfig(), 1, "C4", "E4", "G4", "C5")

	assert.Equal(Uninitialized, e.State())
	assert.ErrorIs(e.Step(), ErrNotInitialized)
	_, err := e.Best()
	assert.ErrorIs(err, ErrNotInitialized)

	e.Initialize()
	assert.Equal(Initialized, e.State())
	assert.Equal(0, e.Generation())
	assert.Len(e.Population(), 100)
	assert.True(composition.IsSorted(e.Population()))

	assert.NoError(e.Step())
	assert.Equal(Evolving, e.State())
	assert.Equal(1, e.Generation())

	_, err = e.Run(context.Background(), 3)
	assert.NoError(err)
	assert.Equal(Done, e.State())
	assert.Equal(4, e.Generation())
}

func TestRunZeroGenerationsReturnsInitialBest(t *testing.T) {
	assert := assert.New(t)
	for _, n := range []int{0, -5} {
		e := newEngine(t, DefaultConfig(), 8, "C4", "E4", "G4", "C5")
		e.Initialize()
		initial := e.Population()[0]

		best, err := e.Run(context.Background(), n)
		assert.NoError(err)
		assert.Equal(initial, best)
		assert.Equal(0, e.Generation())
	}
}

func TestRunKeepsInvariantsEveryGeneration(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, DefaultConfig(), 21, "R:1", "C4:1")
	rest, _ := note.Parse("R:1")
	reference, _ := note.ParseAll([]string{"R:1", "C4:1"})

	check := func(population model.Population) {
		assert.Len(population, 100)
		assert.True(composition.IsSorted(population))
		for _, c := range population {
			assert.Len(c.Notes, 2)
			assert.Equal(rest, c.Notes[0])
			assert.True(c.Notes[1].IsPitched())
			assert.Equal(reference[1].Duration, c.Notes[1].Duration)
			assert.InDelta(note.Distance(reference[1].Pitch, c.Notes[1].Pitch), c.Fitness, 1e-9)
		}
	}

	e.OnGeneration = func(generation int, best model.Composition) {
		assert.Equal(e.Population()[0], best)
		check(e.Population())
	}
	e.Initialize()
	check(e.Population())

	_, err := e.Run(context.Background(), 25)
	assert.NoError(err)
}

func TestRunIsReproducibleForASeed(t *testing.T) {
	assert := assert.New(t)
	notes := []string{"C4", "D4", "E4", "F4", "G4:2", "R:1", "G4", "A4", "B4", "C5:2"}

	a, err := newEngine(t, DefaultConfig(), 99, notes...).Run(context.Background(), 20)
	assert.NoError(err)
	b, err := newEngine(t, DefaultConfig(), 99, notes...).Run(context.Background(), 20)
	assert.NoError(err)
	assert.Equal(a, b)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, DefaultConfig(), 2, "C4", "E4", "G4", "C5")

	ctx, cancel := context.WithCancel(context.Background())
	e.OnGeneration = func(generation int, best model.Composition) {
		if generation == 3 {
			cancel()
		}
	}

	best, err := e.Run(ctx, 1000)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(3, e.Generation())
	assert.Equal(e.Population()[0], best)
	assert.NotEqual(Done, e.State())
}

func TestElitismNeverRegresses(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.Elitism = true
	e := newEngine(t, cfg, 13, "C4", "E4", "G4", "C5", "B3", "D4", "F#4", "A4")

	e.Initialize()
	prev := e.Population()[0].Fitness
	start := prev
	e.OnGeneration = func(generation int, best model.Composition) {
		assert.LessOrEqual(best.Fitness, prev)
		prev = best.Fitness
	}

	best, err := e.Run(context.Background(), 60)
	assert.NoError(err)
	assert.Less(best.Fitness, start)
}
