package evolve

import (
	"context"
	"math/rand"

	"github.com/jsphweid/genecomposer/composition"
	"github.com/jsphweid/genecomposer/model"
	"github.com/pkg/errors"
)

type State int

const (
	Uninitialized State = iota
	Initialized
	Evolving
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Evolving:
		return "evolving"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Engine evolves a ranked population toward a reference melody. It is
// not safe for concurrent use; every run owns its engine and random source.
type Engine struct {
	reference []model.Element
	config    Config
	rng       *rand.Rand
	selector  Selector
	crossover Crossover

	population model.Population
	generation int
	state      State

	// OnGeneration, when set, is called after every completed generation
	// with the new best composition.
	OnGeneration func(generation int, best model.Composition)
}

func New(reference []model.Element, cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := composition.Validate(reference); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.Wrap(ErrConfiguration, "random source is required")
	}
	cfg.TierBounds = append([]int(nil), cfg.TierBounds...)

	return &Engine{
		reference: append([]model.Element(nil), reference...),
		config:    cfg,
		rng:       rng,
		selector:  NewSelector(cfg),
		crossover: NewCrossover(cfg),
	}, nil
}

// Initialize fills the first generation with random compositions and
// ranks it. Calling it again starts over.
func (e *Engine) Initialize() {
	population := make(model.Population, e.config.PopulationSize)
	for i := range population {
		population[i] = composition.Random(e.reference, e.rng)
	}
	composition.Sort(population)

	e.population = population
	e.generation = 0
	e.state = Initialized
}

// Step replaces the whole population with children of the current one.
func (e *Engine) Step() error {
	if e.state == Uninitialized {
		return ErrNotInitialized
	}

	next := make(model.Population, 0, e.config.PopulationSize)
	if e.config.Elitism {
		best := e.population[0]
		next = append(next, model.Composition{
			Notes:   append([]model.Element(nil), best.Notes...),
			Fitness: best.Fitness,
		})
	}

	for len(next) < e.config.PopulationSize {
		x, y := e.selector.Pair(e.rng)
		notes, err := e.crossover.Combine(e.rng, e.population[x].Notes, e.population[y].Notes)
		if err != nil {
			return err
		}
		child := model.Composition{Notes: notes}
		composition.Evaluate(&child, e.reference)
		next = append(next, child)
	}
	composition.Sort(next)

	e.population = next
	e.generation++
	e.state = Evolving
	return nil
}

// Run initializes the engine if needed and evolves it for the given
// number of generations, checking ctx between generations. Negative
// counts run no generations. The best composition so far is returned
// even when ctx ends the run early.
func (e *Engine) Run(ctx context.Context, generations int) (model.Composition, error) {
	if e.state == Uninitialized {
		e.Initialize()
	}

	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return e.population[0], err
		}
		if err := e.Step(); err != nil {
			return e.population[0], err
		}
		if e.OnGeneration != nil {
			e.OnGeneration(e.generation, e.population[0])
		}
	}

	e.state = Done
	return e.population[0], nil
}

func (e *Engine) Best() (model.Composition, error) {
	if e.state == Uninitialized {
		return model.Composition{}, ErrNotInitialized
	}
	return e.population[0], nil
}

func (e *Engine) Population() model.Population {
	return e.population
}

func (e *Engine) Generation() int {
	return e.generation
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Config() Config {
	return e.config
}
