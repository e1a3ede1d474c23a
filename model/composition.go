package model

// Composition is one candidate melody. Notes lines up index for index
// with the reference; lower Fitness is closer to it.
type Composition struct {
	Notes   []Element
	Fitness float64
}

// Population is kept ranked, index 0 being the lowest fitness.
type Population = []Composition
