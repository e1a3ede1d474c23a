package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jsphweid/genecomposer/evolve"
	"github.com/jsphweid/genecomposer/midi"
	"github.com/jsphweid/genecomposer/note"
	"github.com/stretchr/testify/assert"
)

func defaultOptions(generations int) VariationOptions {
	return VariationOptions{Generations: generations, Seed: 3, Population: 100}
}

func TestCreateVariationWithoutGenerationsKeepsStartingFitness(t *testing.T) {
	assert := assert.New(t)
	reference, err := note.ParseAll([]string{"C4", "E4", "G4", "C5"})
	assert.NoError(err)

	for _, n := range []int{0, -3} {
		record, best, err := CreateVariation(context.Background(), reference, defaultOptions(n))
		assert.NoError(err)
		assert.Equal(0, record.Generations)
		assert.Equal(record.StartFitness, record.FinalFitness)
		assert.Equal(note.FormatAll(best.Notes), record.Notes)
	}
}

func TestCreateVariationReportsEngineErrors(t *testing.T) {
	_, _, err := CreateVariation(context.Background(), nil, defaultOptions(1))
	assert.ErrorIs(t, err, evolve.ErrInvalidReference)

	reference, _ := note.ParseAll([]string{"C4"})
	o := defaultOptions(1)
	o.Population = 10
	_, _, err = CreateVariation(context.Background(), reference, o)
	assert.ErrorIs(t, err, evolve.ErrConfiguration)
}

func TestVaryWritesVariationFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "tune.mid")
	out := filepath.Join(dir, "tune_variation.mid")

	reference, err := note.ParseAll([]string{"C4:1", "D4:0.5", "R:0.5", "E4:1", "C4+E4+G4:2"})
	assert.NoError(err)
	assert.NoError(midi.WriteScore(midi.Score{Elements: reference, BPM: 100}, in))

	record, err := Vary(context.Background(), in, out, defaultOptions(5))
	assert.NoError(err)
	assert.Equal(in, record.Source)
	assert.Equal(5, record.Generations)

	written, err := midi.ReadScore(out)
	assert.NoError(err)
	assert.Equal(record.Notes, note.FormatAll(written.Elements))
	assert.InDelta(100.0, written.BPM, 0.01)
}
