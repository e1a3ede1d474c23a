package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/genecomposer/constants"
	"github.com/jsphweid/genecomposer/db"
	"github.com/jsphweid/genecomposer/evolve"
	"github.com/jsphweid/genecomposer/midi"
	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/jsphweid/genecomposer/util"
	"github.com/spf13/cobra"
)

type VariationOptions struct {
	Generations int
	Seed        int64
	Population  int
	Elitism     bool
	Record      bool
	Verbose     bool
}

var varyOpts VariationOptions

func init() {
	rootCmd.AddCommand(varyCmd)
	addVariationFlags(varyCmd, &varyOpts)
}

var varyCmd = &cobra.Command{
	Use:   "vary <file.mid>",
	Short: "Creates a variation of a midi file",
	Long: `Creates a variation of a midi file and writes it next to the
original as <name>_variation.mid`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := Vary(cmd.Context(), args[0], util.VariationPath(args[0]), varyOpts)
		return err
	},
}

func addVariationFlags(c *cobra.Command, o *VariationOptions) {
	c.Flags().IntVarP(&o.Generations, "generations", "g", constants.GetDefaultGenerations(), "number of generations to evolve")
	c.Flags().Int64Var(&o.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	c.Flags().IntVar(&o.Population, "population", constants.PopulationSize, "compositions per generation")
	c.Flags().BoolVar(&o.Elitism, "elitism", false, "carry the best composition into every next generation")
	c.Flags().BoolVar(&o.Record, "record", false, "store the run in DynamoDB")
	c.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "print the best fitness of every generation")
}

// CreateVariation evolves a variation of reference and describes the run.
func CreateVariation(ctx context.Context, reference []model.Element, o VariationOptions) (model.RunRecord, model.Composition, error) {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := evolve.DefaultConfig()
	cfg.PopulationSize = o.Population
	cfg.Elitism = o.Elitism

	engine, err := evolve.New(reference, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return model.RunRecord{}, model.Composition{}, err
	}
	engine.Initialize()
	start, _ := engine.Best()

	if o.Verbose {
		engine.OnGeneration = func(generation int, best model.Composition) {
			fmt.Printf("Generation %v: fitness %v\n", generation, best.Fitness)
		}
	}

	generations := o.Generations
	if generations < 0 {
		fmt.Printf("Generation count %v is negative, running none\n", generations)
		generations = 0
	}

	best, err := engine.Run(ctx, generations)
	record := model.RunRecord{
		Id:           uuid.New().String(),
		Seed:         seed,
		Generations:  engine.Generation(),
		StartFitness: start.Fitness,
		FinalFitness: best.Fitness,
		Notes:        note.FormatAll(best.Notes),
		CreatedAt:    time.Now(),
	}
	return record, best, err
}

// Vary reads the midi file at in, evolves a variation of it and writes the
// result to out.
func Vary(ctx context.Context, in string, out string, o VariationOptions) (model.RunRecord, error) {
	score, err := midi.ReadScore(in)
	if err != nil {
		return model.RunRecord{}, err
	}

	fmt.Printf("Creating variations of %v...\n", in)
	record, best, err := CreateVariation(ctx, score.Elements, o)
	if err != nil {
		return record, err
	}
	record.Source = in

	fmt.Printf("Starting fitness value: %v\n", record.StartFitness)
	fmt.Printf("%v generations resulted in a fitness value: %v\n", record.Generations, record.FinalFitness)

	if err := midi.WriteScore(midi.Score{Elements: best.Notes, BPM: score.BPM}, out); err != nil {
		return record, err
	}
	fmt.Printf("Variation created: %v\n", out)

	if o.Record {
		if err := db.RecordRun(record); err != nil {
			return record, err
		}
		fmt.Printf("Recorded run %v\n", record.Id)
	}
	return record, nil
}
