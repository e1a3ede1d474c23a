package cmd

import (
	"fmt"

	"github.com/jsphweid/genecomposer/midi"
	"github.com/jsphweid/genecomposer/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the flattened timeline of a midi file",
	Long:  `Prints the flattened timeline of a midi file in note notation`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	score, err := midi.ReadScore(path)
	if err != nil {
		return err
	}
	fmt.Printf("bpm: %v\n", score.BPM)
	fmt.Printf("elements: %v\n", len(score.Elements))
	for i, e := range score.Elements {
		fmt.Printf("%4d  %v\n", i, note.Format(e))
	}
	return nil
}
