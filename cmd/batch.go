package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/genecomposer/file"
	"github.com/jsphweid/genecomposer/util"
	"github.com/spf13/cobra"
)

var (
	batchOpts   VariationOptions
	batchMaxNum int
	batchOutDir string
)

func init() {
	rootCmd.AddCommand(batchCmd)
	addVariationFlags(batchCmd, &batchOpts)
	batchCmd.Flags().IntVar(&batchMaxNum, "max", 0, "maximum number of files to process, 0 for all")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "", "directory for the variations, defaults to next to each file")
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Creates variations of every midi file in a directory",
	Long:  `Creates variations of every midi file in a directory`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllMidiPaths(args[0], batchMaxNum)
		if err != nil {
			return err
		}
		if batchOutDir != "" {
			if err := os.MkdirAll(batchOutDir, 0755); err != nil {
				return err
			}
		}

		in := file.CreateFileNumMap(paths)
		out := file.CreateOutputMap(in, batchOutDir)
		keys := util.GetSortedKeys(in)
		for i, num := range keys {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
			if _, err := Vary(cmd.Context(), in[num], out[num], batchOpts); err != nil {
				fmt.Printf("Skipping %v because: %v\n", in[num], err)
			}
		}
		return nil
	},
}
