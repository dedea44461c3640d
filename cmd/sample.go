package cmd

import (
	"fmt"
	"log"
	"os"

	"dataprof/internal/source"

	"github.com/spf13/cobra"
)

var (
	sampleOut   string
	sampleCount int
	sampleSeed  int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic sample dataset as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := source.Sample(sampleCount, sampleSeed)

		f, err := os.Create(sampleOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", sampleOut, err)
		}
		defer f.Close()

		if err := source.WriteCSV(f, table); err != nil {
			return err
		}

		log.Printf("Wrote %d rows to %s", table.Rows(), sampleOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleCount, "rows", 1000, "Number of rows to generate")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 42, "Random seed for reproducible data")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "sample.csv", "Output CSV path")
}
