package cmd

import (
	"fmt"
	"log"

	"ecom-report/internal/engine"

	"github.com/spf13/cobra"
)

var (
	seedCount int
	seedOut   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo CSV fixtures for the five pipeline tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Explicit precedence: flag > configured data dir.
		dir := seedOut
		if dir == "" {
			dir = GetSettings().DataDir
		}

		log.Printf("Generating %d customers/products/orders into %s...", seedCount, dir)
		if err := engine.SeedCSVFiles(dir, seedCount); err != nil {
			return err
		}

		fmt.Printf("%s Demo CSV files written to %s\n", okMark, dir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedCount, "count", 50, "number of customers/products/orders to generate")
	seedCmd.Flags().StringVar(&seedOut, "out", "", "output directory (overrides load.data_dir)")
}
