package cmd

import (
	"log"

	"ecom-report/internal/engine"
	"ecom-report/internal/schema"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the five pipeline tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := GetSettings()

		db, d, err := openDatabase(settings, false)
		if err != nil {
			return err
		}
		defer db.Close()

		var tables []string
		for _, spec := range schema.Specs() {
			tables = append(tables, spec.Table)
		}

		// DropTables walks the list in reverse, children before parents.
		if err := engine.DropTables(db, d, tables); err != nil {
			return err
		}

		log.Println("Database cleaned successfully!")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}
