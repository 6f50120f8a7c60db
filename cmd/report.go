package cmd

import (
	"fmt"
	"log"
	"os"

	"ecom-report/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the revenue query and print the customer revenue report",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := GetSettings()
		log.Println("Starting customer revenue analysis...")

		if settings.IsSqlite() {
			if _, err := os.Stat(settings.DSN); err != nil {
				return fmt.Errorf("%w at %s (run 'ecom-report load' first)", report.ErrDatabaseNotFound, settings.DSN)
			}
		}

		query, err := report.ReadQueryFile(settings.SQLFile)
		if err != nil {
			return err
		}
		log.Printf("SQL query loaded from: %s", settings.SQLFile)

		db, _, err := openDatabase(settings, false)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Printf("Connected to database: %s", settings.DSN)

		rs, err := report.Run(db, query)
		if err != nil {
			return err
		}
		log.Printf("Query executed successfully. Rows returned: %d", len(rs.Rows))

		if err := rs.WriteCSV(settings.Output); err != nil {
			return err
		}
		log.Printf("Results saved to: %s", settings.Output)

		analysis := report.Analyze(rs.Rows)
		report.PrintReport(os.Stdout, analysis, report.NewRenderer(settings.Style))

		log.Println("Customer revenue analysis completed successfully")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("sql", "", "SQL query file (overrides config)")
	reportCmd.Flags().String("out", "", "output CSV path (overrides config)")
	reportCmd.Flags().String("style", "", "console table style: grid or plain (overrides config)")

	viper.BindPFlag("report.sql_file", reportCmd.Flags().Lookup("sql"))
	viper.BindPFlag("report.output", reportCmd.Flags().Lookup("out"))
	viper.BindPFlag("report.style", reportCmd.Flags().Lookup("style"))
}
