package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "ecom-report",
	Short: "E-commerce CSV loader and revenue reporter",
	Long: `
ecom-report - two-stage batch pipeline:

  load    ingest the five e-commerce CSV files into the database
  report  run the revenue query and print the customer revenue report
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ecom-report.yaml)")
	RootCmd.PersistentFlags().String("driver", "", "database driver (sqlite3, postgres, mysql, sqlserver, oracle)")
	RootCmd.PersistentFlags().String("dsn", "", "database DSN (file path for sqlite3)")

	viper.BindPFlag("database.driver", RootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", filepath.Join("database", "ecom.db"))
	viper.SetDefault("load.data_dir", "data")
	viper.SetDefault("report.sql_file", "customer_revenue.sql")
	viper.SetDefault("report.output", filepath.Join("output", "customer_revenue_output.csv"))
	viper.SetDefault("report.style", "grid")
}

// initConfig reads in .env, the config file, and environment variables.
func initConfig() {
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("ecom-report")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
