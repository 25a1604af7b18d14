package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecompop",
	Short: "Tiered bulk population for the e-commerce database",
	Long: `ecompop wipes and repopulates the e-commerce schema with synthetic,
referentially consistent data at one of three scale tiers. Each tier uses
the load strategy sized for its volume: row batches, chunked commits or
the bulk-copy channel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// A missing .env is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
