// Package cmd implements the CLI commands for the bookmint server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bookmint",
	Short: "Book reselling inventory with eBay publication",
	Long: "An API-first service for book resellers: track acquired inventory, " +
		"publish books to eBay through the Sell APIs, and keep local records " +
		"reconciled with the marketplace.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
