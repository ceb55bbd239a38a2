// Package cmd implements the bmint CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/bookmint/bookmint/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "bmint",
		Short: "CLI client for bookmint",
		Long: "bmint is a command-line client for the bookmint API.\n" +
			"It lets you manage book inventory, publish listings to eBay,\n" +
			"and trigger inventory syncs from the terminal.",
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.bmint.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("user", "", "user id sent as X-User-ID")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(booksCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(ebayCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(lookupCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bmint")
	}

	viper.SetEnvPrefix("BMINT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString("server"),
		apiclient.WithUser(viper.GetString("user")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
