package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookmint/bookmint/internal/catalog"
)

func lookupCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "lookup <isbn>",
		Short: "Look up book metadata by ISBN",
		Long: "Queries the public volumes catalog directly, without going " +
			"through the bookmint server. Useful for checking what metadata " +
			"a books add without --title would get.",
		Args: cobra.ExactArgs(1),
		Example: `  bmint lookup 9780134190440
  bmint lookup 978-0-13-419044-0 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := catalog.NewClient(catalog.WithAPIKey(apiKey))
			info, err := c.Lookup(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					fmt.Println("No catalog entry for that ISBN.")
					return nil
				}
				return err
			}
			if jsonOutput() {
				return outputJSON(info)
			}
			return printBookInfo(info)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "catalog API key")

	return cmd
}
