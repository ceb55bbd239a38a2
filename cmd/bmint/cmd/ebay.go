package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func ebayCmd() *cobra.Command {
	ebayRoot := &cobra.Command{
		Use:   "ebay",
		Short: "Manage the eBay account connection",
	}

	ebayRoot.AddCommand(
		ebayConnectCmd(),
		ebayStatusCmd(),
		ebayDisconnectCmd(),
	)

	return ebayRoot
}

func ebayConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Start the eBay consent flow",
		Long: "Prints the eBay authorization URL. Visit it in a browser and " +
			"approve access; the server stores the resulting tokens.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			url, err := c.Connect(context.Background())
			if err != nil {
				return err
			}
			fmt.Println("Visit this URL to authorize bookmint:")
			fmt.Println(url)
			return nil
		},
	}
}

func ebayStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection status and API quota",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.GetConnection(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(status)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Connected:\t%v\n", status.Connected)
			if status.ExpiresAt != nil {
				tw.writef("Token expires:\t%s\n", status.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
			if status.Quota != nil {
				tw.writef("Daily quota:\t%d/%d (resets %s)\n",
					status.Quota.DailyUsed,
					status.Quota.DailyLimit,
					status.Quota.ResetAt.Format("15:04:05"),
				)
			}
			return tw.finish()
		},
	}
}

func ebayDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Remove the stored eBay credential",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.Disconnect(context.Background()); err != nil {
				return err
			}
			fmt.Println("Disconnected.")
			return nil
		},
	}
}
