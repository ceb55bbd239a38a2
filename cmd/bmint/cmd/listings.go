package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage eBay listings",
		Long: "Publish books to eBay and inspect listing pipeline state.\n" +
			"A failed publish can be retried; it resumes from the stage that failed.",
	}

	listingsRoot.AddCommand(
		listingPublishCmd(),
		listingListCmd(),
		listingGetCmd(),
		listingEndCmd(),
	)

	return listingsRoot
}

func listingPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <book-id>",
		Short: "Publish a book to eBay",
		Args:  cobra.ExactArgs(1),
		Example: `  bmint listings publish b1f3...
  bmint listings publish b1f3... --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.PublishListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			fmt.Printf("Listed as %s (listing %s)\n", l.EbayListingID, l.ID)
			return nil
		},
	}
}

func listingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List listings",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			listings, err := c.ListListings(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(listings)
			}
			if len(listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printListingTable(listings)
		},
	}
}

func listingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(l)
		},
	}
}

func listingEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <id>",
		Short: "End a live listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.EndListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			fmt.Printf("Ended listing %s; book returned to stock.\n", l.ID)
			return nil
		},
	}
}
