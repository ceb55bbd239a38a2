package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/bookmint/bookmint/internal/api/client"
	domain "github.com/bookmint/bookmint/pkg/types"
)

func booksCmd() *cobra.Command {
	booksRoot := &cobra.Command{
		Use:   "books",
		Short: "Manage book inventory",
		Long: "Manage the local book inventory: acquired books with their\n" +
			"condition, pricing, and listing status.",
	}

	booksRoot.AddCommand(
		bookListCmd(),
		bookGetCmd(),
		bookAddCmd(),
		bookUpdateCmd(),
		bookDeleteCmd(),
	)

	return booksRoot
}

func bookListCmd() *cobra.Command {
	var (
		status    string
		condition string
		search    string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		Example: `  bmint books list
  bmint books list --status in_stock
  bmint books list --search kernighan --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListBooks(context.Background(), apiclient.BookFilter{
				Status:    status,
				Condition: condition,
				Search:    search,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Books) == 0 {
				fmt.Println("No books found.")
				return nil
			}
			if err := printBookTable(list.Books); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d books\n", len(list.Books), list.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (in_stock, listed, sold)")
	cmd.Flags().StringVar(&condition, "condition", "", "filter by condition")
	cmd.Flags().StringVar(&search, "search", "", "match against title or author")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")

	return cmd
}

func bookGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show book details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			b, err := c.GetBook(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(b)
			}
			return printBookDetail(b)
		},
	}
}

func bookAddCmd() *cobra.Command {
	var (
		isbn          string
		sku           string
		title         string
		author        string
		condition     string
		purchasePrice float64
		askingPrice   float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a newly acquired book",
		Long: "Records a book in the inventory. Title and author are filled\n" +
			"from the catalog by ISBN when omitted.",
		Example: `  bmint books add --isbn 9780134190440 --sku BM-0001 --condition very_good --asking 24.90`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			created, err := c.CreateBook(context.Background(), &domain.Book{
				ISBN:          isbn,
				SKU:           sku,
				Title:         title,
				Author:        author,
				Condition:     domain.Condition(condition),
				PurchasePrice: purchasePrice,
				AskingPrice:   askingPrice,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Created book %s (%s)\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN-10 or ISBN-13 (required)")
	cmd.Flags().StringVar(&sku, "sku", "", "stock keeping unit (required)")
	cmd.Flags().StringVar(&title, "title", "", "title (catalog fills this when omitted)")
	cmd.Flags().StringVar(&author, "author", "", "author")
	cmd.Flags().StringVar(&condition, "condition", "good", "condition (new, like_new, very_good, good, acceptable)")
	cmd.Flags().Float64Var(&purchasePrice, "purchase", 0, "purchase price")
	cmd.Flags().Float64Var(&askingPrice, "asking", 0, "asking price (required)")

	cobra.CheckErr(cmd.MarkFlagRequired("isbn"))
	cobra.CheckErr(cmd.MarkFlagRequired("sku"))
	cobra.CheckErr(cmd.MarkFlagRequired("asking"))

	return cmd
}

func bookUpdateCmd() *cobra.Command {
	var (
		title       string
		author      string
		condition   string
		askingPrice float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a book",
		Args:  cobra.ExactArgs(1),
		Example: `  bmint books update b1f3... --asking 19.99`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			updated, err := c.UpdateBook(context.Background(), &domain.Book{
				ID:          args[0],
				Title:       title,
				Author:      author,
				Condition:   domain.Condition(condition),
				AskingPrice: askingPrice,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			return printBookDetail(updated)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&author, "author", "", "new author")
	cmd.Flags().StringVar(&condition, "condition", "", "new condition")
	cmd.Flags().Float64Var(&askingPrice, "asking", 0, "new asking price")

	return cmd
}

func bookDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteBook(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
