package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/bookmint/bookmint/internal/catalog"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBookTable(books []domain.Book) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSKU\tTITLE\tCONDITION\tASKING\tSTATUS\n")
	for i := range books {
		b := &books[i]
		tw.writef("%s\t%s\t%s\t%s\t$%.2f\t%s\n",
			b.ID,
			b.SKU,
			truncate(b.Title, 40),
			b.Condition,
			b.AskingPrice,
			b.Status,
		)
	}
	return tw.finish()
}

func printBookDetail(b *domain.Book) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", b.ID)
	tw.writef("SKU:\t%s\n", b.SKU)
	tw.writef("ISBN:\t%s\n", b.ISBN)
	tw.writef("Title:\t%s\n", b.Title)
	tw.writef("Author:\t%s\n", b.Author)
	tw.writef("Publisher:\t%s\n", b.Publisher)
	tw.writef("Condition:\t%s\n", b.Condition)
	tw.writef("Purchase:\t$%.2f\n", b.PurchasePrice)
	tw.writef("Asking:\t$%.2f %s\n", b.AskingPrice, b.Currency)
	tw.writef("Margin:\t$%.2f (%.1f%%)\n", b.Margin(), b.MarginPct())
	tw.writef("Status:\t%s\n", b.Status)
	return tw.finish()
}

func printListingTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSKU\tSTATUS\tOFFER\tEBAY ID\tPRICE\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t$%.2f\n",
			l.ID,
			l.SKU,
			l.Status,
			orDash(l.OfferID),
			orDash(l.EbayListingID),
			l.PriceSnapshot,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Book:\t%s\n", l.BookID)
	tw.writef("SKU:\t%s\n", l.SKU)
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("Offer ID:\t%s\n", orDash(l.OfferID))
	tw.writef("eBay ID:\t%s\n", orDash(l.EbayListingID))
	tw.writef("Price:\t$%.2f\n", l.PriceSnapshot)
	tw.writef("Created:\t%s\n", l.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printSyncRunTable(runs []domain.SyncRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTYPE\tSTATUS\tSYNCED\tFAILED\tSTARTED\tCOMPLETED\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID,
			r.SyncType,
			r.Status,
			r.ItemsSynced,
			r.ItemsFailed,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
		)
	}
	return tw.finish()
}

func printBookInfo(info *catalog.BookInfo) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ISBN:\t%s\n", info.ISBN)
	tw.writef("Title:\t%s\n", info.Title)
	tw.writef("Author:\t%s\n", info.Author)
	tw.writef("Publisher:\t%s\n", info.Publisher)
	tw.writef("Published:\t%s\n", info.PublishedAt)
	tw.writef("Cover:\t%s\n", info.CoverURL)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
