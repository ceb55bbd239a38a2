package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/metrics"
	"github.com/bookmint/bookmint/internal/store"
	domain "github.com/bookmint/bookmint/pkg/types"
)

const (
	defaultSyncPageSize = 100
	syncTypeInventory   = "inventory"
)

// Syncer reconciles the remote marketplace inventory with local book
// records. Each run is recorded as a SyncRun row: started when the run
// begins, completed or failed when it finishes. A row stuck at started
// means the process died mid-run.
type Syncer struct {
	store    store.Store
	sell     ebay.SellAPI
	pageSize int
	log      *slog.Logger
}

// SyncerOption configures the Syncer.
type SyncerOption func(*Syncer)

// WithSyncPageSize sets the remote inventory page size.
func WithSyncPageSize(n int) SyncerOption {
	return func(s *Syncer) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithSyncerLogger sets a custom logger.
func WithSyncerLogger(l *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.log = l
	}
}

// NewSyncer creates a Syncer with injected dependencies.
func NewSyncer(s store.Store, sell ebay.SellAPI, opts ...SyncerOption) *Syncer {
	sy := &Syncer{
		store:    s,
		sell:     sell,
		pageSize: defaultSyncPageSize,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(sy)
	}
	return sy
}

// Run executes one full inventory sync for a user. Individual item
// failures are counted but never abort the run; only a page-level fetch
// error marks the whole run failed.
func (s *Syncer) Run(ctx context.Context, userID string) (*domain.SyncRun, error) {
	runID, err := s.store.InsertSyncRun(ctx, userID, syncTypeInventory)
	if err != nil {
		return nil, fmt.Errorf("recording sync start: %w", err)
	}

	start := time.Now()
	synced, failed, runErr := s.syncPages(ctx, userID)

	status := domain.SyncCompleted
	errText := ""
	if runErr != nil {
		status = domain.SyncFailed
		errText = runErr.Error()
	}

	if err := s.store.CompleteSyncRun(ctx, runID, status, synced, failed, errText); err != nil {
		// The row stays at started, which ListSyncRuns surfaces as a
		// stuck run.
		return nil, fmt.Errorf("recording sync completion: %w", err)
	}

	metrics.SyncRunsTotal.WithLabelValues(string(status)).Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	s.log.Info("sync run finished",
		"user_id", userID,
		"status", status,
		"items_synced", synced,
		"items_failed", failed,
	)

	run, err := s.store.GetSyncRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("loading sync run: %w", err)
	}
	return run, runErr
}

// RunAll syncs every connected user sequentially. Used by the scheduler.
func (s *Syncer) RunAll(ctx context.Context) error {
	userIDs, err := s.store.ListCredentialUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing connected users: %w", err)
	}

	var errs []error
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.Run(ctx, userID); err != nil {
			s.log.Error("sync run failed", "user_id", userID, "error", err)
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
		}
	}

	return errors.Join(errs...)
}

// syncPages walks the remote inventory and reconciles each item.
func (s *Syncer) syncPages(ctx context.Context, userID string) (synced, failed int, err error) {
	offset := 0

	for {
		page, err := s.sell.ListInventoryItems(ctx, userID, s.pageSize, offset)
		if err != nil {
			return synced, failed, fmt.Errorf("listing remote inventory at offset %d: %w", offset, err)
		}

		for _, item := range page.Items {
			if err := s.reconcileItem(ctx, userID, item); err != nil {
				failed++
				s.log.Warn("item reconciliation failed",
					"user_id", userID,
					"sku", item.SKU,
					"error", err,
				)
				continue
			}
			synced++
		}

		if !page.HasMore || len(page.Items) == 0 {
			return synced, failed, nil
		}
		offset += len(page.Items)
	}
}

// reconcileItem matches a remote inventory item to a local book by SKU,
// falling back to ISBN, and mirrors the offered state onto the book.
func (s *Syncer) reconcileItem(ctx context.Context, userID string, item ebay.RemoteItem) error {
	book, err := s.store.GetBookBySKU(ctx, userID, item.SKU)
	if errors.Is(err, pgx.ErrNoRows) {
		book, err = s.matchByISBN(ctx, userID, item.ISBN)
	}
	if err != nil {
		return fmt.Errorf("matching %q: %w", item.SKU, err)
	}

	// The item exists remotely, so a book still marked in stock has been
	// listed out-of-band.
	if book.Status == domain.BookInStock {
		if err := s.store.SetBookStatus(ctx, book.ID, domain.BookListed); err != nil {
			return fmt.Errorf("updating book status: %w", err)
		}
	}

	return nil
}

func (s *Syncer) matchByISBN(ctx context.Context, userID, isbn string) (*domain.Book, error) {
	if isbn == "" {
		return nil, pgx.ErrNoRows
	}

	books, _, err := s.store.ListBooks(ctx, userID, &store.BookQuery{ISBN: &isbn, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &books[0], nil
}
