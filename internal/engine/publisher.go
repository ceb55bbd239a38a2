// Package engine holds the business workflows that sit between the HTTP
// API and the marketplace: the listing publication pipeline and the bulk
// inventory sync.
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

// ListingDefaults carries the marketplace policy wiring every offer needs.
// These come from configuration; eBay rejects publishes without them.
type ListingDefaults struct {
	CategoryID          string
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
	MerchantLocationKey string
}

// Publisher drives a book through the three-stage listing pipeline:
// inventory item upsert, offer creation, offer publish. Stage progress is
// persisted on the Listing record, so a failed run can be re-invoked and
// resumes from the stage after the last one that succeeded.
type Publisher struct {
	store    store.Store
	sell     ebay.SellAPI
	defaults ListingDefaults
	log      *slog.Logger
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithPublisherLogger sets a custom logger.
func WithPublisherLogger(l *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.log = l
	}
}

// NewPublisher creates a Publisher with injected dependencies.
func NewPublisher(
	s store.Store,
	sell ebay.SellAPI,
	defaults ListingDefaults,
	opts ...PublisherOption,
) *Publisher {
	p := &Publisher{
		store:    s,
		sell:     sell,
		defaults: defaults,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish runs the pipeline for one of the user's books. Re-invoking for a
// book whose listing is already live is a no-op; re-invoking after a
// partial failure resumes from the failed stage. The offer stage is never
// repeated once an offer ID is recorded, since offer creation is not
// idempotent on the marketplace side.
func (p *Publisher) Publish(
	ctx context.Context,
	userID, bookID string,
) (*domain.Listing, error) {
	book, err := p.store.GetBook(ctx, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("loading book: %w", err)
	}

	listing, err := p.loadOrCreateListing(ctx, book)
	if err != nil {
		return nil, err
	}

	if listing.Status == domain.ListingLive {
		p.log.Info("listing already live",
			"sku", listing.SKU,
			"ebay_listing_id", listing.EbayListingID,
		)
		return listing, nil
	}

	if listing.Status == domain.ListingDraft {
		if err := p.runInventoryStage(ctx, userID, book); err != nil {
			return listing, err
		}
		if err := p.runOfferStage(ctx, userID, book, listing); err != nil {
			return listing, err
		}
	}

	if err := p.runPublishStage(ctx, userID, book, listing); err != nil {
		return listing, err
	}

	metrics.ListingsPublishedTotal.Inc()
	p.log.Info("listing published",
		"sku", listing.SKU,
		"offer_id", listing.OfferID,
		"ebay_listing_id", listing.EbayListingID,
	)

	return listing, nil
}

// End marks one of the user's listings as ended and returns the book to
// stock. The marketplace listing itself is ended via the seller UI; this
// records the local outcome.
func (p *Publisher) End(ctx context.Context, userID, listingID string) (*domain.Listing, error) {
	listing, err := p.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("loading listing: %w", err)
	}
	if listing.UserID != userID {
		return nil, pgx.ErrNoRows
	}

	if listing.Status == domain.ListingEnded {
		return listing, nil
	}

	if err := p.store.SetListingEnded(ctx, listing.ID); err != nil {
		return nil, err
	}
	listing.Status = domain.ListingEnded

	if err := p.store.SetBookStatus(ctx, listing.BookID, domain.BookInStock); err != nil {
		return nil, fmt.Errorf("returning book to stock: %w", err)
	}

	return listing, nil
}

// loadOrCreateListing returns the book's current listing, creating a fresh
// draft when none exists or the previous one ended.
func (p *Publisher) loadOrCreateListing(
	ctx context.Context,
	book *domain.Book,
) (*domain.Listing, error) {
	listing, err := p.store.GetListingByBook(ctx, book.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("loading listing: %w", err)
	}

	if listing != nil && listing.Status != domain.ListingEnded {
		return listing, nil
	}

	listing = &domain.Listing{
		BookID:              book.ID,
		UserID:              book.UserID,
		SKU:                 book.SKU,
		Status:              domain.ListingDraft,
		PriceSnapshot:       book.AskingPrice,
		DescriptionSnapshot: book.Description,
	}
	if err := p.store.CreateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}

	return listing, nil
}

// runInventoryStage pushes the SKU-keyed inventory item. The call is
// idempotent, so a repeat after a later-stage failure is safe.
func (p *Publisher) runInventoryStage(
	ctx context.Context,
	userID string,
	book *domain.Book,
) error {
	start := time.Now()

	err := p.sell.UpsertInventoryItem(ctx, userID, ebay.InventoryItem{
		SKU:         book.SKU,
		Title:       book.Title,
		Description: book.Description,
		Condition:   book.Condition,
		ISBN:        book.ISBN,
		ImageURL:    book.CoverURL,
		Quantity:    1,
	})

	p.observeStage(ebay.StageInventory, start, err)
	if err != nil {
		return fmt.Errorf("inventory stage: %w", err)
	}
	return nil
}

// runOfferStage creates the fixed-price offer and persists its ID before
// anything else happens. The recorded offer ID is what makes resuming
// possible without duplicating offers.
func (p *Publisher) runOfferStage(
	ctx context.Context,
	userID string,
	book *domain.Book,
	listing *domain.Listing,
) error {
	start := time.Now()

	offerID, err := p.sell.CreateOffer(ctx, userID, ebay.Offer{
		SKU:                 book.SKU,
		Price:               book.AskingPrice,
		Currency:            book.Currency,
		Quantity:            1,
		CategoryID:          p.defaults.CategoryID,
		ListingDescription:  book.Description,
		FulfillmentPolicyID: p.defaults.FulfillmentPolicyID,
		PaymentPolicyID:     p.defaults.PaymentPolicyID,
		ReturnPolicyID:      p.defaults.ReturnPolicyID,
		MerchantLocationKey: p.defaults.MerchantLocationKey,
	})

	p.observeStage(ebay.StageOffer, start, err)
	if err != nil {
		return fmt.Errorf("offer stage: %w", err)
	}

	if err := p.store.SetListingOffer(ctx, listing.ID, offerID); err != nil {
		return fmt.Errorf("recording offer: %w", err)
	}
	listing.OfferID = offerID
	listing.Status = domain.ListingOfferCreated

	return nil
}

func (p *Publisher) runPublishStage(
	ctx context.Context,
	userID string,
	book *domain.Book,
	listing *domain.Listing,
) error {
	start := time.Now()

	ebayListingID, err := p.sell.PublishOffer(ctx, userID, listing.OfferID)

	p.observeStage(ebay.StagePublish, start, err)
	if err != nil {
		return fmt.Errorf("publish stage: %w", err)
	}

	if err := p.store.SetListingPublished(ctx, listing.ID, ebayListingID); err != nil {
		return fmt.Errorf("recording publish: %w", err)
	}
	listing.EbayListingID = ebayListingID
	listing.Status = domain.ListingLive

	if err := p.store.SetBookStatus(ctx, book.ID, domain.BookListed); err != nil {
		return fmt.Errorf("updating book status: %w", err)
	}

	return nil
}

func (p *Publisher) observeStage(stage ebay.Stage, start time.Time, err error) {
	metrics.PublishStageDuration.WithLabelValues(string(stage)).
		Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PublishFailuresTotal.WithLabelValues(string(stage)).Inc()
	}
}
