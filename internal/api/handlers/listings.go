package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/store"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// ListingPublisher defines the pipeline operations the listings handler
// drives.
type ListingPublisher interface {
	Publish(ctx context.Context, userID, bookID string) (*domain.Listing, error)
	End(ctx context.Context, userID, listingID string) (*domain.Listing, error)
}

// ListingsHandler handles listing pipeline and query endpoints.
type ListingsHandler struct {
	store     store.Store
	publisher ListingPublisher
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store, p ListingPublisher) *ListingsHandler {
	return &ListingsHandler{store: s, publisher: p}
}

// --- Input/Output types ---

// PublishListingInput is the request body for publishing a book.
type PublishListingInput struct {
	Identity
	Body struct {
		BookID string `json:"book_id" doc:"Book UUID to publish"`
	}
}

// PublishListingOutput is the response for a publish request.
type PublishListingOutput struct {
	Body domain.Listing
}

// ListListingsInput is the input for listing the caller's listings.
type ListListingsInput struct {
	Identity
	Limit int `query:"limit" doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	Identity
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// EndListingInput is the input for ending a live listing.
type EndListingInput struct {
	Identity
	ID string `path:"id" doc:"Listing UUID"`
}

// EndListingOutput is the response for ending a listing.
type EndListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// Publish runs the publication pipeline for a book. The pipeline resumes
// from the last completed stage, so retrying a failed publish is safe.
func (h *ListingsHandler) Publish(
	ctx context.Context,
	input *PublishListingInput,
) (*PublishListingOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	if input.Body.BookID == "" {
		return nil, huma.Error422UnprocessableEntity("book_id is required")
	}

	l, err := h.publisher.Publish(ctx, userID, input.Body.BookID)
	if err != nil {
		return nil, publishError(err)
	}

	return &PublishListingOutput{Body: *l}, nil
}

// publishError maps pipeline failures to HTTP errors.
func publishError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return huma.Error404NotFound("book not found")
	case errors.Is(err, ebay.ErrNotAuthenticated):
		return huma.Error401Unauthorized("eBay account not connected")
	case errors.Is(err, ebay.ErrTokenRefreshFailed):
		return huma.Error401Unauthorized("eBay authorization expired, reconnect required")
	case errors.Is(err, ebay.ErrMarketplaceTimeout):
		return huma.Error504GatewayTimeout("marketplace request timed out: " + err.Error())
	}

	if stage, ok := ebay.FailedStage(err); ok {
		return huma.Error502BadGateway(
			fmt.Sprintf("publish failed at %s stage: %v", stage, err),
		)
	}

	return huma.Error500InternalServerError("publish failed: " + err.Error())
}

// ListListings returns the caller's listings, newest first.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	listings, err := h.store.ListListings(ctx, userID, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings

	return resp, nil
}

// GetListing returns a single listing owned by the caller.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	l, err := h.store.GetListing(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("listing not found")
		}
		return nil, huma.Error500InternalServerError("fetching listing failed: " + err.Error())
	}

	if l.UserID != userID {
		return nil, huma.Error404NotFound("listing not found")
	}

	return &GetListingOutput{Body: *l}, nil
}

// EndListing ends a live listing and returns the book to stock.
func (h *ListingsHandler) EndListing(
	ctx context.Context,
	input *EndListingInput,
) (*EndListingOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	l, err := h.publisher.End(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("listing not found")
		}
		return nil, huma.Error500InternalServerError("ending listing failed: " + err.Error())
	}

	return &EndListingOutput{Body: *l}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "publish-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/publish",
		Summary:     "Publish a book to eBay",
		Description: "Runs the inventory item, offer, and publish stages, resuming from " +
			"the last completed stage on retry.",
		Tags: []string{"listings"},
		Errors: []int{
			http.StatusUnauthorized,
			http.StatusNotFound,
			http.StatusBadGateway,
			http.StatusGatewayTimeout,
		},
	}, h.Publish)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns the caller's listings, newest first.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID: "end-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/end",
		Summary:     "End a listing",
		Description: "Ends a live listing and returns the book to stock.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.EndListing)
}
