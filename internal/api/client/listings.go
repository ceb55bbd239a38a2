package client

import (
	"context"
	"time"

	domain "github.com/bookmint/bookmint/pkg/types"
)

// listingList is the envelope for listing listings.
type listingList struct {
	Listings []domain.Listing `json:"listings"`
}

// PublishListing runs the publication pipeline for a book.
func (c *Client) PublishListing(ctx context.Context, bookID string) (*domain.Listing, error) {
	var l domain.Listing
	body := map[string]string{"book_id": bookID}
	if err := c.post(ctx, "/api/v1/listings/publish", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListListings returns the caller's listings.
func (c *Client) ListListings(ctx context.Context) ([]domain.Listing, error) {
	var list listingList
	if err := c.get(ctx, "/api/v1/listings", &list); err != nil {
		return nil, err
	}
	return list.Listings, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+id, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// EndListing ends a live listing and returns the book to stock.
func (c *Client) EndListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings/"+id+"/end", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ConnectionStatus reports the eBay connection state for the caller.
type ConnectionStatus struct {
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Quota     *Quota     `json:"quota,omitempty"`
}

// Quota reports marketplace API quota usage.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// consentResponse is the envelope for the connect endpoint.
type consentResponse struct {
	ConsentURL string `json:"consent_url"`
}

// Connect returns the eBay consent URL the user must visit.
func (c *Client) Connect(ctx context.Context) (string, error) {
	var resp consentResponse
	if err := c.get(ctx, "/api/v1/ebay/connect", &resp); err != nil {
		return "", err
	}
	return resp.ConsentURL, nil
}

// GetConnection returns the eBay connection status and quota.
func (c *Client) GetConnection(ctx context.Context) (*ConnectionStatus, error) {
	var status ConnectionStatus
	if err := c.get(ctx, "/api/v1/ebay/connection", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Disconnect removes the stored eBay credential.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.del(ctx, "/api/v1/ebay/connection", nil)
}
