// Package ebay provides eBay sell-side API clients abstracted behind
// interfaces for testability: a per-user OAuth token manager and a client
// for the inventory item / offer / publish pipeline.
package ebay

import (
	"context"

	domain "github.com/bookmint/bookmint/pkg/types"
)

// TokenSource yields a currently valid access token for a user.
type TokenSource interface {
	AccessToken(ctx context.Context, userID string) (string, error)
}

// CredentialStore persists per-user OAuth credentials.
// GetCredential returns (nil, nil) when the user has no stored credential.
type CredentialStore interface {
	GetCredential(ctx context.Context, userID string) (*domain.Credential, error)
	UpsertCredential(ctx context.Context, cred *domain.Credential) error
	DeleteCredential(ctx context.Context, userID string) error
}

// InventoryItem describes a book as an eBay inventory item, keyed by SKU.
type InventoryItem struct {
	SKU         string
	Title       string
	Description string
	Condition   domain.Condition
	ISBN        string
	ImageURL    string
	Quantity    int
}

// Offer describes a fixed-price offer for an existing inventory item.
type Offer struct {
	SKU                 string
	Price               float64
	Currency            string
	Quantity            int
	CategoryID          string
	ListingDescription  string
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
	MerchantLocationKey string
}

// RemoteItem is an inventory item as reported by the marketplace.
type RemoteItem struct {
	SKU      string
	Title    string
	ISBN     string
	Quantity int
}

// InventoryPage is one page of the marketplace inventory listing.
type InventoryPage struct {
	Items   []RemoteItem
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// SellAPI defines the marketplace operations consumed by the publisher
// pipeline and the bulk sync job. Implementations fetch a fresh token per
// call via a TokenSource.
type SellAPI interface {
	UpsertInventoryItem(ctx context.Context, userID string, item InventoryItem) error
	CreateOffer(ctx context.Context, userID string, offer Offer) (offerID string, err error)
	PublishOffer(ctx context.Context, userID, offerID string) (listingID string, err error)
	ListInventoryItems(ctx context.Context, userID string, limit, offset int) (*InventoryPage, error)
}
