// Package domain defines the core business types for bookmint.
package domain

import "time"

// Condition represents the physical condition of a book.
type Condition string

// Condition constants.
const (
	ConditionNew        Condition = "new"
	ConditionLikeNew    Condition = "like_new"
	ConditionVeryGood   Condition = "very_good"
	ConditionGood       Condition = "good"
	ConditionAcceptable Condition = "acceptable"
)

// BookStatus represents where a book sits in the resale flow.
type BookStatus string

// Book status constants.
const (
	BookInStock BookStatus = "in_stock"
	BookListed  BookStatus = "listed"
	BookSold    BookStatus = "sold"
)

// Book represents an inventory item: a physical book acquired for resale.
type Book struct {
	ID     string `json:"id"      db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	ISBN   string `json:"isbn"    db:"isbn"`
	SKU    string `json:"sku"     db:"sku"`

	Title       string    `json:"title"                  db:"title"`
	Author      string    `json:"author,omitempty"       db:"author"`
	Description string    `json:"description,omitempty"  db:"description"`
	Publisher   string    `json:"publisher,omitempty"    db:"publisher"`
	PublishedAt string    `json:"published_at,omitempty" db:"published_at"`
	CoverURL    string    `json:"cover_url,omitempty"    db:"cover_url"`
	Condition   Condition `json:"condition"              db:"condition"`

	// Pricing
	PurchasePrice float64 `json:"purchase_price" db:"purchase_price"`
	AskingPrice   float64 `json:"asking_price"   db:"asking_price"`
	Currency      string  `json:"currency"       db:"currency"`

	Status    BookStatus `json:"status"     db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// Margin returns the absolute profit if the book sells at asking price.
func (b *Book) Margin() float64 {
	return b.AskingPrice - b.PurchasePrice
}

// MarginPct returns the profit margin as a percentage of the purchase
// price, or 0 when the purchase price is unknown.
func (b *Book) MarginPct() float64 {
	if b.PurchasePrice <= 0 {
		return 0
	}
	return (b.AskingPrice - b.PurchasePrice) / b.PurchasePrice * 100
}

// Credential holds a user's eBay OAuth tokens. At most one row exists per
// user; ExpiresAt always corresponds to the stored AccessToken.
type Credential struct {
	UserID       string    `json:"user_id"       db:"user_id"`
	AccessToken  string    `json:"access_token"  db:"access_token"`
	RefreshToken string    `json:"refresh_token" db:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"    db:"expires_at"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// ListingStatus tracks how far a listing has progressed through the
// publication pipeline.
type ListingStatus string

// Listing status constants, in pipeline order.
const (
	ListingDraft        ListingStatus = "draft"
	ListingOfferCreated ListingStatus = "offer_created"
	ListingLive         ListingStatus = "listed"
	ListingEnded        ListingStatus = "ended"
)

// Listing represents a local record of a book offered on eBay.
// EbayListingID is only set once the listing reaches "listed".
type Listing struct {
	ID     string `json:"id"      db:"id"`
	BookID string `json:"book_id" db:"book_id"`
	UserID string `json:"user_id" db:"user_id"`
	SKU    string `json:"sku"     db:"sku"`

	OfferID       string        `json:"offer_id,omitempty"        db:"offer_id"`
	EbayListingID string        `json:"ebay_listing_id,omitempty" db:"ebay_listing_id"`
	Status        ListingStatus `json:"status"                    db:"status"`

	// Snapshots of what was sent to eBay, for audit and display.
	PriceSnapshot       float64 `json:"price_snapshot"                 db:"price_snapshot"`
	DescriptionSnapshot string  `json:"description_snapshot,omitempty" db:"description_snapshot"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SyncStatus represents the lifecycle of a bulk sync run.
type SyncStatus string

// Sync status constants. A row stuck at "started" indicates a run that
// died before completion.
const (
	SyncStarted   SyncStatus = "started"
	SyncCompleted SyncStatus = "completed"
	SyncFailed    SyncStatus = "failed"
)

// SyncRun records a single bulk inventory sync execution.
type SyncRun struct {
	ID          string     `json:"id"                     db:"id"`
	UserID      string     `json:"user_id"                db:"user_id"`
	SyncType    string     `json:"sync_type"              db:"sync_type"`
	Status      SyncStatus `json:"status"                 db:"status"`
	ItemsSynced int        `json:"items_synced"           db:"items_synced"`
	ItemsFailed int        `json:"items_failed"           db:"items_failed"`
	ErrorText   string     `json:"error_text,omitempty"   db:"error_text"`
	StartedAt   time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
