// Package store defines the datastore abstraction for bookmint.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/bookmint/bookmint/pkg/types"
)

// BookQuery defines optional filters for book queries. All queries are
// scoped to a single user.
type BookQuery struct {
	Status    *string
	Condition *string
	ISBN      *string
	Search    *string // matches title or author, case-insensitive
	Limit     int     // default 50
	Offset    int
	OrderBy   string // "created_at", "price", "title"
}

// Store defines all data access operations for bookmint.
type Store interface {
	// Books
	CreateBook(ctx context.Context, b *domain.Book) error
	GetBook(ctx context.Context, userID, id string) (*domain.Book, error)
	GetBookBySKU(ctx context.Context, userID, sku string) (*domain.Book, error)
	ListBooks(ctx context.Context, userID string, opts *BookQuery) ([]domain.Book, int, error)
	UpdateBook(ctx context.Context, b *domain.Book) error
	SetBookStatus(ctx context.Context, id string, status domain.BookStatus) error
	DeleteBook(ctx context.Context, userID, id string) error

	// Credentials. GetCredential returns (nil, nil) when the user has no
	// stored credential; this implements ebay.CredentialStore.
	GetCredential(ctx context.Context, userID string) (*domain.Credential, error)
	UpsertCredential(ctx context.Context, cred *domain.Credential) error
	DeleteCredential(ctx context.Context, userID string) error
	ListCredentialUserIDs(ctx context.Context) ([]string, error)

	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	GetListingByBook(ctx context.Context, bookID string) (*domain.Listing, error)
	ListListings(ctx context.Context, userID string, limit int) ([]domain.Listing, error)
	SetListingOffer(ctx context.Context, id, offerID string) error
	SetListingPublished(ctx context.Context, id, ebayListingID string) error
	SetListingEnded(ctx context.Context, id string) error

	// MarkListingPublishedByOfferID applies an out-of-band publish
	// confirmation. The update is set-based, so duplicate deliveries of
	// the same event are harmless; zero rows affected means the offer is
	// unknown or the listing already live.
	MarkListingPublishedByOfferID(ctx context.Context, offerID, ebayListingID string) (int64, error)

	// PurgeUser removes a user's credential and listings. Used when the
	// marketplace reports an account deletion.
	PurgeUser(ctx context.Context, userID string) error

	// Sync runs
	InsertSyncRun(ctx context.Context, userID, syncType string) (id string, err error)
	CompleteSyncRun(
		ctx context.Context,
		id string,
		status domain.SyncStatus,
		itemsSynced, itemsFailed int,
		errText string,
	) error
	GetSyncRun(ctx context.Context, id string) (*domain.SyncRun, error)
	ListSyncRuns(ctx context.Context, userID string, limit int) ([]domain.SyncRun, error)

	// RecoverStaleSyncRuns marks runs stuck at "started" for longer than
	// olderThan as failed, returning how many were recovered.
	RecoverStaleSyncRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
