package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/bookmint/bookmint/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateBook inserts a new book.
func (s *PostgresStore) CreateBook(ctx context.Context, b *domain.Book) error {
	args := pgx.NamedArgs{
		"user_id":        b.UserID,
		"isbn":           b.ISBN,
		"sku":            b.SKU,
		"title":          b.Title,
		"author":         b.Author,
		"description":    b.Description,
		"publisher":      b.Publisher,
		"published_at":   b.PublishedAt,
		"cover_url":      b.CoverURL,
		"condition":      string(b.Condition),
		"purchase_price": b.PurchasePrice,
		"asking_price":   b.AskingPrice,
		"currency":       b.Currency,
		"status":         string(b.Status),
	}

	return s.pool.QueryRow(ctx, queryCreateBook, args).Scan(
		&b.ID, &b.CreatedAt, &b.UpdatedAt,
	)
}

// GetBook retrieves one of the user's books by its internal UUID.
func (s *PostgresStore) GetBook(ctx context.Context, userID, id string) (*domain.Book, error) {
	b := &domain.Book{}
	if err := scanBook(s.pool.QueryRow(ctx, queryGetBook, userID, id), b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookBySKU retrieves one of the user's books by its SKU.
func (s *PostgresStore) GetBookBySKU(ctx context.Context, userID, sku string) (*domain.Book, error) {
	b := &domain.Book{}
	if err := scanBook(s.pool.QueryRow(ctx, queryGetBookBySKU, userID, sku), b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks queries books with optional filters, returning results and total count.
func (s *PostgresStore) ListBooks(
	ctx context.Context,
	userID string,
	opts *BookQuery,
) ([]domain.Book, int, error) {
	dataSQL, countSQL, args := opts.ToSQL(userID)

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting books: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := scanBookRow(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating books: %w", err)
	}

	return books, total, nil
}

// UpdateBook updates all mutable fields of a book, scoped to its owner.
func (s *PostgresStore) UpdateBook(ctx context.Context, b *domain.Book) error {
	args := pgx.NamedArgs{
		"id":             b.ID,
		"user_id":        b.UserID,
		"isbn":           b.ISBN,
		"title":          b.Title,
		"author":         b.Author,
		"description":    b.Description,
		"publisher":      b.Publisher,
		"published_at":   b.PublishedAt,
		"cover_url":      b.CoverURL,
		"condition":      string(b.Condition),
		"purchase_price": b.PurchasePrice,
		"asking_price":   b.AskingPrice,
		"currency":       b.Currency,
		"status":         string(b.Status),
	}

	tag, err := s.pool.Exec(ctx, queryUpdateBook, args)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetBookStatus updates only the status of a book.
func (s *PostgresStore) SetBookStatus(
	ctx context.Context,
	id string,
	status domain.BookStatus,
) error {
	_, err := s.pool.Exec(ctx, querySetBookStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("setting book status: %w", err)
	}
	return nil
}

// DeleteBook removes one of the user's books.
func (s *PostgresStore) DeleteBook(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteBook, userID, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetCredential retrieves a user's eBay OAuth credential, or (nil, nil)
// when none is stored.
func (s *PostgresStore) GetCredential(
	ctx context.Context,
	userID string,
) (*domain.Credential, error) {
	c := &domain.Credential{}
	err := s.pool.QueryRow(ctx, queryGetCredential, userID).Scan(
		&c.UserID, &c.AccessToken, &c.RefreshToken, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting credential: %w", err)
	}
	return c, nil
}

// UpsertCredential inserts or replaces a user's eBay OAuth credential.
func (s *PostgresStore) UpsertCredential(ctx context.Context, cred *domain.Credential) error {
	args := pgx.NamedArgs{
		"user_id":       cred.UserID,
		"access_token":  cred.AccessToken,
		"refresh_token": cred.RefreshToken,
		"expires_at":    cred.ExpiresAt,
	}

	if _, err := s.pool.Exec(ctx, queryUpsertCredential, args); err != nil {
		return fmt.Errorf("upserting credential: %w", err)
	}
	return nil
}

// DeleteCredential removes a user's eBay OAuth credential.
func (s *PostgresStore) DeleteCredential(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteCredential, userID); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// ListCredentialUserIDs returns the IDs of every user with a stored
// marketplace connection.
func (s *PostgresStore) ListCredentialUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListCredentialUserIDs)
	if err != nil {
		return nil, fmt.Errorf("querying credential user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning credential user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credential user ids: %w", err)
	}

	return ids, nil
}

// CreateListing inserts a new listing record in draft status.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	if l.Status == "" {
		l.Status = domain.ListingDraft
	}

	args := pgx.NamedArgs{
		"book_id":              l.BookID,
		"user_id":              l.UserID,
		"sku":                  l.SKU,
		"status":               string(l.Status),
		"price_snapshot":       l.PriceSnapshot,
		"description_snapshot": l.DescriptionSnapshot,
	}

	return s.pool.QueryRow(ctx, queryCreateListing, args).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListing, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingByBook retrieves the most recent listing for a book, or
// pgx.ErrNoRows when the book was never sent to the pipeline.
func (s *PostgresStore) GetListingByBook(
	ctx context.Context,
	bookID string,
) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByBook, bookID), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings returns a user's listings, most recent first.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListListings, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListingRow(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// SetListingOffer records the marketplace offer ID and advances the
// listing to offer_created.
func (s *PostgresStore) SetListingOffer(ctx context.Context, id, offerID string) error {
	if _, err := s.pool.Exec(ctx, querySetListingOffer, id, offerID); err != nil {
		return fmt.Errorf("setting listing offer: %w", err)
	}
	return nil
}

// SetListingPublished records the live marketplace listing ID and advances
// the listing to listed.
func (s *PostgresStore) SetListingPublished(ctx context.Context, id, ebayListingID string) error {
	if _, err := s.pool.Exec(ctx, querySetListingPublished, id, ebayListingID); err != nil {
		return fmt.Errorf("setting listing published: %w", err)
	}
	return nil
}

// SetListingEnded marks a listing as ended.
func (s *PostgresStore) SetListingEnded(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, querySetListingEnded, id); err != nil {
		return fmt.Errorf("setting listing ended: %w", err)
	}
	return nil
}

// MarkListingPublishedByOfferID sets a listing to listed by its offer ID,
// recording the live marketplace listing ID. Only listings still in the
// pipeline (draft or offer_created) are updated: a confirmation
// redelivered after the user ended the listing must not bring it back.
// Returns the number of rows changed; zero means the offer was unknown
// or the listing already left the pipeline, which callers treat as
// success.
func (s *PostgresStore) MarkListingPublishedByOfferID(
	ctx context.Context,
	offerID, ebayListingID string,
) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryMarkListingPublishedByOffer, offerID, ebayListingID)
	if err != nil {
		return 0, fmt.Errorf("marking listing published: %w", err)
	}
	return tag.RowsAffected(), nil
}

// PurgeUser removes a user's credential and listings in one transaction.
func (s *PostgresStore) PurgeUser(ctx context.Context, userID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning purge transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryDeleteUserListings, userID); err != nil {
		return fmt.Errorf("purging listings: %w", err)
	}
	if _, err := tx.Exec(ctx, queryDeleteUserCredential, userID); err != nil {
		return fmt.Errorf("purging credential: %w", err)
	}

	return tx.Commit(ctx)
}

// InsertSyncRun creates a sync run record in started status.
func (s *PostgresStore) InsertSyncRun(
	ctx context.Context,
	userID, syncType string,
) (string, error) {
	var id string
	err := s.pool.QueryRow(ctx, queryInsertSyncRun, userID, syncType).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting sync run: %w", err)
	}
	return id, nil
}

// CompleteSyncRun records the outcome of a sync run.
func (s *PostgresStore) CompleteSyncRun(
	ctx context.Context,
	id string,
	status domain.SyncStatus,
	itemsSynced, itemsFailed int,
	errText string,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteSyncRun,
		id, string(status), itemsSynced, itemsFailed, errText,
	)
	if err != nil {
		return fmt.Errorf("completing sync run: %w", err)
	}
	return nil
}

// GetSyncRun retrieves a sync run by its ID.
func (s *PostgresStore) GetSyncRun(ctx context.Context, id string) (*domain.SyncRun, error) {
	r := &domain.SyncRun{}
	err := s.pool.QueryRow(ctx, queryGetSyncRun, id).Scan(
		&r.ID, &r.UserID, &r.SyncType, &r.Status,
		&r.ItemsSynced, &r.ItemsFailed, &r.ErrorText,
		&r.StartedAt, &r.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListSyncRuns returns a user's sync runs, most recent first.
func (s *PostgresStore) ListSyncRuns(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListSyncRuns, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SyncRun
	for rows.Next() {
		var r domain.SyncRun
		err := rows.Scan(
			&r.ID, &r.UserID, &r.SyncType, &r.Status,
			&r.ItemsSynced, &r.ItemsFailed, &r.ErrorText,
			&r.StartedAt, &r.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}

	return runs, nil
}

// RecoverStaleSyncRuns marks runs stuck at started since before the cutoff
// as failed.
func (s *PostgresStore) RecoverStaleSyncRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryRecoverStaleSyncRuns, cutoff)
	if err != nil {
		return 0, fmt.Errorf("recovering stale sync runs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner, b *domain.Book) error {
	return row.Scan(
		&b.ID, &b.UserID, &b.ISBN, &b.SKU,
		&b.Title, &b.Author, &b.Description, &b.Publisher,
		&b.PublishedAt, &b.CoverURL, &b.Condition,
		&b.PurchasePrice, &b.AskingPrice, &b.Currency,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
}

func scanBookRow(rows pgx.Rows, b *domain.Book) error {
	return scanBook(rows, b)
}

func scanListing(row rowScanner, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.BookID, &l.UserID, &l.SKU,
		&l.OfferID, &l.EbayListingID, &l.Status,
		&l.PriceSnapshot, &l.DescriptionSnapshot, &l.CreatedAt, &l.UpdatedAt,
	)
}

func scanListingRow(rows pgx.Rows, l *domain.Listing) error {
	return scanListing(rows, l)
}
