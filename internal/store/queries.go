package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Book queries.
const (
	queryCreateBook = `
		INSERT INTO books (
			user_id, isbn, sku,
			title, author, description, publisher, published_at, cover_url, condition,
			purchase_price, asking_price, currency,
			status, created_at, updated_at
		) VALUES (
			@user_id, @isbn, @sku,
			@title, @author, @description, @publisher, @published_at, @cover_url, @condition,
			@purchase_price, @asking_price, @currency,
			@status, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetBook = `
		SELECT id, user_id, isbn, sku,
			title, COALESCE(author, ''), COALESCE(description, ''), COALESCE(publisher, ''),
			COALESCE(published_at, ''), COALESCE(cover_url, ''), condition,
			purchase_price, asking_price, currency,
			status, created_at, updated_at
		FROM books
		WHERE user_id = $1 AND id = $2`

	queryGetBookBySKU = `
		SELECT id, user_id, isbn, sku,
			title, COALESCE(author, ''), COALESCE(description, ''), COALESCE(publisher, ''),
			COALESCE(published_at, ''), COALESCE(cover_url, ''), condition,
			purchase_price, asking_price, currency,
			status, created_at, updated_at
		FROM books
		WHERE user_id = $1 AND sku = $2`

	queryUpdateBook = `
		UPDATE books SET
			isbn = @isbn,
			title = @title,
			author = @author,
			description = @description,
			publisher = @publisher,
			published_at = @published_at,
			cover_url = @cover_url,
			condition = @condition,
			purchase_price = @purchase_price,
			asking_price = @asking_price,
			currency = @currency,
			status = @status,
			updated_at = now()
		WHERE user_id = @user_id AND id = @id`

	querySetBookStatus = `
		UPDATE books SET
			status = $2,
			updated_at = now()
		WHERE id = $1`

	queryDeleteBook = `DELETE FROM books WHERE user_id = $1 AND id = $2`
)

// Credential queries. One row per user.
const (
	queryGetCredential = `
		SELECT user_id, access_token, refresh_token, expires_at, created_at, updated_at
		FROM ebay_credentials
		WHERE user_id = $1`

	queryUpsertCredential = `
		INSERT INTO ebay_credentials (
			user_id, access_token, refresh_token, expires_at, created_at, updated_at
		) VALUES (
			@user_id, @access_token, @refresh_token, @expires_at, now(), now()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()`

	queryDeleteCredential = `DELETE FROM ebay_credentials WHERE user_id = $1`

	queryListCredentialUserIDs = `SELECT user_id FROM ebay_credentials ORDER BY user_id`
)

// Listing queries.
const (
	queryCreateListing = `
		INSERT INTO listings (
			book_id, user_id, sku, status,
			price_snapshot, description_snapshot, created_at, updated_at
		) VALUES (
			@book_id, @user_id, @sku, @status,
			@price_snapshot, @description_snapshot, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetListing = `
		SELECT id, book_id, user_id, sku,
			COALESCE(offer_id, ''), COALESCE(ebay_listing_id, ''), status,
			price_snapshot, COALESCE(description_snapshot, ''), created_at, updated_at
		FROM listings
		WHERE id = $1`

	queryGetListingByBook = `
		SELECT id, book_id, user_id, sku,
			COALESCE(offer_id, ''), COALESCE(ebay_listing_id, ''), status,
			price_snapshot, COALESCE(description_snapshot, ''), created_at, updated_at
		FROM listings
		WHERE book_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	queryListListings = `
		SELECT id, book_id, user_id, sku,
			COALESCE(offer_id, ''), COALESCE(ebay_listing_id, ''), status,
			price_snapshot, COALESCE(description_snapshot, ''), created_at, updated_at
		FROM listings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	querySetListingOffer = `
		UPDATE listings SET
			offer_id = $2,
			status = 'offer_created',
			updated_at = now()
		WHERE id = $1`

	querySetListingPublished = `
		UPDATE listings SET
			ebay_listing_id = $2,
			status = 'listed',
			updated_at = now()
		WHERE id = $1`

	querySetListingEnded = `
		UPDATE listings SET
			status = 'ended',
			updated_at = now()
		WHERE id = $1`

	queryMarkListingPublishedByOffer = `
		UPDATE listings SET
			ebay_listing_id = $2,
			status = 'listed',
			updated_at = now()
		WHERE offer_id = $1 AND status IN ('draft', 'offer_created')`

	queryDeleteUserListings   = `DELETE FROM listings WHERE user_id = $1`
	queryDeleteUserCredential = `DELETE FROM ebay_credentials WHERE user_id = $1`
)

// Sync run queries.
const (
	queryInsertSyncRun = `
		INSERT INTO sync_runs (user_id, sync_type, status, started_at)
		VALUES ($1, $2, 'started', now())
		RETURNING id`

	queryCompleteSyncRun = `
		UPDATE sync_runs SET
			status = $2,
			items_synced = $3,
			items_failed = $4,
			error_text = NULLIF($5, ''),
			completed_at = now()
		WHERE id = $1`

	queryGetSyncRun = `
		SELECT id, user_id, sync_type, status,
			items_synced, items_failed, COALESCE(error_text, ''),
			started_at, completed_at
		FROM sync_runs
		WHERE id = $1`

	queryListSyncRuns = `
		SELECT id, user_id, sync_type, status,
			items_synced, items_failed, COALESCE(error_text, ''),
			started_at, completed_at
		FROM sync_runs
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryRecoverStaleSyncRuns = `
		UPDATE sync_runs SET
			status = 'failed',
			error_text = 'recovered: run never completed',
			completed_at = now()
		WHERE status = 'started' AND started_at < $1`
)
