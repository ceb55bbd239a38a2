package ebay

import (
	"errors"
	"fmt"
)

// Sentinel errors for credential and transport failures. Callers branch on
// these with errors.Is rather than matching message text.
var (
	// ErrNotAuthenticated means the user has no stored eBay credential and
	// must complete the OAuth consent flow.
	ErrNotAuthenticated = errors.New("ebay: not authenticated")

	// ErrTokenRefreshFailed means the marketplace rejected the refresh
	// token. The stored credential is left untouched; the user must
	// re-authorize.
	ErrTokenRefreshFailed = errors.New("ebay: token refresh failed")

	// ErrMarketplaceTimeout means an outbound eBay call exceeded its
	// bounded timeout. Distinct from hard failures so callers can choose
	// to retry the same stage.
	ErrMarketplaceTimeout = errors.New("ebay: marketplace request timed out")
)

// Stage identifies a step of the listing publication pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageInventory Stage = "inventory_item"
	StageOffer     Stage = "offer"
	StagePublish   Stage = "publish"
)

// StageError reports a pipeline stage failure, carrying the marketplace's
// raw error text so a caller can diagnose before retrying from that stage.
type StageError struct {
	Stage      Stage
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("ebay: %s stage failed (status %d): %s", e.Stage, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("ebay: %s stage failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("ebay: %s stage failed: %s", e.Stage, e.Message)
}

// Unwrap exposes the underlying cause, e.g. ErrMarketplaceTimeout.
func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage extracts the pipeline stage from err, if err is a StageError.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
