package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/store"
)

// Connector defines the OAuth lifecycle operations the connection handler
// drives.
type Connector interface {
	ConsentURL(state string) string
	Exchange(ctx context.Context, userID, code string) error
	Disconnect(ctx context.Context, userID string) error
}

// ConnectionHandler handles the eBay account connection lifecycle.
type ConnectionHandler struct {
	store  store.Store
	tokens Connector
	rl     *ebay.RateLimiter
}

// NewConnectionHandler creates a new ConnectionHandler. rl may be nil.
func NewConnectionHandler(s store.Store, tokens Connector, rl *ebay.RateLimiter) *ConnectionHandler {
	return &ConnectionHandler{store: s, tokens: tokens, rl: rl}
}

// --- Input/Output types ---

// ConnectInput is the input for starting the consent flow.
type ConnectInput struct {
	Identity
}

// ConnectOutput is the response for the connect endpoint.
type ConnectOutput struct {
	Body struct {
		ConsentURL string `json:"consent_url" doc:"eBay authorization URL the user must visit"`
	}
}

// CallbackInput is the input for the OAuth redirect callback.
type CallbackInput struct {
	Identity
	Code  string `query:"code"  doc:"Authorization code from eBay"`
	State string `query:"state" doc:"Opaque state echoed back by eBay"`
}

// ConnectionQuota reports marketplace API quota usage.
type ConnectionQuota struct {
	DailyLimit int64     `json:"daily_limit" example:"5000"`
	DailyUsed  int64     `json:"daily_used"  example:"142"`
	Remaining  int64     `json:"remaining"   example:"4858"`
	ResetAt    time.Time `json:"reset_at"    doc:"When the current 24-hour window expires"`
}

// ConnectionOutput is the response for the connection status endpoint.
type ConnectionOutput struct {
	Body struct {
		Connected bool             `json:"connected"`
		ExpiresAt *time.Time       `json:"expires_at,omitempty" doc:"Access token expiry for the stored credential"`
		Quota     *ConnectionQuota `json:"quota,omitempty"`
	}
}

// --- Handlers ---

// Connect returns the eBay consent URL the user must visit to authorize
// bookmint.
func (h *ConnectionHandler) Connect(
	_ context.Context,
	input *ConnectInput,
) (*ConnectOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	resp := &ConnectOutput{}
	resp.Body.ConsentURL = h.tokens.ConsentURL(userID)
	return resp, nil
}

// Callback completes the consent flow by exchanging the authorization code
// for tokens.
func (h *ConnectionHandler) Callback(
	ctx context.Context,
	input *CallbackInput,
) (*StatusOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	if input.Code == "" {
		return nil, huma.Error422UnprocessableEntity("code is required")
	}

	// State is the user id handed out by Connect. A mismatch means the
	// redirect does not belong to this user's consent flow.
	if input.State != userID {
		return nil, huma.Error400BadRequest("state mismatch")
	}

	if err := h.tokens.Exchange(ctx, userID, input.Code); err != nil {
		return nil, huma.Error502BadGateway("token exchange failed: " + err.Error())
	}

	resp := &StatusOutput{}
	resp.Body.Status = "connected"
	return resp, nil
}

// Status reports whether the caller has a stored eBay credential, and the
// current marketplace API quota.
func (h *ConnectionHandler) Status(
	ctx context.Context,
	input *ConnectInput,
) (*ConnectionOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	cred, err := h.store.GetCredential(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching credential failed: " + err.Error())
	}

	resp := &ConnectionOutput{}
	if cred != nil {
		resp.Body.Connected = true
		expires := cred.ExpiresAt
		resp.Body.ExpiresAt = &expires
	}

	if h.rl != nil {
		resp.Body.Quota = &ConnectionQuota{
			DailyLimit: h.rl.MaxDaily(),
			DailyUsed:  h.rl.DailyCount(),
			Remaining:  h.rl.Remaining(),
			ResetAt:    h.rl.ResetAt(),
		}
	}

	return resp, nil
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body struct {
		Status string `json:"status" example:"connected"`
	}
}

// Disconnect removes the caller's stored eBay credential.
func (h *ConnectionHandler) Disconnect(
	ctx context.Context,
	input *ConnectInput,
) (*struct{}, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	if err := h.tokens.Disconnect(ctx, userID); err != nil {
		return nil, huma.Error500InternalServerError("disconnecting failed: " + err.Error())
	}

	return nil, nil
}

// RegisterConnectionRoutes registers eBay connection endpoints with the
// Huma API.
func RegisterConnectionRoutes(api huma.API, h *ConnectionHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ebay-connect",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/connect",
		Summary:     "Start eBay consent flow",
		Description: "Returns the authorization URL the user must visit to connect their eBay account.",
		Tags:        []string{"ebay"},
	}, h.Connect)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-callback",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/callback",
		Summary:     "Complete eBay consent flow",
		Description: "Exchanges the authorization code for tokens and stores the credential.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Callback)

	huma.Register(api, huma.Operation{
		OperationID: "ebay-connection-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/ebay/connection",
		Summary:     "Get eBay connection status",
		Description: "Reports whether a credential is stored and the current API quota.",
		Tags:        []string{"ebay"},
	}, h.Status)

	huma.Register(api, huma.Operation{
		OperationID:   "ebay-disconnect",
		Method:        http.MethodDelete,
		Path:          "/api/v1/ebay/connection",
		Summary:       "Disconnect eBay account",
		Description:   "Deletes the stored eBay credential.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
	}, h.Disconnect)
}
