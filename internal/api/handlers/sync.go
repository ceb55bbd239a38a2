package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/store"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// InventorySyncer defines the bulk sync operation the handler triggers.
type InventorySyncer interface {
	Run(ctx context.Context, userID string) (*domain.SyncRun, error)
}

// SyncHandler handles bulk inventory sync endpoints.
type SyncHandler struct {
	store  store.Store
	syncer InventorySyncer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(s store.Store, syncer InventorySyncer) *SyncHandler {
	return &SyncHandler{store: s, syncer: syncer}
}

// --- Input/Output types ---

// TriggerSyncInput is the input for triggering a sync run.
type TriggerSyncInput struct {
	Identity
}

// SyncRunOutput is the response carrying a single sync run.
type SyncRunOutput struct {
	Body domain.SyncRun
}

// ListSyncRunsInput is the input for listing sync run history.
type ListSyncRunsInput struct {
	Identity
	Limit int `query:"limit" doc:"Number of results (default 20)" minimum:"1" maximum:"100"`
}

// ListSyncRunsOutput is the response for sync run history.
type ListSyncRunsOutput struct {
	Body []domain.SyncRun
}

// GetSyncRunInput is the input for fetching a single sync run.
type GetSyncRunInput struct {
	Identity
	ID string `path:"id" doc:"Sync run UUID"`
}

const defaultSyncHistoryLimit = 20

// --- Handlers ---

// TriggerSync runs a bulk inventory sync for the caller and returns the
// completed run record. The run record is persisted even when the sync
// fails, so the outcome is always auditable.
func (h *SyncHandler) TriggerSync(
	ctx context.Context,
	input *TriggerSyncInput,
) (*SyncRunOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	run, runErr := h.syncer.Run(ctx, userID)
	if run == nil {
		if errors.Is(runErr, ebay.ErrNotAuthenticated) {
			return nil, huma.Error401Unauthorized("eBay account not connected")
		}
		return nil, huma.Error500InternalServerError("sync failed: " + runErr.Error())
	}

	return &SyncRunOutput{Body: *run}, nil
}

// ListSyncRuns returns the caller's sync run history, newest first.
func (h *SyncHandler) ListSyncRuns(
	ctx context.Context,
	input *ListSyncRunsInput,
) (*ListSyncRunsOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultSyncHistoryLimit
	}

	runs, err := h.store.ListSyncRuns(ctx, userID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing sync runs failed: " + err.Error())
	}

	if runs == nil {
		runs = []domain.SyncRun{}
	}

	return &ListSyncRunsOutput{Body: runs}, nil
}

// GetSyncRun returns a single sync run owned by the caller.
func (h *SyncHandler) GetSyncRun(
	ctx context.Context,
	input *GetSyncRunInput,
) (*SyncRunOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	run, err := h.store.GetSyncRun(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("sync run not found")
		}
		return nil, huma.Error500InternalServerError("fetching sync run failed: " + err.Error())
	}

	if run.UserID != userID {
		return nil, huma.Error404NotFound("sync run not found")
	}

	return &SyncRunOutput{Body: *run}, nil
}

// RegisterSyncRoutes registers sync endpoints with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Trigger inventory sync",
		Description: "Pages through the caller's eBay inventory and reconciles it against local books.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusUnauthorized, http.StatusInternalServerError},
	}, h.TriggerSync)

	huma.Register(api, huma.Operation{
		OperationID: "list-sync-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/runs",
		Summary:     "List sync runs",
		Description: "Returns the caller's sync run history, newest first.",
		Tags:        []string{"sync"},
	}, h.ListSyncRuns)

	huma.Register(api, huma.Operation{
		OperationID: "get-sync-run",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/runs/{id}",
		Summary:     "Get a sync run by ID",
		Description: "Returns a single sync run by its UUID.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSyncRun)
}
