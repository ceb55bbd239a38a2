package client

import (
	"context"

	domain "github.com/bookmint/bookmint/pkg/types"
)

// TriggerSync runs a bulk inventory sync and returns the run record.
func (c *Client) TriggerSync(ctx context.Context) (*domain.SyncRun, error) {
	var run domain.SyncRun
	if err := c.post(ctx, "/api/v1/sync", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListSyncRuns returns the caller's sync run history.
func (c *Client) ListSyncRuns(ctx context.Context) ([]domain.SyncRun, error) {
	var runs []domain.SyncRun
	if err := c.get(ctx, "/api/v1/sync/runs", &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetSyncRun returns a single sync run by ID.
func (c *Client) GetSyncRun(ctx context.Context, id string) (*domain.SyncRun, error) {
	var run domain.SyncRun
	if err := c.get(ctx, "/api/v1/sync/runs/"+id, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
