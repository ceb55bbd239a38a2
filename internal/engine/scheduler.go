package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic inventory sync for all connected users.
type Scheduler struct {
	cron   *cron.Cron
	syncer *Syncer
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that triggers a full sync on a fixed
// interval.
func NewScheduler(
	syncer *Syncer,
	syncInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		syncer: syncer,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+syncInterval.String(),
		s.runSync,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSync() {
	ctx := context.Background()
	s.log.Info("scheduled sync starting")
	if err := s.syncer.RunAll(ctx); err != nil {
		s.log.Error("scheduled sync failed", "error", err)
	}
}
