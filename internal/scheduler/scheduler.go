package scheduler

import (
	"context"
	"log/slog"
	"time"

	"m365_collector/internal/domain"
)

// Collector defines the interface for collection runs.
type Collector interface {
	Collect(ctx context.Context) (*domain.RunSummary, error)
}

type Scheduler struct {
	collector  Collector
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(collector Collector, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		collector:  collector,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

// Start runs a collection immediately and then once per interval until ctx
// is done. A run that hits the timeout is left resumable and picked up by
// the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	s.runCollect(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCollect(ctx)
		}
	}
}

func (s *Scheduler) runCollect(ctx context.Context) {
	runCtx := ctx
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	summary, err := s.collector.Collect(runCtx)
	if err != nil {
		s.logger.Error("collection failed", "error", err)
		return
	}

	s.logger.Info("scheduled collection finished",
		"run_id", summary.RunID,
		"records", summary.Records(),
		"duration", summary.Duration,
	)
}
