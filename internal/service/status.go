package service

import (
	"context"
	"fmt"

	"m365_collector/internal/domain"
)

// StatusService answers progress queries from the stored progress entries.
type StatusService struct {
	runs        RunStore
	progress    ProgressStore
	checkpoints CheckpointStore
	retries     RetryStore
}

func NewStatusService(runs RunStore, progress ProgressStore, checkpoints CheckpointStore, retries RetryStore) *StatusService {
	return &StatusService{
		runs:        runs,
		progress:    progress,
		checkpoints: checkpoints,
		retries:     retries,
	}
}

// GetStatus reports the latest progress of runID. Percentage is nil while the
// current phase total is unknown.
func (s *StatusService) GetStatus(ctx context.Context, runID int64) (*domain.CollectionStatus, error) {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}

	status := &domain.CollectionStatus{
		RunID:     run.ID,
		RunStatus: run.Status,
		UpdatedAt: run.StartedAt,
	}
	if run.FinishedAt != nil {
		status.UpdatedAt = *run.FinishedAt
	}

	entry, err := s.progress.Latest(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if entry == nil {
		return status, nil
	}

	status.CurrentPhase = entry.Phase
	status.Progress = entry.Progress
	status.Total = entry.Total
	status.Percentage = domain.Percentage(entry.Progress, entry.Total)
	status.Message = entry.Message
	if entry.CreatedAt.After(status.UpdatedAt) {
		status.UpdatedAt = entry.CreatedAt
	}

	return status, nil
}

// LatestStatus reports on the most recently started run.
func (s *StatusService) LatestStatus(ctx context.Context) (*domain.CollectionStatus, error) {
	runs, err := s.runs.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, domain.ErrRunNotFound
	}
	return s.GetStatus(ctx, runs[0].ID)
}

func (s *StatusService) ListRuns(ctx context.Context, limit int) ([]domain.CollectionRun, error) {
	return s.runs.List(ctx, limit)
}

func (s *StatusService) GetRun(ctx context.Context, runID int64) (*domain.CollectionRun, error) {
	return s.runs.Get(ctx, runID)
}

// Checkpoint returns the run's latest checkpoint, or nil.
func (s *StatusService) Checkpoint(ctx context.Context, runID int64) (*domain.Checkpoint, error) {
	if _, err := s.runs.Get(ctx, runID); err != nil {
		return nil, err
	}
	return s.checkpoints.Latest(ctx, runID)
}

func (s *StatusService) Retries(ctx context.Context, runID int64) ([]domain.RetryRecord, error) {
	if _, err := s.runs.Get(ctx, runID); err != nil {
		return nil, err
	}
	return s.retries.ListByRun(ctx, runID)
}
