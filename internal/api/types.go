package api

import (
	"context"

	"m365_collector/internal/domain"
	"m365_collector/internal/service"
)

type StatusReader interface {
	GetStatus(ctx context.Context, runID int64) (*domain.CollectionStatus, error)
	LatestStatus(ctx context.Context) (*domain.CollectionStatus, error)
	ListRuns(ctx context.Context, limit int) ([]domain.CollectionRun, error)
	GetRun(ctx context.Context, runID int64) (*domain.CollectionRun, error)
	Checkpoint(ctx context.Context, runID int64) (*domain.Checkpoint, error)
	Retries(ctx context.Context, runID int64) ([]domain.RetryRecord, error)
}

var _ StatusReader = (*service.StatusService)(nil)

type Handler struct {
	status StatusReader
}

type errorResponse struct {
	Error string `json:"error"`
}
