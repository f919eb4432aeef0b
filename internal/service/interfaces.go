package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"m365_collector/internal/domain"
)

type RunStore interface {
	Start(ctx context.Context) (*domain.CollectionRun, error)
	Finish(ctx context.Context, runID int64, status domain.RunStatus, records *int64, errMsg *string) error
	Get(ctx context.Context, runID int64) (*domain.CollectionRun, error)
	LatestRunning(ctx context.Context) (*domain.CollectionRun, error)
	List(ctx context.Context, limit int) ([]domain.CollectionRun, error)
}

type CheckpointStore interface {
	Record(ctx context.Context, cp *domain.Checkpoint) error
	Latest(ctx context.Context, runID int64) (*domain.Checkpoint, error)
	LatestForPhase(ctx context.Context, runID int64, phase domain.Phase) (*domain.Checkpoint, error)
}

type ProgressStore interface {
	Record(ctx context.Context, entry *domain.ProgressEntry) error
	Latest(ctx context.Context, runID int64) (*domain.ProgressEntry, error)
}

type RetryStore interface {
	Record(ctx context.Context, rec *domain.RetryRecord) error
	ListByRun(ctx context.Context, runID int64) ([]domain.RetryRecord, error)
}

type LicenseStore interface {
	UpsertBatch(ctx context.Context, runID int64, licenses []domain.License) error
	UpsertAssignments(ctx context.Context, runID int64, assignments []domain.UserLicense) error
	CountAssignments(ctx context.Context, runID int64) (int64, error)
}

type UserActivityStore interface {
	UpsertBatch(ctx context.Context, runID int64, users []domain.UserActivity) error
	Count(ctx context.Context, runID int64) (int64, error)
	ListPrincipalNames(ctx context.Context, runID int64, offset, limit int64) ([]string, error)
}

// Source is the directory API the collector reads from.
type Source interface {
	Authenticate(ctx context.Context) error
	FetchSubscribedSkus(ctx context.Context) ([]domain.License, error)
	FetchUsersPage(ctx context.Context, cursor string) (*domain.UserPage, error)
	FetchUserLicenses(ctx context.Context, upn string) ([]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.RunEvent) error
	Close() error
}
