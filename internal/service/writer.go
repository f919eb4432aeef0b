package service

import (
	"context"
	"fmt"
	"log/slog"

	"m365_collector/internal/domain"
)

// Page describes one batch handed to the PageWriter. The resulting checkpoint
// progress is BatchStart+Count.
type Page struct {
	RunID      int64
	Phase      domain.Phase
	BatchStart int64
	Count      int
	Total      *int64
	Detail     domain.CheckpointDetail
	Message    string
}

// PageWriter persists a page of items together with its checkpoint and
// progress entry. Either all three are stored or none is.
type PageWriter struct {
	txManager   TransactionManager
	checkpoints CheckpointStore
	progress    ProgressStore
	users       UserActivityStore
	licenses    LicenseStore
	logger      *slog.Logger
}

func NewPageWriter(
	txManager TransactionManager,
	checkpoints CheckpointStore,
	progress ProgressStore,
	users UserActivityStore,
	licenses LicenseStore,
	logger *slog.Logger,
) *PageWriter {
	return &PageWriter{
		txManager:   txManager,
		checkpoints: checkpoints,
		progress:    progress,
		users:       users,
		licenses:    licenses,
		logger:      logger,
	}
}

// Write runs persist and records the page's checkpoint and progress entry in
// one transaction. Failures are reported as domain.ErrStoreWrite.
func (w *PageWriter) Write(ctx context.Context, page Page, persist func(ctx context.Context) error) (*domain.Checkpoint, error) {
	cp := &domain.Checkpoint{
		RunID:    page.RunID,
		Phase:    page.Phase,
		Progress: page.BatchStart + int64(page.Count),
		Total:    page.Total,
		Detail:   page.Detail,
	}

	err := w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if persist != nil {
			if err := persist(txCtx); err != nil {
				return fmt.Errorf("persist items: %w", err)
			}
		}

		if err := w.checkpoints.Record(txCtx, cp); err != nil {
			return fmt.Errorf("record checkpoint: %w", err)
		}

		entry := &domain.ProgressEntry{
			RunID:    page.RunID,
			Phase:    page.Phase,
			Progress: cp.Progress,
			Total:    page.Total,
			Message:  page.Message,
		}
		if err := w.progress.Record(txCtx, entry); err != nil {
			return fmt.Errorf("record progress: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("write %s page: %w: %w", page.Phase, domain.ErrStoreWrite, err)
	}

	w.logger.Debug("page written",
		"run_id", page.RunID,
		"phase", page.Phase,
		"progress", cp.Progress,
		"total", page.Total,
	)

	return cp, nil
}

func (w *PageWriter) WriteUserActivity(ctx context.Context, page Page, users []domain.UserActivity) (*domain.Checkpoint, error) {
	page.Count = len(users)
	if page.Detail.LastKey == "" && len(users) > 0 {
		page.Detail.LastKey = users[len(users)-1].UserPrincipalName
	}

	return w.Write(ctx, page, func(ctx context.Context) error {
		return w.users.UpsertBatch(ctx, page.RunID, users)
	})
}

func (w *PageWriter) WriteLicenses(ctx context.Context, page Page, licenses []domain.License) (*domain.Checkpoint, error) {
	page.Count = len(licenses)
	if page.Detail.LastKey == "" && len(licenses) > 0 {
		page.Detail.LastKey = licenses[len(licenses)-1].SkuID
	}

	return w.Write(ctx, page, func(ctx context.Context) error {
		return w.licenses.UpsertBatch(ctx, page.RunID, licenses)
	})
}

// WriteAssignments stores the assignments of a batch of users. page.Count is
// the number of users processed, not the number of assignments.
func (w *PageWriter) WriteAssignments(ctx context.Context, page Page, assignments []domain.UserLicense) (*domain.Checkpoint, error) {
	return w.Write(ctx, page, func(ctx context.Context) error {
		return w.licenses.UpsertAssignments(ctx, page.RunID, assignments)
	})
}
