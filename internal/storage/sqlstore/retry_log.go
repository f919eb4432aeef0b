package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/domain"
)

type RetryStore struct {
	db *sqlx.DB
}

func NewRetryStore(db *sqlx.DB) *RetryStore {
	return &RetryStore{db: db}
}

func (s *RetryStore) Record(ctx context.Context, rec *domain.RetryRecord) error {
	rec.CreatedAt = time.Now().UTC()

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO retry_log (collection_run_id, endpoint, attempt, delay_ms, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := exec.QueryRowxContext(ctx, query,
		rec.RunID,
		rec.Endpoint,
		rec.Attempt,
		rec.DelayMillis,
		rec.Reason,
		rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert retry record: %w", err)
	}
	return nil
}

func (s *RetryStore) ListByRun(ctx context.Context, runID int64) ([]domain.RetryRecord, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT id, collection_run_id, endpoint, attempt, delay_ms, reason, created_at
		FROM retry_log
		WHERE collection_run_id = ?
		ORDER BY id`)

	records := []domain.RetryRecord{}
	if err := sqlx.SelectContext(ctx, exec, &records, query, runID); err != nil {
		return nil, fmt.Errorf("select retry records: %w", err)
	}
	return records, nil
}
