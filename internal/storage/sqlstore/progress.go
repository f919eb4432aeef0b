package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/domain"
)

type ProgressStore struct {
	db *sqlx.DB
}

func NewProgressStore(db *sqlx.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

func (s *ProgressStore) Record(ctx context.Context, entry *domain.ProgressEntry) error {
	entry.CreatedAt = time.Now().UTC()

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO collection_progress (collection_run_id, phase, progress, total, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := exec.QueryRowxContext(ctx, query,
		entry.RunID,
		string(entry.Phase),
		entry.Progress,
		nullInt64(entry.Total),
		entry.Message,
		entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}
	return nil
}

// Latest returns the newest progress entry of a run, or nil.
func (s *ProgressStore) Latest(ctx context.Context, runID int64) (*domain.ProgressEntry, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT id, collection_run_id, phase, progress, total, message, created_at
		FROM collection_progress
		WHERE collection_run_id = ?
		ORDER BY id DESC
		LIMIT 1`)

	var entry domain.ProgressEntry
	err := sqlx.GetContext(ctx, exec, &entry, query, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select progress: %w", err)
	}
	return &entry, nil
}
