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

const checkpointColumns = `id, collection_run_id, phase, progress, total, details, created_at`

// CheckpointStore is an append-only log of resume points. The row with the
// highest id for a run is authoritative.
type CheckpointStore struct {
	db *sqlx.DB
}

func NewCheckpointStore(db *sqlx.DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

// Record appends cp and fills in its ID and CreatedAt.
func (s *CheckpointStore) Record(ctx context.Context, cp *domain.Checkpoint) error {
	if cp.Progress < 0 {
		return fmt.Errorf("record checkpoint: negative progress %d", cp.Progress)
	}
	cp.CreatedAt = time.Now().UTC()

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO collection_checkpoints (collection_run_id, phase, progress, total, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := exec.QueryRowxContext(ctx, query,
		cp.RunID,
		string(cp.Phase),
		cp.Progress,
		nullInt64(cp.Total),
		cp.Detail,
		cp.CreatedAt,
	).Scan(&cp.ID)
	if err != nil {
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}

// Latest returns the most recent checkpoint of a run, or nil if the run has
// none.
func (s *CheckpointStore) Latest(ctx context.Context, runID int64) (*domain.Checkpoint, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT ` + checkpointColumns + `
		FROM collection_checkpoints
		WHERE collection_run_id = ?
		ORDER BY id DESC
		LIMIT 1`)

	return s.getOne(ctx, exec, query, runID)
}

// LatestForPhase returns the most recent checkpoint of one phase, or nil.
func (s *CheckpointStore) LatestForPhase(ctx context.Context, runID int64, phase domain.Phase) (*domain.Checkpoint, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT ` + checkpointColumns + `
		FROM collection_checkpoints
		WHERE collection_run_id = ? AND phase = ?
		ORDER BY id DESC
		LIMIT 1`)

	return s.getOne(ctx, exec, query, runID, string(phase))
}

func (s *CheckpointStore) CanResume(ctx context.Context, runID int64) (bool, error) {
	cp, err := s.Latest(ctx, runID)
	if err != nil {
		return false, err
	}
	return cp != nil, nil
}

func (s *CheckpointStore) getOne(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) (*domain.Checkpoint, error) {
	var cp domain.Checkpoint
	err := sqlx.GetContext(ctx, exec, &cp, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select checkpoint: %w", err)
	}
	return &cp, nil
}
