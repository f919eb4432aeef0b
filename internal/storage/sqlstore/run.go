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

// MaxErrorMessageLength bounds the error message stored on a failed run.
const MaxErrorMessageLength = 1000

const runColumns = `id, started_at, finished_at, status, error_message, records_collected`

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Start(ctx context.Context) (*domain.CollectionRun, error) {
	run := &domain.CollectionRun{
		StartedAt: time.Now().UTC(),
		Status:    domain.RunRunning,
	}

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO collection_runs (started_at, status)
		VALUES (?, ?)
		RETURNING id`)

	if err := exec.QueryRowxContext(ctx, query, run.StartedAt, string(run.Status)).Scan(&run.ID); err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Finish moves a running run to its terminal status. errMsg is truncated to
// MaxErrorMessageLength characters. A run that already finished is left
// untouched and domain.ErrRunFinished is returned.
func (s *RunStore) Finish(ctx context.Context, runID int64, status domain.RunStatus, records *int64, errMsg *string) error {
	if errMsg != nil {
		truncated := truncate(*errMsg, MaxErrorMessageLength)
		errMsg = &truncated
	}
	finishedAt := time.Now().UTC()

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		UPDATE collection_runs
		SET finished_at = ?, status = ?, error_message = ?, records_collected = ?
		WHERE id = ? AND status = ?`)

	res, err := exec.ExecContext(ctx, query,
		finishedAt,
		string(status),
		nullString(errMsg),
		nullInt64(records),
		runID,
		string(domain.RunRunning),
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if affected == 0 {
		run, err := s.Get(ctx, runID)
		if err != nil {
			return err
		}
		return fmt.Errorf("finish run %d (%s): %w", runID, run.Status, domain.ErrRunFinished)
	}
	return nil
}

func (s *RunStore) Get(ctx context.Context, runID int64) (*domain.CollectionRun, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT ` + runColumns + ` FROM collection_runs WHERE id = ?`)

	var run domain.CollectionRun
	err := sqlx.GetContext(ctx, exec, &run, query, runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d: %w", runID, domain.ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select run: %w", err)
	}
	return &run, nil
}

// LatestRunning returns the most recently started run that never finished,
// or nil when there is none.
func (s *RunStore) LatestRunning(ctx context.Context) (*domain.CollectionRun, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT ` + runColumns + `
		FROM collection_runs
		WHERE status = ?
		ORDER BY id DESC
		LIMIT 1`)

	var run domain.CollectionRun
	err := sqlx.GetContext(ctx, exec, &run, query, string(domain.RunRunning))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select running run: %w", err)
	}
	return &run, nil
}

// List returns up to limit runs, newest first.
func (s *RunStore) List(ctx context.Context, limit int) ([]domain.CollectionRun, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT ` + runColumns + `
		FROM collection_runs
		ORDER BY id DESC
		LIMIT ?`)

	runs := []domain.CollectionRun{}
	if err := sqlx.SelectContext(ctx, exec, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	return runs, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
