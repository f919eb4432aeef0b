package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/domain"
)

type UserActivityStore struct {
	db *sqlx.DB
}

func NewUserActivityStore(db *sqlx.DB) *UserActivityStore {
	return &UserActivityStore{db: db}
}

// UpsertBatch writes users for a run. A user already stored for the run is
// overwritten, so rewriting a page leaves the table unchanged.
func (s *UserActivityStore) UpsertBatch(ctx context.Context, runID int64, users []domain.UserActivity) error {
	users = dedupeUsers(users)
	if len(users) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	for _, c := range chunks(len(users), batchSize) {
		batch := users[c[0]:c[1]]

		args := make([]any, 0, len(batch)*3)
		for _, u := range batch {
			args = append(args, runID, u.UserPrincipalName, nullTime(u.LastSignInAt))
		}

		query := exec.Rebind(`
			INSERT INTO user_activity (collection_run_id, user_principal_name, last_sign_in_at)
			VALUES ` + valuesClause(len(batch), 3) + `
			ON CONFLICT (collection_run_id, user_principal_name) DO UPDATE SET
				last_sign_in_at = EXCLUDED.last_sign_in_at`)

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert user activity: %w", err)
		}
	}
	return nil
}

func (s *UserActivityStore) Count(ctx context.Context, runID int64) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT COUNT(*) FROM user_activity WHERE collection_run_id = ?`)

	var count int64
	if err := sqlx.GetContext(ctx, exec, &count, query, runID); err != nil {
		return 0, fmt.Errorf("count user activity: %w", err)
	}
	return count, nil
}

// ListPrincipalNames pages through the run's users in a stable order.
func (s *UserActivityStore) ListPrincipalNames(ctx context.Context, runID int64, offset, limit int64) ([]string, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT user_principal_name
		FROM user_activity
		WHERE collection_run_id = ?
		ORDER BY user_principal_name
		LIMIT ? OFFSET ?`)

	names := []string{}
	if err := sqlx.SelectContext(ctx, exec, &names, query, runID, limit, offset); err != nil {
		return nil, fmt.Errorf("select user principal names: %w", err)
	}
	return names, nil
}

func (s *UserActivityStore) ListByRun(ctx context.Context, runID int64) ([]domain.UserActivity, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT collection_run_id, user_principal_name, last_sign_in_at
		FROM user_activity
		WHERE collection_run_id = ?
		ORDER BY user_principal_name`)

	users := []domain.UserActivity{}
	if err := sqlx.SelectContext(ctx, exec, &users, query, runID); err != nil {
		return nil, fmt.Errorf("select user activity: %w", err)
	}
	return users, nil
}

// dedupeUsers keeps the last occurrence of every principal name. Postgres
// rejects an upsert that touches the same row twice.
func dedupeUsers(users []domain.UserActivity) []domain.UserActivity {
	index := make(map[string]int, len(users))
	out := make([]domain.UserActivity, 0, len(users))
	for _, u := range users {
		if i, ok := index[u.UserPrincipalName]; ok {
			out[i] = u
			continue
		}
		index[u.UserPrincipalName] = len(out)
		out = append(out, u)
	}
	return out
}
