package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/domain"
)

type LicenseStore struct {
	db *sqlx.DB
}

func NewLicenseStore(db *sqlx.DB) *LicenseStore {
	return &LicenseStore{db: db}
}

func (s *LicenseStore) UpsertBatch(ctx context.Context, runID int64, licenses []domain.License) error {
	if len(licenses) == 0 {
		return nil
	}

	seen := make(map[string]int, len(licenses))
	unique := make([]domain.License, 0, len(licenses))
	for _, l := range licenses {
		if i, ok := seen[l.SkuID]; ok {
			unique[i] = l
			continue
		}
		seen[l.SkuID] = len(unique)
		unique = append(unique, l)
	}

	exec := GetExecutor(ctx, s.db)
	for _, c := range chunks(len(unique), batchSize) {
		batch := unique[c[0]:c[1]]

		args := make([]any, 0, len(batch)*6)
		for _, l := range batch {
			args = append(args, runID, l.SkuID, l.SkuPartNumber, l.Total, l.Assigned, l.Available)
		}

		query := exec.Rebind(`
			INSERT INTO licenses (collection_run_id, sku_id, sku_name, total_licenses, assigned_licenses, available_licenses)
			VALUES ` + valuesClause(len(batch), 6) + `
			ON CONFLICT (collection_run_id, sku_id) DO UPDATE SET
				sku_name = EXCLUDED.sku_name,
				total_licenses = EXCLUDED.total_licenses,
				assigned_licenses = EXCLUDED.assigned_licenses,
				available_licenses = EXCLUDED.available_licenses`)

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert licenses: %w", err)
		}
	}
	return nil
}

// UpsertAssignments records user to SKU assignments. Existing pairs are left
// as they are.
func (s *LicenseStore) UpsertAssignments(ctx context.Context, runID int64, assignments []domain.UserLicense) error {
	if len(assignments) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	for _, c := range chunks(len(assignments), batchSize) {
		batch := assignments[c[0]:c[1]]

		args := make([]any, 0, len(batch)*3)
		for _, a := range batch {
			args = append(args, runID, a.UserPrincipalName, a.SkuID)
		}

		query := exec.Rebind(`
			INSERT INTO user_licenses (collection_run_id, user_principal_name, sku_id)
			VALUES ` + valuesClause(len(batch), 3) + `
			ON CONFLICT (collection_run_id, user_principal_name, sku_id) DO NOTHING`)

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert user licenses: %w", err)
		}
	}
	return nil
}

func (s *LicenseStore) ListByRun(ctx context.Context, runID int64) ([]domain.License, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT collection_run_id, sku_id, sku_name, total_licenses, assigned_licenses, available_licenses
		FROM licenses
		WHERE collection_run_id = ?
		ORDER BY sku_id`)

	licenses := []domain.License{}
	if err := sqlx.SelectContext(ctx, exec, &licenses, query, runID); err != nil {
		return nil, fmt.Errorf("select licenses: %w", err)
	}
	return licenses, nil
}

func (s *LicenseStore) CountAssignments(ctx context.Context, runID int64) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT COUNT(*) FROM user_licenses WHERE collection_run_id = ?`)

	var count int64
	if err := sqlx.GetContext(ctx, exec, &count, query, runID); err != nil {
		return 0, fmt.Errorf("count user licenses: %w", err)
	}
	return count, nil
}

// DistinctSkus returns every SKU seen in any run, with its most recent name.
func (s *LicenseStore) DistinctSkus(ctx context.Context) ([]domain.License, error) {
	exec := GetExecutor(ctx, s.db)
	query := `
		SELECT l.sku_id, l.sku_name
		FROM licenses l
		WHERE l.id = (
			SELECT MAX(l2.id) FROM licenses l2 WHERE l2.sku_id = l.sku_id
		)
		ORDER BY l.sku_id`

	skus := []domain.License{}
	if err := sqlx.SelectContext(ctx, exec, &skus, query); err != nil {
		return nil, fmt.Errorf("select distinct skus: %w", err)
	}
	return skus, nil
}
