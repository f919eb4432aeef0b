package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/domain"
)

type PriceStore struct {
	db *sqlx.DB
}

func NewPriceStore(db *sqlx.DB) *PriceStore {
	return &PriceStore{db: db}
}

// ReplaceAll swaps the price table contents for prices. Callers wrap it in
// a transaction so readers never see an empty table.
func (s *PriceStore) ReplaceAll(ctx context.Context, prices []domain.Price) error {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx, `DELETE FROM price_lookup`); err != nil {
		return fmt.Errorf("clear prices: %w", err)
	}

	for _, c := range chunks(len(prices), batchSize) {
		batch := prices[c[0]:c[1]]

		args := make([]any, 0, len(batch)*4)
		for _, p := range batch {
			args = append(args, p.SkuID, p.SkuName, p.MonthlyCost.StringFixed(2), p.LastUpdated.UTC())
		}

		query := exec.Rebind(`
			INSERT INTO price_lookup (sku_id, sku_name, monthly_cost, last_updated)
			VALUES ` + valuesClause(len(batch), 4))

		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert prices: %w", err)
		}
	}
	return nil
}

func (s *PriceStore) List(ctx context.Context) ([]domain.Price, error) {
	exec := GetExecutor(ctx, s.db)

	prices := []domain.Price{}
	err := sqlx.SelectContext(ctx, exec, &prices, `
		SELECT sku_id, sku_name, monthly_cost, last_updated
		FROM price_lookup
		ORDER BY sku_id`)
	if err != nil {
		return nil, fmt.Errorf("select prices: %w", err)
	}
	return prices, nil
}
