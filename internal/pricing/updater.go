package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"m365_collector/internal/domain"
)

type SkuLister interface {
	DistinctSkus(ctx context.Context) ([]domain.License, error)
}

type PriceStore interface {
	ReplaceAll(ctx context.Context, prices []domain.Price) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result reports an update. Unknown lists the part numbers that were stored
// at 0.00 and need a manual price.
type Result struct {
	Priced  int
	Unknown []string
}

type Updater struct {
	catalog   Catalog
	skus      SkuLister
	prices    PriceStore
	txManager TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

func NewUpdater(catalog Catalog, skus SkuLister, prices PriceStore, txManager TransactionManager, logger *slog.Logger) *Updater {
	return &Updater{
		catalog:   catalog,
		skus:      skus,
		prices:    prices,
		txManager: txManager,
		now:       time.Now,
		logger:    logger.With("component", "pricing"),
	}
}

// Update rebuilds the price table from every SKU seen in collected licenses.
func (u *Updater) Update(ctx context.Context) (*Result, error) {
	skus, err := u.skus.DistinctSkus(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}

	u.logger.Info("found skus in licenses", "count", len(skus))

	now := u.now().UTC()
	result := &Result{}
	prices := make([]domain.Price, 0, len(skus))

	for _, sku := range skus {
		price := domain.Price{
			SkuID:       sku.SkuID,
			SkuName:     sku.SkuPartNumber,
			MonthlyCost: decimal.Zero,
			LastUpdated: now,
		}

		if entry, ok := u.catalog.Lookup(sku.SkuPartNumber); ok {
			price.MonthlyCost = entry.MonthlyCost
			result.Priced++
			u.logger.Debug("priced sku",
				"sku", sku.SkuPartNumber,
				"name", entry.Name,
				"monthly_cost", entry.MonthlyCost.StringFixed(2),
			)
		} else {
			result.Unknown = append(result.Unknown, sku.SkuPartNumber)
			u.logger.Warn("no price for sku, set it manually", "sku", sku.SkuPartNumber)
		}

		prices = append(prices, price)
	}

	err = u.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return u.prices.ReplaceAll(ctx, prices)
	})
	if err != nil {
		return nil, fmt.Errorf("replace prices: %w", err)
	}

	u.logger.Info("price lookup updated",
		"priced", result.Priced,
		"unknown", len(result.Unknown),
	)
	return result, nil
}
