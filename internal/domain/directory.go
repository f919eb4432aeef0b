package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// License is a subscribed SKU snapshot for a run.
type License struct {
	RunID         int64  `db:"collection_run_id"`
	SkuID         string `db:"sku_id"`
	SkuPartNumber string `db:"sku_name"`
	Total         int64  `db:"total_licenses"`
	Assigned      int64  `db:"assigned_licenses"`
	Available     int64  `db:"available_licenses"`
}

// UserActivity is keyed by (run, user principal name).
type UserActivity struct {
	RunID             int64      `db:"collection_run_id"`
	UserPrincipalName string     `db:"user_principal_name"`
	LastSignInAt      *time.Time `db:"last_sign_in_at"`
}

// UserPage is one page of the users listing. An empty NextLink marks the
// last page.
type UserPage struct {
	Users    []UserActivity
	NextLink string
}

// UserLicense assigns a SKU to a user within a run.
type UserLicense struct {
	RunID             int64  `db:"collection_run_id"`
	UserPrincipalName string `db:"user_principal_name"`
	SkuID             string `db:"sku_id"`
}

// Price is the monthly per-seat cost of a SKU.
type Price struct {
	SkuID       string          `db:"sku_id" json:"sku_id"`
	SkuName     string          `db:"sku_name" json:"sku_name"`
	MonthlyCost decimal.Decimal `db:"monthly_cost" json:"monthly_cost"`
	LastUpdated time.Time       `db:"last_updated" json:"last_updated"`
}
