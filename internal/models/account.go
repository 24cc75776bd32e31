package models

import "github.com/shopspring/decimal"

// Account is the db-layer shape of a chart-of-accounts row.
type Account struct {
	AccountID       string          `db:"account_id"`
	OrganizationID  string          `db:"organization_id"`
	Code            string          `db:"code"`
	Name            string          `db:"name"`
	AccountType     string          `db:"account_type"`
	NormalSide      string          `db:"normal_side"`
	CurrencyCode    string          `db:"currency_code"`
	ParentAccountID string          `db:"parent_account_id"` // Empty means NULL
	IsGroup         bool            `db:"is_group"`
	IsActive        bool            `db:"is_active"`
	Balance         decimal.Decimal `db:"balance"`
	AuditFields
}
