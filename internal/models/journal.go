package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is the db-layer shape of a voucher header row.
type Journal struct {
	JournalID          string          `db:"journal_id"`
	OrganizationID     string          `db:"organization_id"`
	JournalTypeID      string          `db:"journal_type_id"`
	JournalNumber      string          `db:"journal_number"` // Empty means NULL (unnumbered draft)
	JournalDate        time.Time       `db:"journal_date"`
	PeriodID           string          `db:"period_id"` // Empty means NULL until posted
	Description        string          `db:"description"`
	CurrencyCode       string          `db:"currency_code"`
	ExchangeRate       decimal.Decimal `db:"exchange_rate"`
	Status             string          `db:"status"`
	ApprovedBy         string          `db:"approved_by"`
	ApprovedAt         *time.Time      `db:"approved_at"`
	PostedBy           string          `db:"posted_by"`
	PostedAt           *time.Time      `db:"posted_at"`
	OriginalJournalID  *string         `db:"original_journal_id"`
	ReversingJournalID *string         `db:"reversing_journal_id"`
	Version            int64           `db:"version"`
	AuditFields
}

// JournalLine is the db-layer shape of a voucher line row.
type JournalLine struct {
	LineID       string           `db:"line_id"`
	JournalID    string           `db:"journal_id"`
	AccountID    string           `db:"account_id"`
	Debit        decimal.Decimal  `db:"debit"`
	Credit       decimal.Decimal  `db:"credit"`
	LineCurrency *string          `db:"line_currency"`
	LineRate     *decimal.Decimal `db:"line_rate"`
	CostCenter   string           `db:"cost_center"`
	Department   string           `db:"department"`
	Project      string           `db:"project"`
	Notes        string           `db:"notes"`
	ProductID    string           `db:"product_id"`
	WarehouseID  string           `db:"warehouse_id"`
	Quantity     decimal.Decimal  `db:"quantity"`
	AuditFields
}
