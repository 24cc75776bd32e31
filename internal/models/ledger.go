package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry is the db-layer shape of one posted ledger row.
// Rows in gl_entries are insert-only.
type GeneralLedgerEntry struct {
	EntryID        string          `db:"entry_id"`
	OrganizationID string          `db:"organization_id"`
	AccountID      string          `db:"account_id"`
	PeriodID       string          `db:"period_id"`
	JournalID      string          `db:"journal_id"`
	JournalLineID  string          `db:"journal_line_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
	PostedAt       time.Time       `db:"posted_at"`
	PostedBy       string          `db:"posted_by"`
}

// ReconciliationItem is the db-layer shape of an inventory reconciliation row.
type ReconciliationItem struct {
	ItemID         string    `db:"item_id"`
	OrganizationID string    `db:"organization_id"`
	JournalID      string    `db:"journal_id"`
	JournalLineID  string    `db:"journal_line_id"`
	Reason         string    `db:"reason"`
	Resolved       bool      `db:"resolved"`
	RecordedAt     time.Time `db:"recorded_at"`
}
