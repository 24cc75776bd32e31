package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerEntry is one immutable, functional-currency effect of a posted
// journal line. Entries are created only by the posting orchestrator and are
// never updated, only superseded by a reversal's own new entries.
type GeneralLedgerEntry struct {
	EntryID        string          `json:"entryID"`
	OrganizationID string          `json:"organizationID"`
	AccountID      string          `json:"accountID"`
	PeriodID       string          `json:"periodID"`
	JournalID      string          `json:"journalID"`
	JournalLineID  string          `json:"journalLineID"`
	Debit          decimal.Decimal `json:"debit"`  // Functional currency
	Credit         decimal.Decimal `json:"credit"` // Functional currency
	PostedAt       time.Time       `json:"postedAt"`
	PostedBy       string          `json:"postedBy"`
}

// SignedEffect returns the entry's contribution to a running balance held on
// the given normal side: entries on the normal side increase the balance.
func (e GeneralLedgerEntry) SignedEffect(normalSide BalanceSide) decimal.Decimal {
	if normalSide == DebitSide {
		return e.Debit.Sub(e.Credit)
	}
	return e.Credit.Sub(e.Debit)
}

// TrialBalanceRow aggregates posted effects for one account within a period.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Net         decimal.Decimal `json:"net"` // Signed per the account's normal side
}
