package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// LedgerEntryResponse mirrors one posted general ledger entry.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	PeriodID      string          `json:"periodID"`
	JournalID     string          `json:"journalID"`
	JournalLineID string          `json:"journalLineID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	PostedAt      time.Time       `json:"postedAt"`
	PostedBy      string          `json:"postedBy"`
}

// ListLedgerEntriesParams are the query parameters for the ledger listing.
type ListLedgerEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerEntriesResponse is a token-paginated page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// TrialBalanceResponse aggregates one period's posted effects per account.
type TrialBalanceResponse struct {
	PeriodID    string                   `json:"periodID"`
	Rows        []domain.TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal          `json:"totalDebit"`
	TotalCredit decimal.Decimal          `json:"totalCredit"`
}

// ToLedgerEntryResponse converts a domain entry to its response DTO.
func ToLedgerEntryResponse(e *domain.GeneralLedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		AccountID:     e.AccountID,
		PeriodID:      e.PeriodID,
		JournalID:     e.JournalID,
		JournalLineID: e.JournalLineID,
		Debit:         e.Debit,
		Credit:        e.Credit,
		PostedAt:      e.PostedAt,
		PostedBy:      e.PostedBy,
	}
}

// ToLedgerEntryResponses converts a slice of domain entries.
func ToLedgerEntryResponses(entries []domain.GeneralLedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return out
}
