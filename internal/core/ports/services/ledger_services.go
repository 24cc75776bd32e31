package services

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// LedgerSvcFacade is the read-only reporting surface over posted entries.
type LedgerSvcFacade interface {
	// ListEntriesByAccount retrieves a token-paginated list of entries.
	ListEntriesByAccount(ctx context.Context, organizationID, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)

	// GetEntriesByJournal retrieves all entries one journal produced.
	GetEntriesByJournal(ctx context.Context, organizationID, journalID string) ([]domain.GeneralLedgerEntry, error)

	// TrialBalance aggregates one period's posted effects per account.
	TrialBalance(ctx context.Context, organizationID, periodID string) (*dto.TrialBalanceResponse, error)
}
