package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// ledgerService is the read-only reporting surface over posted entries.
type ledgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewLedgerService creates a new ledger reporting service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ListEntriesByAccount retrieves a token-paginated list of entries.
func (s *ledgerService) ListEntriesByAccount(ctx context.Context, organizationID, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByAccount(ctx, organizationID, accountID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// GetEntriesByJournal retrieves all entries one journal produced.
func (s *ledgerService) GetEntriesByJournal(ctx context.Context, organizationID, journalID string) ([]domain.GeneralLedgerEntry, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return s.ledgerRepo.ListEntriesByJournal(ctx, journalID)
}

// TrialBalance aggregates one period's posted effects per account. For a
// consistent ledger the debit and credit grand totals are equal.
func (s *ledgerService) TrialBalance(ctx context.Context, organizationID, periodID string) (*dto.TrialBalanceResponse, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	rows, err := s.ledgerRepo.TrialBalanceByPeriod(ctx, organizationID, periodID)
	if err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}

	return &dto.TrialBalanceResponse{
		PeriodID:    periodID,
		Rows:        rows,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
	}, nil
}
