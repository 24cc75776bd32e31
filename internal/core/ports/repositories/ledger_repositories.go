package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// LedgerWriter appends entries to the general ledger. The ledger is
// append-only: there is deliberately no update or delete operation.
type LedgerWriter interface {
	// InsertEntriesInTx writes one batch of entries inside the posting
	// transaction.
	InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.GeneralLedgerEntry) error
}

// LedgerReader defines read operations over posted ledger entries. Readers
// see committed state only and never block on posting locks.
type LedgerReader interface {
	// ListEntriesByAccount retrieves a token-paginated list of entries for an
	// account, newest first.
	ListEntriesByAccount(ctx context.Context, organizationID, accountID string, limit int, nextToken *string) ([]domain.GeneralLedgerEntry, *string, error)

	// ListEntriesByJournal retrieves all entries produced by one journal.
	ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.GeneralLedgerEntry, error)

	// SumEntriesByAccount recomputes the account's debit and credit totals
	// from scratch, for the ledger replay invariant.
	SumEntriesByAccount(ctx context.Context, accountID string) (debits, credits decimal.Decimal, err error)

	// TrialBalanceByPeriod aggregates entries per account for one period.
	TrialBalanceByPeriod(ctx context.Context, organizationID, periodID string) ([]domain.TrialBalanceRow, error)
}

// LedgerRepositoryFacade combines ledger read and write capabilities.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
