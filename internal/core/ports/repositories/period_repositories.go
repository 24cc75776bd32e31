package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// PeriodReader defines read operations for fiscal calendar data.
type PeriodReader interface {
	// FindPeriodByID retrieves an accounting period by ID.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ResolvePeriodForDate finds the period whose range contains the given
	// date for the organization. ErrNotFound if the date falls outside every
	// defined period.
	ResolvePeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriodsByFiscalYear retrieves the ordered periods of a fiscal year.
	ListPeriodsByFiscalYear(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error)

	// FindFiscalYearByID retrieves a fiscal year header.
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
}

// PeriodWriter defines write operations for fiscal calendar data.
type PeriodWriter interface {
	// SaveFiscalYear inserts a fiscal year together with its generated
	// periods in one transaction.
	SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.AccountingPeriod) error
}

// PeriodTxOperations are the period operations participating in serialized
// units of work: the posting transaction takes the period row lock so a
// concurrent close waits for in-flight postings, and vice versa.
type PeriodTxOperations interface {
	// FindPeriodByIDForUpdate locks the period row and returns it.
	FindPeriodByIDForUpdate(ctx context.Context, tx pgx.Tx, periodID string) (*domain.AccountingPeriod, error)

	// CountNonTerminalJournalsInPeriod counts draft/pending/approved journals
	// still referencing the period, for the close-period guard.
	CountNonTerminalJournalsInPeriod(ctx context.Context, tx pgx.Tx, periodID string) (int64, error)

	// UpdatePeriodStatusInTx transitions the locked period's status.
	UpdatePeriodStatusInTx(ctx context.Context, tx pgx.Tx, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error
}

// PeriodRepositoryFacade combines all period repository capabilities.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
	PeriodTxOperations
	TransactionManager
}
