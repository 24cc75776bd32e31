package services

import (
	"context"
	"time"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// PeriodSvcFacade manages the fiscal calendar.
type PeriodSvcFacade interface {
	// CreateFiscalYear creates a fiscal year and its generated monthly
	// periods in one transaction.
	CreateFiscalYear(ctx context.Context, organizationID string, req dto.CreateFiscalYearRequest, creatorID string) (*domain.FiscalYear, []domain.AccountingPeriod, error)

	// ResolvePeriod finds the period containing the given date.
	ResolvePeriod(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves the ordered periods of a fiscal year.
	ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error)

	// ClosePeriod transitions a period to CLOSED. Fails with ErrConflict
	// (OPEN_DRAFTS_EXIST) while non-terminal journals still reference it.
	ClosePeriod(ctx context.Context, organizationID, periodID, actorID string) (*domain.AccountingPeriod, error)
}
