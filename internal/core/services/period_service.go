package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// periodService manages the fiscal calendar.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new fiscal calendar service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreateFiscalYear creates a fiscal year and its generated monthly periods
// in one transaction.
func (s *periodService) CreateFiscalYear(ctx context.Context, organizationID string, req dto.CreateFiscalYearRequest, creatorID string) (*domain.FiscalYear, []domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.StartDate.Before(req.EndDate) {
		return nil, nil, apperrors.NewValidationError("fiscal year start date must precede end date")
	}
	if req.StartDate.Day() != 1 {
		return nil, nil, apperrors.NewValidationError("fiscal year must start on the first day of a month")
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID}

	year := domain.FiscalYear{
		FiscalYearID:   uuid.NewString(),
		OrganizationID: organizationID,
		Code:           req.Code,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         domain.PeriodOpen,
		AuditFields:    audit,
	}

	periods := domain.GenerateMonthlyPeriods(year)
	for i := range periods {
		periods[i].PeriodID = uuid.NewString()
		periods[i].AuditFields = audit
	}

	if err := s.periodRepo.SaveFiscalYear(ctx, year, periods); err != nil {
		return nil, nil, err
	}

	logger.Info("Fiscal year created",
		slog.String("fiscal_year_id", year.FiscalYearID),
		slog.String("code", year.Code),
		slog.Int("periods", len(periods)))

	return &year, periods, nil
}

// ResolvePeriod finds the period containing the given date.
func (s *periodService) ResolvePeriod(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	return s.periodRepo.ResolvePeriodForDate(ctx, organizationID, date)
}

// ListPeriods retrieves the ordered periods of a fiscal year.
func (s *periodService) ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	return s.periodRepo.ListPeriodsByFiscalYear(ctx, fiscalYearID)
}

// ClosePeriod transitions a period to CLOSED. The period row lock serializes
// the close against in-flight postings: once we hold it, any journal already
// stamped into the period has committed, and any posting still running waits
// and then sees CLOSED.
func (s *periodService) ClosePeriod(ctx context.Context, organizationID, periodID, actorID string) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.periodRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.periodRepo.Rollback(ctx, tx)

	period, err := s.periodRepo.FindPeriodByIDForUpdate(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}
	if period.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if !period.IsOpen() {
		return nil, apperrors.ErrConflict
	}

	pending, err := s.periodRepo.CountNonTerminalJournalsInPeriod(ctx, tx, periodID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		logger.Warn("Period close refused, open journals remain",
			slog.String("period_id", periodID),
			slog.Int64("open_journals", pending))
		return nil, apperrors.NewAppError(409, "period has journals still in flight", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	if err := s.periodRepo.UpdatePeriodStatusInTx(ctx, tx, periodID, domain.PeriodClosed, actorID, now); err != nil {
		return nil, err
	}
	if err := s.periodRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Period closed",
		slog.String("period_id", periodID),
		slog.String("name", period.Name))

	period.Status = domain.PeriodClosed
	period.LastUpdatedAt = now
	period.LastUpdatedBy = actorID
	return period, nil
}
