package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/core/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ResolvePeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, organizationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriodsByFiscalYear(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockPeriodRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.AccountingPeriod) error {
	args := m.Called(ctx, year, periods)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByIDForUpdate(ctx context.Context, tx pgx.Tx, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) CountNonTerminalJournalsInPeriod(ctx context.Context, tx pgx.Tx, periodID string) (int64, error) {
	args := m.Called(ctx, tx, periodID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriodStatusInTx(ctx context.Context, tx pgx.Tx, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, periodID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockPeriodRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPeriodRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPeriodRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Test Suite ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockPeriodRepository
	service        portssvc.PeriodSvcFacade

	orgID   string
	actorID string
}

func (s *PeriodServiceTestSuite) SetupTest() {
	s.mockPeriodRepo = new(MockPeriodRepository)
	s.service = services.NewPeriodService(s.mockPeriodRepo)
	s.orgID = uuid.NewString()
	s.actorID = uuid.NewString()
}

func (s *PeriodServiceTestSuite) TestCreateFiscalYear_GeneratesMonthlyPeriods() {
	ctx := context.Background()
	req := dto.CreateFiscalYearRequest{
		Code:      "FY2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	s.mockPeriodRepo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear"), mock.AnythingOfType("[]domain.AccountingPeriod")).Return(nil).Once()

	year, periods, err := s.service.CreateFiscalYear(ctx, s.orgID, req, s.actorID)

	s.Require().NoError(err)
	s.NotEmpty(year.FiscalYearID)
	s.Equal(domain.PeriodOpen, year.Status)
	s.Require().Len(periods, 12)
	for _, p := range periods {
		s.NotEmpty(p.PeriodID)
		s.Equal(domain.PeriodOpen, p.Status)
	}
}

func (s *PeriodServiceTestSuite) TestCreateFiscalYear_MustStartOnFirstOfMonth() {
	req := dto.CreateFiscalYearRequest{
		Code:      "FY2026",
		StartDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	_, _, err := s.service.CreateFiscalYear(context.Background(), s.orgID, req, s.actorID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPeriodRepo.AssertNotCalled(s.T(), "SaveFiscalYear", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PeriodServiceTestSuite) lockedPeriod(status domain.PeriodStatus) *domain.AccountingPeriod {
	return &domain.AccountingPeriod{
		PeriodID:       "period-1",
		OrganizationID: s.orgID,
		Name:           "2026-03",
		Status:         status,
	}
}

func (s *PeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	s.mockPeriodRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockPeriodRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", ctx, mock.Anything, "period-1").Return(s.lockedPeriod(domain.PeriodOpen), nil).Once()
	s.mockPeriodRepo.On("CountNonTerminalJournalsInPeriod", ctx, mock.Anything, "period-1").Return(int64(0), nil).Once()
	s.mockPeriodRepo.On("UpdatePeriodStatusInTx", ctx, mock.Anything, "period-1", domain.PeriodClosed, s.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockPeriodRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	period, err := s.service.ClosePeriod(ctx, s.orgID, "period-1", s.actorID)

	s.Require().NoError(err)
	s.Equal(domain.PeriodClosed, period.Status)
	s.mockPeriodRepo.AssertExpectations(s.T())
}

func (s *PeriodServiceTestSuite) TestClosePeriod_RefusedWhileJournalsInFlight() {
	ctx := context.Background()
	s.mockPeriodRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockPeriodRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", ctx, mock.Anything, "period-1").Return(s.lockedPeriod(domain.PeriodOpen), nil).Once()
	s.mockPeriodRepo.On("CountNonTerminalJournalsInPeriod", ctx, mock.Anything, "period-1").Return(int64(2), nil).Once()

	period, err := s.service.ClosePeriod(ctx, s.orgID, "period-1", s.actorID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(period)
	s.mockPeriodRepo.AssertNotCalled(s.T(), "UpdatePeriodStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	s.mockPeriodRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockPeriodRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", ctx, mock.Anything, "period-1").Return(s.lockedPeriod(domain.PeriodClosed), nil).Once()

	period, err := s.service.ClosePeriod(ctx, s.orgID, "period-1", s.actorID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(period)
}

func (s *PeriodServiceTestSuite) TestClosePeriod_OtherOrganizationHidden() {
	ctx := context.Background()
	foreign := s.lockedPeriod(domain.PeriodOpen)
	foreign.OrganizationID = uuid.NewString()
	s.mockPeriodRepo.On("Begin", ctx).Return(nil, nil).Once()
	s.mockPeriodRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", ctx, mock.Anything, "period-1").Return(foreign, nil).Once()

	period, err := s.service.ClosePeriod(ctx, s.orgID, "period-1", s.actorID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(period)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
