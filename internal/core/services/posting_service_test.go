package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/core/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// --- Mock OrganizationRepository ---
type MockOrganizationRepository struct {
	mock.Mock
}

var _ portsrepo.OrganizationRepository = (*MockOrganizationRepository)(nil)

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOrganization(ctx context.Context, organizationID string) ([]domain.Account, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, accountID, isActive, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, accountID, balance, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, deltas, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.GeneralLedgerEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, organizationID, accountID string, limit int, nextToken *string) ([]domain.GeneralLedgerEntry, *string, error) {
	args := m.Called(ctx, organizationID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.GeneralLedgerEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SumEntriesByAccount(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerRepository) TrialBalanceByPeriod(ctx context.Context, organizationID, periodID string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepository = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ReconciliationRepository ---
type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) SaveReconciliationItem(ctx context.Context, item domain.ReconciliationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockReconciliationRepository) ListUnresolvedByOrganization(ctx context.Context, organizationID string) ([]domain.ReconciliationItem, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationItem), args.Error(1)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ResolveRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCode, toCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount, rate decimal.Decimal, toCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, rate, toCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock InventoryPoster ---
type MockInventoryPoster struct {
	mock.Mock
}

var _ portssvc.InventoryPoster = (*MockInventoryPoster)(nil)

func (m *MockInventoryPoster) PostMovements(ctx context.Context, movements []domain.InventoryMovement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

// --- Test Suite ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockOrgRepo         *MockOrganizationRepository
	mockJournalRepo     *MockJournalRepository
	mockAccountRepo     *MockAccountRepository
	mockLedgerRepo      *MockLedgerRepository
	mockPeriodRepo      *MockPeriodRepository
	mockJournalTypeRepo *MockJournalTypeRepository
	mockApprovalRepo    *MockApprovalRepository
	mockCurrencyRepo    *MockCurrencyRepository
	mockReconRepo       *MockReconciliationRepository
	mockRateSvc         *MockExchangeRateService
	mockInventory       *MockInventoryPoster
	service             portssvc.PostingSvcFacade
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.mockOrgRepo = new(MockOrganizationRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockPeriodRepo = new(MockPeriodRepository)
	s.mockJournalTypeRepo = new(MockJournalTypeRepository)
	s.mockApprovalRepo = new(MockApprovalRepository)
	s.mockCurrencyRepo = new(MockCurrencyRepository)
	s.mockReconRepo = new(MockReconciliationRepository)
	s.mockRateSvc = new(MockExchangeRateService)
	s.mockInventory = new(MockInventoryPoster)

	repos := &portsrepo.RepositoryProvider{
		OrganizationRepo:   s.mockOrgRepo,
		AccountRepo:        s.mockAccountRepo,
		JournalRepo:        s.mockJournalRepo,
		LedgerRepo:         s.mockLedgerRepo,
		PeriodRepo:         s.mockPeriodRepo,
		JournalTypeRepo:    s.mockJournalTypeRepo,
		ApprovalRepo:       s.mockApprovalRepo,
		CurrencyRepo:       s.mockCurrencyRepo,
		ReconciliationRepo: s.mockReconRepo,
	}
	s.service = services.NewPostingService(repos, s.mockRateSvc, s.mockInventory, false)
}

func (s *PostingServiceTestSuite) organization() *domain.Organization {
	return &domain.Organization{OrganizationID: "org-1", Name: "Acme", FunctionalCurrency: "USD"}
}

func (s *PostingServiceTestSuite) postableAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		"acc-rent": {
			AccountID:      "acc-rent",
			OrganizationID: "org-1",
			Code:           "6000",
			Name:           "Rent Expense",
			AccountType:    domain.Expense,
			NormalSide:     domain.DebitSide,
			IsActive:       true,
		},
		"acc-cash": {
			AccountID:      "acc-cash",
			OrganizationID: "org-1",
			Code:           "1000",
			Name:           "Cash",
			AccountType:    domain.Asset,
			NormalSide:     domain.DebitSide,
			IsActive:       true,
		},
	}
}

func (s *PostingServiceTestSuite) draftJournal() (*domain.Journal, []domain.JournalLine) {
	lines := []domain.JournalLine{
		{LineID: "l1", JournalID: "journal-1", AccountID: "acc-rent", Debit: decimal.NewFromInt(1200), Credit: decimal.Zero},
		{LineID: "l2", JournalID: "journal-1", AccountID: "acc-cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(1200)},
	}
	journal := &domain.Journal{
		JournalID:      "journal-1",
		OrganizationID: "org-1",
		JournalTypeID:  "type-1",
		JournalDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:    "March rent",
		CurrencyCode:   "USD",
		Status:         domain.Draft,
		Version:        7,
	}
	return journal, lines
}

func (s *PostingServiceTestSuite) generalJournalType() *domain.JournalType {
	return &domain.JournalType{
		JournalTypeID:  "type-1",
		OrganizationID: "org-1",
		Code:           "GJ",
		NumberPrefix:   "GJ-",
		NumberWidth:    6,
	}
}

// expectPostReads wires the reads every posting attempt performs before it
// reaches the validation decision.
func (s *PostingServiceTestSuite) expectPostReads(journal *domain.Journal, lines []domain.JournalLine, period *domain.AccountingPeriod, accounts map[string]domain.Account) {
	ctx := mock.Anything
	s.mockOrgRepo.On("FindOrganizationByID", ctx, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", ctx).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", ctx, mock.Anything, journal.JournalID).Return(journal, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", ctx, journal.JournalID).Return(lines, nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", ctx, "type-1").Return(s.generalJournalType(), nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", ctx, "org-1", mock.AnythingOfType("time.Time")).Return(period, nil)
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", ctx, mock.Anything, period.PeriodID).Return(period, nil)
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, mock.Anything, []string{"acc-rent", "acc-cash"}).Return(accounts, nil)
}

func (s *PostingServiceTestSuite) TestPost_AssignsNumberAndAppendsEntries() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	s.expectPostReads(journal, lines, openPeriod(), s.postableAccounts())

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)

	var written []domain.GeneralLedgerEntry
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.GeneralLedgerEntry")).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]domain.GeneralLedgerEntry)
		}).Return(nil).Once()

	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas["acc-rent"].Equal(decimal.NewFromInt(1200)) && deltas["acc-cash"].Equal(decimal.NewFromInt(-1200))
	}), "actor-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	s.mockJournalRepo.On("MarkJournalPostedInTx", mock.Anything, mock.Anything, "journal-1", "GJ-000001", "period-1", "actor-1", mock.AnythingOfType("time.Time"), int64(7)).Return(nil).Once()
	s.mockJournalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	posted := *journal
	posted.Status = domain.Posted
	posted.JournalNumber = "GJ-000001"
	posted.PeriodID = "period-1"
	s.mockJournalRepo.On("FindJournalByID", mock.Anything, "journal-1").Return(&posted, nil).Once()

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.True(validation.OK())
	s.Require().NotNil(result)
	s.Equal("GJ-000001", result.JournalNumber)
	s.Equal(domain.Posted, result.Status)

	s.Require().Len(written, 2)
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, entry := range written {
		s.Equal("period-1", entry.PeriodID)
		s.Equal("journal-1", entry.JournalID)
		totalDebit = totalDebit.Add(entry.Debit)
		totalCredit = totalCredit.Add(entry.Credit)
	}
	s.True(totalDebit.Equal(totalCredit), "ledger entries must balance, got %s vs %s", totalDebit, totalCredit)
	s.mockJournalRepo.AssertExpectations(s.T())
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPost_RefusedValidationConsumesNoSequence() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	accounts := s.postableAccounts()
	inactive := accounts["acc-cash"]
	inactive.IsActive = false
	accounts["acc-cash"] = inactive
	s.expectPostReads(journal, lines, openPeriod(), accounts)

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err, "a refused posting is a validation outcome, not an error")
	s.Nil(result)
	s.False(validation.OK())
	s.True(validation.Has(domain.CodeAccountInactive))
	s.mockJournalTypeRepo.AssertNotCalled(s.T(), "IncrementSequenceInTx", mock.Anything, mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_ClosedPeriodRefused() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	period := openPeriod()
	period.Status = domain.PeriodClosed
	s.expectPostReads(journal, lines, period, s.postableAccounts())

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.Nil(result)
	s.True(validation.Has(domain.CodePeriodClosed))
	s.mockJournalTypeRepo.AssertNotCalled(s.T(), "IncrementSequenceInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_VersionConflict() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	s.expectPostReads(journal, lines, openPeriod(), s.postableAccounts())

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("MarkJournalPostedInTx", mock.Anything, mock.Anything, "journal-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything, int64(7)).
		Return(apperrors.ErrConcurrentModification).Once()

	result, _, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.ErrorIs(err, apperrors.ErrConcurrentModification)
	s.Nil(result)
	s.mockJournalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_LedgerInsertFailureAbortsEverything() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	s.expectPostReads(journal, lines, openPeriod(), s.postableAccounts())

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	result, _, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Error(err)
	s.Nil(result)
	s.mockAccountRepo.AssertNotCalled(s.T(), "UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertNotCalled(s.T(), "MarkJournalPostedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestPost_AlreadyPostedConflict() {
	ctx := context.Background()
	journal, _ := s.draftJournal()
	journal.Status = domain.Posted

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(journal, nil)

	result, _, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(result)
}

func (s *PostingServiceTestSuite) TestPost_InventoryFailureRecordsReconciliation() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	lines[0].ProductID = "prod-1"
	lines[0].WarehouseID = "wh-1"
	lines[0].Quantity = decimal.NewFromInt(10)
	s.expectPostReads(journal, lines, openPeriod(), s.postableAccounts())

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("MarkJournalPostedInTx", mock.Anything, mock.Anything, "journal-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	posted := *journal
	posted.Status = domain.Posted
	s.mockJournalRepo.On("FindJournalByID", mock.Anything, "journal-1").Return(&posted, nil).Once()

	s.mockInventory.On("PostMovements", mock.Anything, mock.MatchedBy(func(movements []domain.InventoryMovement) bool {
		return len(movements) == 1 &&
			movements[0].ProductID == "prod-1" &&
			movements[0].Direction == domain.InventoryReceipt
	})).Return(errors.New("inventory service unavailable")).Once()
	s.mockReconRepo.On("SaveReconciliationItem", mock.Anything, mock.MatchedBy(func(item domain.ReconciliationItem) bool {
		return item.JournalID == "journal-1" && item.JournalLineID == "l1" && !item.Resolved
	})).Return(nil).Once()

	result, _, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err, "an inventory failure never unwinds the committed posting")
	s.Require().NotNil(result)
	s.Equal(domain.Posted, result.Status)
	s.mockInventory.AssertExpectations(s.T())
	s.mockReconRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestReverse_NegatesStoredEntries() {
	ctx := context.Background()
	now := time.Now().UTC()
	original := &domain.Journal{
		JournalID:      "journal-1",
		OrganizationID: "org-1",
		JournalTypeID:  "type-1",
		JournalNumber:  "GJ-000001",
		JournalDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		PeriodID:       "period-1",
		Description:    "March rent",
		CurrencyCode:   "USD",
		Status:         domain.Posted,
		Version:        8,
	}
	originalLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "journal-1", AccountID: "acc-rent", Debit: decimal.NewFromInt(1200), Credit: decimal.Zero},
		{LineID: "l2", JournalID: "journal-1", AccountID: "acc-cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(1200)},
	}
	originalEntries := []domain.GeneralLedgerEntry{
		{EntryID: "e1", OrganizationID: "org-1", AccountID: "acc-rent", PeriodID: "period-1", JournalID: "journal-1", JournalLineID: "l1", Debit: decimal.NewFromInt(1200), Credit: decimal.Zero, PostedAt: now},
		{EntryID: "e2", OrganizationID: "org-1", AccountID: "acc-cash", PeriodID: "period-1", JournalID: "journal-1", JournalLineID: "l2", Debit: decimal.Zero, Credit: decimal.NewFromInt(1200), PostedAt: now},
	}
	accounts := s.postableAccounts()
	currentPeriod := &domain.AccountingPeriod{
		PeriodID:  "period-2",
		Name:      "2026-08",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(original, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, "journal-1").Return(originalLines, nil).Once()
	s.mockLedgerRepo.On("ListEntriesByJournal", mock.Anything, "journal-1").Return(originalEntries, nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", mock.Anything, "org-1", mock.AnythingOfType("time.Time")).Return(currentPeriod, nil)
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", mock.Anything, mock.Anything, "period-2").Return(currentPeriod, nil)
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{"acc-rent", "acc-cash"}).Return(accounts, nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", mock.Anything, "type-1").Return(s.generalJournalType(), nil)
	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(2), nil).Once()

	var savedJournal domain.Journal
	var savedLines []domain.JournalLine
	s.mockJournalRepo.On("SaveJournalInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			savedJournal = args.Get(2).(domain.Journal)
			savedLines = args.Get(3).([]domain.JournalLine)
		}).Return(nil).Once()

	var reversingEntries []domain.GeneralLedgerEntry
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.GeneralLedgerEntry")).
		Run(func(args mock.Arguments) {
			reversingEntries = args.Get(2).([]domain.GeneralLedgerEntry)
		}).Return(nil).Once()

	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas["acc-rent"].Equal(decimal.NewFromInt(-1200)) && deltas["acc-cash"].Equal(decimal.NewFromInt(1200))
	}), "actor-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	s.mockJournalRepo.On("MarkJournalReversedInTx", mock.Anything, mock.Anything, "journal-1", mock.AnythingOfType("string"), "actor-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockJournalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	s.mockJournalRepo.On("FindJournalByID", mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.Journal{JournalID: "journal-2", OrganizationID: "org-1", Status: domain.Posted, JournalNumber: "GJ-000002"}, nil).Once()
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, mock.AnythingOfType("string")).Return([]domain.JournalLine{}, nil).Once()

	reversing, err := s.service.Reverse(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.Require().NotNil(reversing)

	s.Equal(domain.Posted, savedJournal.Status)
	s.Require().NotNil(savedJournal.OriginalJournalID)
	s.Equal("journal-1", *savedJournal.OriginalJournalID)
	s.Equal("GJ-000002", savedJournal.JournalNumber)
	s.Equal("period-2", savedJournal.PeriodID)

	s.Require().Len(savedLines, 2)
	s.True(savedLines[0].Credit.Equal(decimal.NewFromInt(1200)), "the debit line comes back as a credit")
	s.True(savedLines[1].Debit.Equal(decimal.NewFromInt(1200)), "the credit line comes back as a debit")

	s.Require().Len(reversingEntries, 2)
	for i, entry := range reversingEntries {
		s.True(entry.Debit.Equal(originalEntries[i].Credit), "entry %d debit must equal the original credit", i)
		s.True(entry.Credit.Equal(originalEntries[i].Debit), "entry %d credit must equal the original debit", i)
		s.Equal("period-2", entry.PeriodID)
	}
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestReverse_OnlyPostedJournals() {
	ctx := context.Background()
	journal, _ := s.draftJournal()

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(journal, nil)

	reversing, err := s.service.Reverse(ctx, "org-1", "journal-1", "actor-1")

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(reversing)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestValidate_PreviewWritesNothing() {
	ctx := context.Background()
	journal, lines := s.draftJournal()

	s.mockJournalRepo.On("FindJournalByID", mock.Anything, "journal-1").Return(journal, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, "journal-1").Return(lines, nil)
	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", mock.Anything, "type-1").Return(s.generalJournalType(), nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", mock.Anything, "org-1", mock.AnythingOfType("time.Time")).Return(openPeriod(), nil)
	s.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, []string{"acc-rent", "acc-cash"}).Return(s.postableAccounts(), nil)

	result, err := s.service.Validate(ctx, "org-1", "journal-1")

	s.Require().NoError(err)
	s.True(result.OK())
	s.mockJournalRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
	s.mockJournalTypeRepo.AssertNotCalled(s.T(), "IncrementSequenceInTx", mock.Anything, mock.Anything, mock.Anything)
}

// A journal balanced in transaction currency can round to unbalanced
// functional amounts line by line; the remainder must be folded back so the
// written entries balance to the cent.
func (s *PostingServiceTestSuite) TestPost_CrossCurrencyRoundingStaysBalanced() {
	ctx := context.Background()
	journal, _ := s.draftJournal()
	journal.CurrencyCode = "INR"
	journal.ExchangeRate = decimal.RequireFromString("0.1111")
	lines := []domain.JournalLine{
		{LineID: "l1", JournalID: "journal-1", AccountID: "acc-rent", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{LineID: "l2", JournalID: "journal-1", AccountID: "acc-cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
		{LineID: "l3", JournalID: "journal-1", AccountID: "acc-cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
	}
	s.expectPostReads(journal, lines, openPeriod(), s.postableAccounts())

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)

	var written []domain.GeneralLedgerEntry
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.GeneralLedgerEntry")).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]domain.GeneralLedgerEntry)
		}).Return(nil).Once()
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return deltas["acc-rent"].Equal(deltas["acc-cash"].Neg())
	}), "actor-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockJournalRepo.On("MarkJournalPostedInTx", mock.Anything, mock.Anything, "journal-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	posted := *journal
	posted.Status = domain.Posted
	s.mockJournalRepo.On("FindJournalByID", mock.Anything, "journal-1").Return(&posted, nil).Once()

	_, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.True(validation.OK())
	s.Require().Len(written, 3)
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, entry := range written {
		totalDebit = totalDebit.Add(entry.Debit)
		totalCredit = totalCredit.Add(entry.Credit)
	}
	// 100 * 0.1111 = 11.11 against two credits of 5.56 each; the one-cent
	// remainder lands on the largest entry.
	s.True(totalDebit.Equal(totalCredit), "converted entries must balance, got %s vs %s", totalDebit, totalCredit)
	s.True(totalDebit.Equal(decimal.RequireFromString("11.12")))
}

func (s *PostingServiceTestSuite) TestPost_ApprovedStatusWithoutRecordRefused() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	journal.Status = domain.Approved
	approvalType := s.generalJournalType()
	approvalType.RequiresApproval = true

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(journal, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, "journal-1").Return(lines, nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", mock.Anything, "type-1").Return(approvalType, nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", mock.Anything, "org-1", mock.AnythingOfType("time.Time")).Return(openPeriod(), nil)
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", mock.Anything, mock.Anything, "period-1").Return(openPeriod(), nil)
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{"acc-rent", "acc-cash"}).Return(s.postableAccounts(), nil)
	s.mockApprovalRepo.On("FindLatestApprovalByJournalID", mock.Anything, "journal-1").Return(nil, apperrors.ErrNotFound).Once()

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.Nil(result)
	s.True(validation.Has(domain.CodeApprovalRequired), "a status flag is not an approval record")
	s.mockJournalTypeRepo.AssertNotCalled(s.T(), "IncrementSequenceInTx", mock.Anything, mock.Anything, mock.Anything)
	s.mockApprovalRepo.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestPost_ApprovalRecordClearsGate() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	journal.Status = domain.Approved
	approvalType := s.generalJournalType()
	approvalType.RequiresApproval = true

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(journal, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, "journal-1").Return(lines, nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", mock.Anything, "type-1").Return(approvalType, nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", mock.Anything, "org-1", mock.AnythingOfType("time.Time")).Return(openPeriod(), nil)
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", mock.Anything, mock.Anything, "period-1").Return(openPeriod(), nil)
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{"acc-rent", "acc-cash"}).Return(s.postableAccounts(), nil)
	s.mockApprovalRepo.On("FindLatestApprovalByJournalID", mock.Anything, "journal-1").
		Return(&domain.Approval{ApprovalID: "ap-1", JournalID: "journal-1", Decision: domain.DecisionApproved, DecidedBy: "approver-1"}, nil).Once()

	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(1), nil).Once()
	s.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(&domain.Currency{CurrencyCode: "USD", Precision: 2}, nil)
	s.mockLedgerRepo.On("InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("MarkJournalPostedInTx", mock.Anything, mock.Anything, "journal-1", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.mockJournalRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	posted := *journal
	posted.Status = domain.Posted
	s.mockJournalRepo.On("FindJournalByID", mock.Anything, "journal-1").Return(&posted, nil).Once()

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.True(validation.OK())
	s.Require().NotNil(result)
	s.Equal(domain.Posted, result.Status)
}

func (s *PostingServiceTestSuite) TestPost_MissingAccountReportedOnce() {
	ctx := context.Background()
	journal, lines := s.draftJournal()
	accounts := s.postableAccounts()
	delete(accounts, "acc-cash")
	s.expectPostReads(journal, lines, openPeriod(), accounts)

	result, validation, err := s.service.Post(ctx, "org-1", "journal-1", "actor-1")

	s.Require().NoError(err)
	s.Nil(result)
	notFound := 0
	for _, failure := range validation.Failures {
		if failure.Code == domain.CodeAccountNotFound {
			notFound++
			s.Equal("lines[1].accountID", failure.Field)
		}
	}
	s.Equal(1, notFound, "only the missing account is flagged, not every line")
}

func (s *PostingServiceTestSuite) TestReverse_InactiveAccountRefused() {
	ctx := context.Background()
	original := &domain.Journal{
		JournalID:      "journal-1",
		OrganizationID: "org-1",
		JournalTypeID:  "type-1",
		JournalNumber:  "GJ-000001",
		JournalDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		PeriodID:       "period-1",
		CurrencyCode:   "USD",
		Status:         domain.Posted,
	}
	originalLines := []domain.JournalLine{
		{LineID: "l1", JournalID: "journal-1", AccountID: "acc-rent", Debit: decimal.NewFromInt(1200), Credit: decimal.Zero},
		{LineID: "l2", JournalID: "journal-1", AccountID: "acc-cash", Debit: decimal.Zero, Credit: decimal.NewFromInt(1200)},
	}
	accounts := s.postableAccounts()
	deactivated := accounts["acc-cash"]
	deactivated.IsActive = false
	accounts["acc-cash"] = deactivated
	currentPeriod := &domain.AccountingPeriod{
		PeriodID:  "period-2",
		Name:      "2026-08",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	s.mockOrgRepo.On("FindOrganizationByID", mock.Anything, "org-1").Return(s.organization(), nil)
	s.mockJournalRepo.On("Begin", mock.Anything).Return(nil, nil)
	s.mockJournalRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	s.mockJournalRepo.On("FindJournalByIDForUpdate", mock.Anything, mock.Anything, "journal-1").Return(original, nil)
	s.mockJournalRepo.On("FindLinesByJournalID", mock.Anything, "journal-1").Return(originalLines, nil)
	s.mockLedgerRepo.On("ListEntriesByJournal", mock.Anything, "journal-1").Return([]domain.GeneralLedgerEntry{}, nil)
	s.mockPeriodRepo.On("ResolvePeriodForDate", mock.Anything, "org-1", mock.AnythingOfType("time.Time")).Return(currentPeriod, nil)
	s.mockPeriodRepo.On("FindPeriodByIDForUpdate", mock.Anything, mock.Anything, "period-2").Return(currentPeriod, nil)
	s.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, []string{"acc-rent", "acc-cash"}).Return(accounts, nil)
	s.mockJournalTypeRepo.On("FindJournalTypeByID", mock.Anything, "type-1").Return(s.generalJournalType(), nil)
	s.mockJournalTypeRepo.On("IncrementSequenceInTx", mock.Anything, mock.Anything, "type-1").Return(int64(2), nil)

	reversing, err := s.service.Reverse(ctx, "org-1", "journal-1", "actor-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(reversing)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveJournalInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "InsertEntriesInTx", mock.Anything, mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
