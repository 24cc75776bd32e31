package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
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

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken, includeReversals)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	args := m.Called(ctx, journal, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceJournalLines(ctx context.Context, journalID string, lines []domain.JournalLine, expectedVersion int64, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, lines, expectedVersion, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus, expectedVersion int64, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, status, expectedVersion, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SetJournalApproval(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) error {
	args := m.Called(ctx, journalID, approvedBy, approvedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, tx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) MarkJournalPostedInTx(ctx context.Context, tx pgx.Tx, journalID, journalNumber, periodID string, postedBy string, postedAt time.Time, expectedVersion int64) error {
	args := m.Called(ctx, tx, journalID, journalNumber, periodID, postedBy, postedAt, expectedVersion)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkJournalReversedInTx(ctx context.Context, tx pgx.Tx, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, journalID, reversingJournalID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, lines []domain.JournalLine) error {
	args := m.Called(ctx, tx, journal, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock JournalTypeRepository ---
type MockJournalTypeRepository struct {
	mock.Mock
}

var _ portsrepo.JournalTypeRepositoryFacade = (*MockJournalTypeRepository)(nil)

func (m *MockJournalTypeRepository) FindJournalTypeByID(ctx context.Context, journalTypeID string) (*domain.JournalType, error) {
	args := m.Called(ctx, journalTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalType), args.Error(1)
}

func (m *MockJournalTypeRepository) ListJournalTypesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalType, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalType), args.Error(1)
}

func (m *MockJournalTypeRepository) SaveJournalType(ctx context.Context, journalType domain.JournalType) error {
	args := m.Called(ctx, journalType)
	return args.Error(0)
}

func (m *MockJournalTypeRepository) IncrementSequenceInTx(ctx context.Context, tx pgx.Tx, journalTypeID string) (int64, error) {
	args := m.Called(ctx, tx, journalTypeID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ApprovalRepository ---
type MockApprovalRepository struct {
	mock.Mock
}

var _ portsrepo.ApprovalRepository = (*MockApprovalRepository)(nil)

func (m *MockApprovalRepository) SaveApproval(ctx context.Context, approval domain.Approval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepository) FindLatestApprovalByJournalID(ctx context.Context, journalID string) (*domain.Approval, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo     *MockJournalRepository
	mockJournalTypeRepo *MockJournalTypeRepository
	mockApprovalRepo    *MockApprovalRepository
	service             portssvc.JournalSvcFacade

	orgID   string
	actorID string
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockJournalTypeRepo = new(MockJournalTypeRepository)
	s.mockApprovalRepo = new(MockApprovalRepository)
	s.service = services.NewJournalService(s.mockJournalRepo, s.mockJournalTypeRepo, s.mockApprovalRepo)

	s.orgID = uuid.NewString()
	s.actorID = uuid.NewString()
}

func (s *JournalServiceTestSuite) validCreateRequest() dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		JournalTypeID: "type-1",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:   "March rent",
		CurrencyCode:  "USD",
		Lines: []dto.JournalLineRequest{
			{AccountID: "acc-rent", Debit: decimal.NewFromInt(1200)},
			{AccountID: "acc-cash", Credit: decimal.NewFromInt(1200)},
		},
	}
}

func (s *JournalServiceTestSuite) journalType() *domain.JournalType {
	return &domain.JournalType{
		JournalTypeID:  "type-1",
		OrganizationID: s.orgID,
		Code:           "GJ",
	}
}

func (s *JournalServiceTestSuite) TestCreateDraft_Success() {
	ctx := context.Background()
	req := s.validCreateRequest()

	s.mockJournalTypeRepo.On("FindJournalTypeByID", ctx, "type-1").Return(s.journalType(), nil).Once()
	s.mockJournalRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalLine")).Return(nil).Once()

	journal, err := s.service.CreateDraft(ctx, s.orgID, req, s.actorID)

	s.Require().NoError(err)
	s.Require().NotNil(journal)
	s.NotEmpty(journal.JournalID)
	s.Equal(domain.Draft, journal.Status)
	s.Equal(int64(1), journal.Version)
	s.Empty(journal.JournalNumber, "numbers are only assigned at posting")
	s.Empty(journal.PeriodID, "the period is only resolved at posting")
	s.Len(journal.Lines, 2)
	s.Equal(s.actorID, journal.CreatedBy)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestCreateDraft_TypeFromOtherOrganization() {
	ctx := context.Background()
	foreign := s.journalType()
	foreign.OrganizationID = uuid.NewString()

	s.mockJournalTypeRepo.On("FindJournalTypeByID", ctx, "type-1").Return(foreign, nil).Once()

	journal, err := s.service.CreateDraft(ctx, s.orgID, s.validCreateRequest(), s.actorID)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(journal)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestCreateDraft_MissingDescription() {
	req := s.validCreateRequest()
	req.Description = ""

	journal, err := s.service.CreateDraft(context.Background(), s.orgID, req, s.actorID)

	s.ErrorIs(err, services.ErrDescriptionMissing)
	s.Nil(journal)
}

func (s *JournalServiceTestSuite) TestCreateDraft_SingleAccount() {
	ctx := context.Background()
	req := s.validCreateRequest()
	req.Lines[1].AccountID = req.Lines[0].AccountID

	s.mockJournalTypeRepo.On("FindJournalTypeByID", ctx, "type-1").Return(s.journalType(), nil).Once()

	journal, err := s.service.CreateDraft(ctx, s.orgID, req, s.actorID)

	s.ErrorIs(err, services.ErrJournalMinAccounts)
	s.Nil(journal)
}

func (s *JournalServiceTestSuite) storedJournal(status domain.JournalStatus) *domain.Journal {
	return &domain.Journal{
		JournalID:      "journal-1",
		OrganizationID: s.orgID,
		JournalTypeID:  "type-1",
		Status:         status,
		Version:        3,
	}
}

func (s *JournalServiceTestSuite) TestUpdateDraftLines_PostedIsImmutable() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.Posted), nil).Once()

	req := dto.UpdateJournalLinesRequest{
		Version: 3,
		Lines: []dto.JournalLineRequest{
			{AccountID: "a", Debit: decimal.NewFromInt(1)},
			{AccountID: "b", Credit: decimal.NewFromInt(1)},
		},
	}
	journal, err := s.service.UpdateDraftLines(ctx, s.orgID, "journal-1", req, s.actorID)

	s.ErrorIs(err, apperrors.ErrImmutable)
	s.Nil(journal)
	s.mockJournalRepo.AssertNotCalled(s.T(), "ReplaceJournalLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestUpdateDraftLines_VersionMismatch() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.Draft), nil).Once()
	s.mockJournalRepo.On("ReplaceJournalLines", ctx, "journal-1", mock.AnythingOfType("[]domain.JournalLine"), int64(2), s.actorID, mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrConcurrentModification).Once()

	req := dto.UpdateJournalLinesRequest{
		Version: 2, // Stale: the stored journal is at version 3.
		Lines: []dto.JournalLineRequest{
			{AccountID: "a", Debit: decimal.NewFromInt(1)},
			{AccountID: "b", Credit: decimal.NewFromInt(1)},
		},
	}
	journal, err := s.service.UpdateDraftLines(ctx, s.orgID, "journal-1", req, s.actorID)

	s.ErrorIs(err, apperrors.ErrConcurrentModification)
	s.Nil(journal)
}

func (s *JournalServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.Draft), nil).Once()
	s.mockJournalRepo.On("UpdateJournalStatus", ctx, "journal-1", domain.PendingApproval, int64(3), s.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	journal, err := s.service.Submit(ctx, s.orgID, "journal-1", s.actorID)

	s.Require().NoError(err)
	s.Equal(domain.PendingApproval, journal.Status)
	s.Equal(int64(4), journal.Version)
}

func (s *JournalServiceTestSuite) TestSubmit_FromRejectedFails() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.Rejected), nil).Once()

	journal, err := s.service.Submit(ctx, s.orgID, "journal-1", s.actorID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(journal)
}

func (s *JournalServiceTestSuite) TestApprove_RecordsDecision() {
	ctx := context.Background()
	pending := s.storedJournal(domain.PendingApproval)
	approved := s.storedJournal(domain.Approved)
	approved.Version = 4

	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(pending, nil).Once()
	s.mockJournalRepo.On("UpdateJournalStatus", ctx, "journal-1", domain.Approved, int64(3), s.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockApprovalRepo.On("SaveApproval", ctx, mock.MatchedBy(func(a domain.Approval) bool {
		return a.JournalID == "journal-1" && a.Decision == domain.DecisionApproved && a.DecidedBy == s.actorID
	})).Return(nil).Once()
	s.mockJournalRepo.On("SetJournalApproval", ctx, "journal-1", s.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	// Approve re-reads the journal with its lines at the end.
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(approved, nil).Once()
	s.mockJournalRepo.On("FindLinesByJournalID", ctx, "journal-1").Return([]domain.JournalLine{}, nil).Once()

	journal, err := s.service.Approve(ctx, s.orgID, "journal-1", s.actorID, "looks right")

	s.Require().NoError(err)
	s.Equal(domain.Approved, journal.Status)
	s.mockApprovalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestApprove_RecordWriteFailureLeavesStatusUntouched() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.PendingApproval), nil).Once()
	s.mockApprovalRepo.On("SaveApproval", ctx, mock.AnythingOfType("domain.Approval")).Return(errors.New("write failed")).Once()

	journal, err := s.service.Approve(ctx, s.orgID, "journal-1", s.actorID, "")

	s.Error(err)
	s.Nil(journal)
	s.mockJournalRepo.AssertNotCalled(s.T(), "UpdateJournalStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestApprove_DirectlyFromDraftFails() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.Draft), nil).Once()

	journal, err := s.service.Approve(ctx, s.orgID, "journal-1", s.actorID, "")

	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(journal)
	s.mockApprovalRepo.AssertNotCalled(s.T(), "SaveApproval", mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestReject_RecordsDecision() {
	ctx := context.Background()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(s.storedJournal(domain.PendingApproval), nil).Once()
	s.mockJournalRepo.On("UpdateJournalStatus", ctx, "journal-1", domain.Rejected, int64(3), s.actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockApprovalRepo.On("SaveApproval", ctx, mock.MatchedBy(func(a domain.Approval) bool {
		return a.Decision == domain.DecisionRejected && a.Notes == "wrong period"
	})).Return(nil).Once()

	journal, err := s.service.Reject(ctx, s.orgID, "journal-1", s.actorID, "wrong period")

	s.Require().NoError(err)
	s.Equal(domain.Rejected, journal.Status)
}

func (s *JournalServiceTestSuite) TestGetJournal_OtherOrganizationHidden() {
	ctx := context.Background()
	foreign := s.storedJournal(domain.Draft)
	foreign.OrganizationID = uuid.NewString()
	s.mockJournalRepo.On("FindJournalByID", ctx, "journal-1").Return(foreign, nil).Once()

	journal, err := s.service.GetJournalByID(ctx, s.orgID, "journal-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(journal)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
