package services

import (
	"context"
	"errors"
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

var (
	ErrJournalMinLines    = errors.New("journal must have at least two lines")
	ErrJournalMinAccounts = errors.New("journal must affect at least two different accounts")
	ErrDescriptionMissing = errors.New("journal description is required")
)

// journalService owns the draft lifecycle of a voucher: creation, line edits
// and the approval workflow. Posting is deliberately not here.
type journalService struct {
	journalRepo     portsrepo.JournalRepositoryWithTx
	journalTypeRepo portsrepo.JournalTypeRepositoryFacade
	approvalRepo    portsrepo.ApprovalRepository
}

// NewJournalService creates a new journal lifecycle service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, journalTypeRepo portsrepo.JournalTypeRepositoryFacade, approvalRepo portsrepo.ApprovalRepository) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:     journalRepo,
		journalTypeRepo: journalTypeRepo,
		approvalRepo:    approvalRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines into domain lines with fresh IDs. Shape
// problems beyond binding (debit/credit exclusivity, balance) are left to the
// validation pipeline so drafts can be saved in any intermediate state the
// form layer produces; only structural minimums are enforced here.
func buildLines(journalID string, reqLines []dto.JournalLineRequest, audit domain.AuditFields) ([]domain.JournalLine, error) {
	if len(reqLines) < 2 {
		return nil, ErrJournalMinLines
	}

	accountSet := make(map[string]struct{}, len(reqLines))
	lines := make([]domain.JournalLine, len(reqLines))
	for i, req := range reqLines {
		accountSet[req.AccountID] = struct{}{}
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			JournalID:    journalID,
			AccountID:    req.AccountID,
			Debit:        req.Debit,
			Credit:       req.Credit,
			LineCurrency: req.LineCurrency,
			LineRate:     req.LineRate,
			CostCenter:   req.CostCenter,
			Department:   req.Department,
			Project:      req.Project,
			Notes:        req.Notes,
			ProductID:    req.ProductID,
			WarehouseID:  req.WarehouseID,
			Quantity:     req.Quantity,
			AuditFields:  audit,
		}
	}
	if len(accountSet) < 2 {
		return nil, ErrJournalMinAccounts
	}
	return lines, nil
}

// CreateDraft builds a new draft journal from the form layer's payload.
func (s *journalService) CreateDraft(ctx context.Context, organizationID string, req dto.CreateJournalRequest, creatorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}
	if req.ExchangeRate.IsNegative() {
		return nil, apperrors.NewValidationError("exchange rate must not be negative")
	}

	journalType, err := s.journalTypeRepo.FindJournalTypeByID(ctx, req.JournalTypeID)
	if err != nil {
		return nil, err
	}
	if journalType.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID}
	journalID := uuid.NewString()

	lines, err := buildLines(journalID, req.Lines, audit)
	if err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:      journalID,
		OrganizationID: organizationID,
		JournalTypeID:  req.JournalTypeID,
		JournalDate:    req.Date,
		Description:    req.Description,
		CurrencyCode:   req.CurrencyCode,
		ExchangeRate:   req.ExchangeRate,
		Status:         domain.Draft,
		Version:        1,
		AuditFields:    audit,
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lines); err != nil {
		return nil, err
	}

	logger.Info("Draft journal created",
		slog.String("journal_id", journalID),
		slog.String("journal_type_id", req.JournalTypeID),
		slog.Int("lines", len(lines)))

	journal.Lines = lines
	return &journal, nil
}

// UpdateDraftLines replaces a draft's lines under the optimistic version
// check.
func (s *journalService) UpdateDraftLines(ctx context.Context, organizationID, journalID string, req dto.UpdateJournalLinesRequest, actorID string) (*domain.Journal, error) {
	journal, err := s.getOwned(ctx, organizationID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.IsLocked() {
		return nil, apperrors.ErrImmutable
	}
	if journal.Status != domain.Draft {
		return nil, apperrors.ErrConflict
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}
	lines, err := buildLines(journalID, req.Lines, audit)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.ReplaceJournalLines(ctx, journalID, lines, req.Version, actorID, now); err != nil {
		return nil, err
	}

	return s.GetJournalByID(ctx, organizationID, journalID)
}

// GetJournalByID retrieves a journal with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, organizationID, journalID string) (*domain.Journal, error) {
	journal, err := s.getOwned(ctx, organizationID, journalID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Lines = lines
	return journal, nil
}

// ListJournals retrieves a token-paginated page of journals.
func (s *journalService) ListJournals(ctx context.Context, organizationID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	journals, nextToken, err := s.journalRepo.ListJournalsByOrganization(ctx, organizationID, params.Limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListJournalsResponse{
		Journals:  make([]dto.JournalResponse, len(journals)),
		NextToken: nextToken,
	}
	for i := range journals {
		resp.Journals[i] = dto.ToJournalResponse(&journals[i])
	}
	return resp, nil
}

// Submit moves a draft to PENDING_APPROVAL. Drafts whose journal type does
// not require approval may skip submission and post directly.
func (s *journalService) Submit(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, error) {
	return s.transition(ctx, organizationID, journalID, actorID, domain.PendingApproval)
}

// Approve records the approval decision, then moves the journal to APPROVED.
// The record is written first: a failure between the two steps leaves a
// decision on file for a still-pending journal, never an approved status
// with no record behind it.
func (s *journalService) Approve(ctx context.Context, organizationID, journalID, actorID, notes string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.getOwned(ctx, organizationID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.IsLocked() {
		return nil, apperrors.ErrImmutable
	}
	if !journal.Status.CanTransitionTo(domain.Approved) {
		return nil, apperrors.ErrConflict
	}

	now := time.Now().UTC()
	approval := domain.Approval{
		ApprovalID: uuid.NewString(),
		JournalID:  journalID,
		Decision:   domain.DecisionApproved,
		Notes:      notes,
		DecidedBy:  actorID,
		DecidedAt:  now,
	}
	if err := s.approvalRepo.SaveApproval(ctx, approval); err != nil {
		return nil, err
	}
	if err := s.journalRepo.UpdateJournalStatus(ctx, journalID, domain.Approved, journal.Version, actorID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SetJournalApproval(ctx, journalID, actorID, now); err != nil {
		return nil, err
	}

	logger.Info("Journal approved",
		slog.String("journal_id", journalID),
		slog.String("decided_by", actorID))

	return s.GetJournalByID(ctx, organizationID, journalID)
}

// Reject records a rejection and moves the journal to REJECTED.
func (s *journalService) Reject(ctx context.Context, organizationID, journalID, actorID, notes string) (*domain.Journal, error) {
	journal, err := s.transition(ctx, organizationID, journalID, actorID, domain.Rejected)
	if err != nil {
		return nil, err
	}

	approval := domain.Approval{
		ApprovalID: uuid.NewString(),
		JournalID:  journalID,
		Decision:   domain.DecisionRejected,
		Notes:      notes,
		DecidedBy:  actorID,
		DecidedAt:  time.Now().UTC(),
	}
	if err := s.approvalRepo.SaveApproval(ctx, approval); err != nil {
		return nil, err
	}

	return journal, nil
}

func (s *journalService) getOwned(ctx context.Context, organizationID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return journal, nil
}

// transition performs one workflow step against the canonical transition
// table, with the optimistic version check underneath.
func (s *journalService) transition(ctx context.Context, organizationID, journalID, actorID string, target domain.JournalStatus) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.getOwned(ctx, organizationID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.IsLocked() {
		return nil, apperrors.ErrImmutable
	}
	if !journal.Status.CanTransitionTo(target) {
		return nil, apperrors.ErrConflict
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateJournalStatus(ctx, journalID, target, journal.Version, actorID, now); err != nil {
		return nil, err
	}

	logger.Info("Journal transitioned",
		slog.String("journal_id", journalID),
		slog.String("from", string(journal.Status)),
		slog.String("to", string(target)))

	journal.Status = target
	journal.Version++
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = actorID
	return journal, nil
}
