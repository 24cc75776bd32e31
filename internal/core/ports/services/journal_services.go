package services

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// JournalSvcFacade covers the draft lifecycle of a voucher up to (but not
// including) posting: creation, line edits, approval workflow transitions.
type JournalSvcFacade interface {
	// CreateDraft builds a new draft journal from the form layer's payload.
	CreateDraft(ctx context.Context, organizationID string, req dto.CreateJournalRequest, creatorID string) (*domain.Journal, error)

	// UpdateDraftLines replaces a draft's lines. Fails with ErrImmutable on a
	// locked journal and ErrConcurrentModification on a version mismatch.
	UpdateDraftLines(ctx context.Context, organizationID, journalID string, req dto.UpdateJournalLinesRequest, actorID string) (*domain.Journal, error)

	// GetJournalByID retrieves a journal with its lines.
	GetJournalByID(ctx context.Context, organizationID, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a token-paginated page of journals.
	ListJournals(ctx context.Context, organizationID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// Submit moves a draft to PENDING_APPROVAL.
	Submit(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, error)

	// Approve records an approval decision and moves the journal to APPROVED.
	Approve(ctx context.Context, organizationID, journalID, actorID, notes string) (*domain.Journal, error)

	// Reject records a rejection and moves the journal to REJECTED.
	Reject(ctx context.Context, organizationID, journalID, actorID, notes string) (*domain.Journal, error)
}
