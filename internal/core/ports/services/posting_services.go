package services

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// PostingSvcFacade is the only path by which a journal's effects reach the
// general ledger and account balances.
type PostingSvcFacade interface {
	// Validate runs the full validation pipeline against committed state
	// without writing anything. Safe to call repeatedly; the result of a
	// preview is advisory only.
	Validate(ctx context.Context, organizationID, journalID string) (domain.ValidationResult, error)

	// Post atomically validates and posts the journal: number assignment,
	// ledger entries, balance updates and status stamp all commit or none do.
	// A failed pipeline returns the result with a nil error; infrastructure
	// and concurrency problems return an error.
	Post(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, domain.ValidationResult, error)

	// Reverse creates and posts a new journal whose lines exactly negate the
	// original's, linking the two. The original must be POSTED.
	Reverse(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, error)
}

// InventoryPoster is the external inventory collaborator, invoked after the
// financial commit. Its failure is recorded, never propagated into the
// already-committed posting.
type InventoryPoster interface {
	PostMovements(ctx context.Context, movements []domain.InventoryMovement) error
}
