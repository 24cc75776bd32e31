package repositories

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// ApprovalRepository persists approval decisions. The engine only reads the
// decision and actor; authorization is computed upstream.
type ApprovalRepository interface {
	// SaveApproval inserts an approval record.
	SaveApproval(ctx context.Context, approval domain.Approval) error

	// FindLatestApprovalByJournalID retrieves the most recent decision for a
	// journal, or ErrNotFound when none exists.
	FindLatestApprovalByJournalID(ctx context.Context, journalID string) (*domain.Approval, error)
}
