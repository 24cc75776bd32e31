package repositories

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// ReconciliationRepository records inventory collaborator failures that
// occurred after the financial commit, for manual follow-up.
type ReconciliationRepository interface {
	// SaveReconciliationItem inserts one reconciliation item.
	SaveReconciliationItem(ctx context.Context, item domain.ReconciliationItem) error

	// ListUnresolvedByOrganization retrieves open reconciliation items.
	ListUnresolvedByOrganization(ctx context.Context, organizationID string) ([]domain.ReconciliationItem, error)
}
