package repositories

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// OrganizationRepository persists the tenant boundary. The functional
// currency set here is what every posted ledger entry is denominated in.
type OrganizationRepository interface {
	// SaveOrganization inserts a new organization.
	SaveOrganization(ctx context.Context, organization domain.Organization) error

	// FindOrganizationByID retrieves an organization by ID.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}
