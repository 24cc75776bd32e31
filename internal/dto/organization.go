package dto

import (
	"time"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// CreateOrganizationRequest registers a new tenant. The functional currency
// is fixed at creation; every ledger entry is denominated in it.
type CreateOrganizationRequest struct {
	Name               string `json:"name" binding:"required"`
	FunctionalCurrency string `json:"functionalCurrency" binding:"required,len=3"`
}

// OrganizationResponse mirrors a stored organization.
type OrganizationResponse struct {
	OrganizationID     string    `json:"organizationID"`
	Name               string    `json:"name"`
	FunctionalCurrency string    `json:"functionalCurrency"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToOrganizationResponse converts a domain organization to its response DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:     o.OrganizationID,
		Name:               o.Name,
		FunctionalCurrency: o.FunctionalCurrency,
		CreatedAt:          o.CreatedAt,
	}
}
