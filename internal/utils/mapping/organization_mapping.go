package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID:     d.OrganizationID,
		Name:               d.Name,
		FunctionalCurrency: d.FunctionalCurrency,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID:     m.OrganizationID,
		Name:               m.Name,
		FunctionalCurrency: m.FunctionalCurrency,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
