package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

// ToModelFiscalYear converts a domain fiscal year to its db shape.
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID:   d.FiscalYearID,
		OrganizationID: d.OrganizationID,
		Code:           d.Code,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a db fiscal year to its domain shape.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID:   m.FiscalYearID,
		OrganizationID: m.OrganizationID,
		Code:           m.Code,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         domain.PeriodStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPeriod converts a domain period to its db shape.
func ToModelPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:       d.PeriodID,
		OrganizationID: d.OrganizationID,
		FiscalYearID:   d.FiscalYearID,
		PeriodNumber:   d.PeriodNumber,
		Name:           d.Name,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a db period to its domain shape.
func ToDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:       m.PeriodID,
		OrganizationID: m.OrganizationID,
		FiscalYearID:   m.FiscalYearID,
		PeriodNumber:   m.PeriodNumber,
		Name:           m.Name,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         domain.PeriodStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
