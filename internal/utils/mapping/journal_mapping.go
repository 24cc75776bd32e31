package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

// ToModelJournal converts a domain journal header to its db shape.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          d.JournalID,
		OrganizationID:     d.OrganizationID,
		JournalTypeID:      d.JournalTypeID,
		JournalNumber:      d.JournalNumber,
		JournalDate:        d.JournalDate,
		PeriodID:           d.PeriodID,
		Description:        d.Description,
		CurrencyCode:       d.CurrencyCode,
		ExchangeRate:       d.ExchangeRate,
		Status:             string(d.Status),
		ApprovedBy:         d.ApprovedBy,
		ApprovedAt:         d.ApprovedAt,
		PostedBy:           d.PostedBy,
		PostedAt:           d.PostedAt,
		OriginalJournalID:  d.OriginalJournalID,
		ReversingJournalID: d.ReversingJournalID,
		Version:            d.Version,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a db journal header to its domain shape.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		OrganizationID:     m.OrganizationID,
		JournalTypeID:      m.JournalTypeID,
		JournalNumber:      m.JournalNumber,
		JournalDate:        m.JournalDate,
		PeriodID:           m.PeriodID,
		Description:        m.Description,
		CurrencyCode:       m.CurrencyCode,
		ExchangeRate:       m.ExchangeRate,
		Status:             domain.JournalStatus(m.Status),
		ApprovedBy:         m.ApprovedBy,
		ApprovedAt:         m.ApprovedAt,
		PostedBy:           m.PostedBy,
		PostedAt:           m.PostedAt,
		OriginalJournalID:  m.OriginalJournalID,
		ReversingJournalID: m.ReversingJournalID,
		Version:            m.Version,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line to its db shape.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		JournalID:    d.JournalID,
		AccountID:    d.AccountID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		LineCurrency: d.LineCurrency,
		LineRate:     d.LineRate,
		CostCenter:   d.CostCenter,
		Department:   d.Department,
		Project:      d.Project,
		Notes:        d.Notes,
		ProductID:    d.ProductID,
		WarehouseID:  d.WarehouseID,
		Quantity:     d.Quantity,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a db line to its domain shape.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		JournalID:    m.JournalID,
		AccountID:    m.AccountID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		LineCurrency: m.LineCurrency,
		LineRate:     m.LineRate,
		CostCenter:   m.CostCenter,
		Department:   m.Department,
		Project:      m.Project,
		Notes:        m.Notes,
		ProductID:    m.ProductID,
		WarehouseID:  m.WarehouseID,
		Quantity:     m.Quantity,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts db lines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalLine(m)
	}
	return out
}
