package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

// ToModelJournalType converts a domain journal type to its db shape.
func ToModelJournalType(d domain.JournalType) models.JournalType {
	return models.JournalType{
		JournalTypeID:    d.JournalTypeID,
		OrganizationID:   d.OrganizationID,
		Code:             d.Code,
		Name:             d.Name,
		NumberPrefix:     d.NumberPrefix,
		NextSequence:     d.NextSequence,
		NumberWidth:      d.NumberWidth,
		RequiresApproval: d.RequiresApproval,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalType converts a db journal type to its domain shape.
func ToDomainJournalType(m models.JournalType) domain.JournalType {
	return domain.JournalType{
		JournalTypeID:    m.JournalTypeID,
		OrganizationID:   m.OrganizationID,
		Code:             m.Code,
		Name:             m.Name,
		NumberPrefix:     m.NumberPrefix,
		NextSequence:     m.NextSequence,
		NumberWidth:      m.NumberWidth,
		RequiresApproval: m.RequiresApproval,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelApproval converts a domain approval to its db shape.
func ToModelApproval(d domain.Approval) models.Approval {
	return models.Approval{
		ApprovalID: d.ApprovalID,
		JournalID:  d.JournalID,
		Decision:   string(d.Decision),
		Notes:      d.Notes,
		DecidedBy:  d.DecidedBy,
		DecidedAt:  d.DecidedAt,
	}
}

// ToDomainApproval converts a db approval to its domain shape.
func ToDomainApproval(m models.Approval) domain.Approval {
	return domain.Approval{
		ApprovalID: m.ApprovalID,
		JournalID:  m.JournalID,
		Decision:   domain.ApprovalDecision(m.Decision),
		Notes:      m.Notes,
		DecidedBy:  m.DecidedBy,
		DecidedAt:  m.DecidedAt,
	}
}
