package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

// ToModelLedgerEntry converts a domain ledger entry to its db shape.
func ToModelLedgerEntry(d domain.GeneralLedgerEntry) models.GeneralLedgerEntry {
	return models.GeneralLedgerEntry{
		EntryID:        d.EntryID,
		OrganizationID: d.OrganizationID,
		AccountID:      d.AccountID,
		PeriodID:       d.PeriodID,
		JournalID:      d.JournalID,
		JournalLineID:  d.JournalLineID,
		Debit:          d.Debit,
		Credit:         d.Credit,
		PostedAt:       d.PostedAt,
		PostedBy:       d.PostedBy,
	}
}

// ToDomainLedgerEntry converts a db ledger entry to its domain shape.
func ToDomainLedgerEntry(m models.GeneralLedgerEntry) domain.GeneralLedgerEntry {
	return domain.GeneralLedgerEntry{
		EntryID:        m.EntryID,
		OrganizationID: m.OrganizationID,
		AccountID:      m.AccountID,
		PeriodID:       m.PeriodID,
		JournalID:      m.JournalID,
		JournalLineID:  m.JournalLineID,
		Debit:          m.Debit,
		Credit:         m.Credit,
		PostedAt:       m.PostedAt,
		PostedBy:       m.PostedBy,
	}
}

// ToDomainLedgerEntrySlice converts db entries to domain entries.
func ToDomainLedgerEntrySlice(ms []models.GeneralLedgerEntry) []domain.GeneralLedgerEntry {
	out := make([]domain.GeneralLedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
