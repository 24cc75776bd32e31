package mapping

import (
	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/models"
)

// ToModelAccount converts a domain account to its db shape.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		OrganizationID:  d.OrganizationID,
		Code:            d.Code,
		Name:            d.Name,
		AccountType:     string(d.AccountType),
		NormalSide:      string(d.NormalSide),
		CurrencyCode:    d.CurrencyCode,
		ParentAccountID: d.ParentAccountID,
		IsGroup:         d.IsGroup,
		IsActive:        d.IsActive,
		Balance:         d.Balance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a db account to its domain shape.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		OrganizationID:  m.OrganizationID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		NormalSide:      domain.BalanceSide(m.NormalSide),
		CurrencyCode:    m.CurrencyCode,
		ParentAccountID: m.ParentAccountID,
		IsGroup:         m.IsGroup,
		IsActive:        m.IsActive,
		Balance:         m.Balance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
