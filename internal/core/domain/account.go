package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide indicates which side of the ledger increases an account.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NormalSide returns the side on which balances of this account type grow.
// Assets and expenses are debit-normal; the rest are credit-normal.
func (t AccountType) NormalSide() BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account is a node in the chart of accounts. Parent accounts precede their
// children; group accounts aggregate and are not posting targets unless the
// organization's configuration explicitly allows it.
type Account struct {
	AccountID       string          `json:"accountID"`
	OrganizationID  string          `json:"organizationID"`
	Code            string          `json:"code"` // Unique per organization
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	NormalSide      BalanceSide     `json:"normalSide"`
	CurrencyCode    string          `json:"currencyCode"`
	ParentAccountID string          `json:"parentAccountID"` // Empty for root accounts
	IsGroup         bool            `json:"isGroup"`
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"` // Running balance, maintained only by posting
	AuditFields
}

// IsPostable reports whether this account may be the target of a journal line.
func (a Account) IsPostable(allowGroupPosting bool) bool {
	if !a.IsActive {
		return false
	}
	if a.IsGroup && !allowGroupPosting {
		return false
	}
	return true
}
