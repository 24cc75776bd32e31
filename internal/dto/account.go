package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// CreateAccountRequest creates a new chart-of-accounts node.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	CurrencyCode    string             `json:"currencyCode" binding:"required,len=3"`
	ParentAccountID string             `json:"parentAccountID"`
	IsGroup         bool               `json:"isGroup"`
	Description     string             `json:"description"`
}

// AccountResponse mirrors a stored account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	NormalSide      domain.BalanceSide `json:"normalSide"`
	CurrencyCode    string             `json:"currencyCode"`
	ParentAccountID string             `json:"parentAccountID,omitempty"`
	IsGroup         bool               `json:"isGroup"`
	IsActive        bool               `json:"isActive"`
	Balance         decimal.Decimal    `json:"balance"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// RecomputeBalanceResponse reports the ledger replay outcome for one account.
type RecomputeBalanceResponse struct {
	AccountID       string          `json:"accountID"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	ReplayedBalance decimal.Decimal `json:"replayedBalance"`
	Drifted         bool            `json:"drifted"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     a.AccountType,
		NormalSide:      a.NormalSide,
		CurrencyCode:    a.CurrencyCode,
		ParentAccountID: a.ParentAccountID,
		IsGroup:         a.IsGroup,
		IsActive:        a.IsActive,
		Balance:         a.Balance,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
