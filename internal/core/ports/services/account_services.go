package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// AccountSvcFacade manages the chart of accounts. Balance mutation is not
// part of this facade: balances move only through the posting orchestrator.
type AccountSvcFacade interface {
	// CreateAccount inserts a new account under an optional parent.
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error)

	// GetAccountByID retrieves one account.
	GetAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves accounts keyed by ID, scoped to the
	// organization.
	GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts of an organization ordered by code.
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)

	// DeactivateAccount makes an account unavailable as a posting target.
	DeactivateAccount(ctx context.Context, organizationID, accountID, actorID string) error

	// RecomputeBalance replays the general ledger for the account and
	// rewrites the persisted running balance from the replayed value.
	RecomputeBalance(ctx context.Context, organizationID, accountID, actorID string) (previous, replayed decimal.Decimal, err error)
}
