package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a single account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the given accounts keyed by ID. Missing IDs
	// are simply absent from the map; the caller decides whether that is fatal.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccountsByOrganization retrieves all accounts for an organization,
	// ordered by code.
	ListAccountsByOrganization(ctx context.Context, organizationID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountActive flips the active flag on an account.
	UpdateAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string, updatedAt time.Time) error

	// SetAccountBalance overwrites the persisted running balance. Used only by
	// the replay/recompute operation, never by posting.
	SetAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// AccountTxOperations are the operations that must run inside the posting
// transaction. Lock acquisition is ordered by account ID to keep concurrent
// postings that touch overlapping account sets deadlock-free.
type AccountTxOperations interface {
	// FindAccountsByIDsForUpdate locks the given accounts (sorted by ID) with
	// SELECT ... FOR UPDATE and returns them keyed by ID. Missing accounts
	// are absent from the result rather than an error, so validation can name
	// exactly which ones; fails with ErrLockTimeout if the lock wait exceeds
	// the configured bound.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies signed balance deltas to already
	// locked accounts within the transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// AccountRepositoryFacade combines all account repository capabilities.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTxOperations
}
