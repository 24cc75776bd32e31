package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for database transaction management.
// Tx-scoped repository methods take the pgx.Tx explicitly so the posting
// orchestrator can compose several repositories into one atomic unit of work.
type TransactionManager interface {
	// Begin starts a new database transaction. The configured lock timeout is
	// applied with SET LOCAL so lock waits fail fast instead of queueing.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
