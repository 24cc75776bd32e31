package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories against one shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool, lockTimeoutMS int) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		OrganizationRepo:   newPgxOrganizationRepository(pool, lockTimeoutMS),
		AccountRepo:        newPgxAccountRepository(pool, lockTimeoutMS),
		JournalRepo:        newPgxJournalRepository(pool, lockTimeoutMS),
		LedgerRepo:         newPgxLedgerRepository(pool, lockTimeoutMS),
		PeriodRepo:         newPgxPeriodRepository(pool, lockTimeoutMS),
		JournalTypeRepo:    newPgxJournalTypeRepository(pool, lockTimeoutMS),
		ApprovalRepo:       newPgxApprovalRepository(pool, lockTimeoutMS),
		CurrencyRepo:       newPgxCurrencyRepository(pool, lockTimeoutMS),
		ExchangeRateRepo:   newPgxExchangeRateRepository(pool, lockTimeoutMS),
		ReconciliationRepo: newPgxReconciliationRepository(pool, lockTimeoutMS),
	}
}
