package repositories

// RepositoryProvider bundles all repositories for dependency injection into
// the service container.
type RepositoryProvider struct {
	OrganizationRepo   OrganizationRepository
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryWithTx
	LedgerRepo         LedgerRepositoryFacade
	PeriodRepo         PeriodRepositoryFacade
	JournalTypeRepo    JournalTypeRepositoryFacade
	ApprovalRepo       ApprovalRepository
	CurrencyRepo       CurrencyRepository
	ExchangeRateRepo   ExchangeRateRepository
	ReconciliationRepo ReconciliationRepository
}
