package services

import (
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
)

// NewServiceContainer wires all application services against the repository
// provider. allowGroupPosting relaxes the ACCOUNT_GROUP posting check for
// organizations that keep balances on group accounts.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, inventoryPoster portssvc.InventoryPoster, allowGroupPosting bool) *portssvc.ServiceContainer {
	if inventoryPoster == nil {
		inventoryPoster = NewLoggingInventoryPoster()
	}

	rateSvc := NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)

	return &portssvc.ServiceContainer{
		Organization: NewOrganizationService(repos.OrganizationRepo, repos.CurrencyRepo),
		Account:      NewAccountService(repos.AccountRepo, repos.LedgerRepo),
		Journal:      NewJournalService(repos.JournalRepo, repos.JournalTypeRepo, repos.ApprovalRepo),
		JournalType:  NewJournalTypeService(repos.JournalTypeRepo),
		Posting:      NewPostingService(repos, rateSvc, inventoryPoster, allowGroupPosting),
		Period:       NewPeriodService(repos.PeriodRepo),
		Currency:     NewCurrencyService(repos.CurrencyRepo),
		ExchangeRate: rateSvc,
		Ledger:       NewLedgerService(repos.LedgerRepo, repos.JournalRepo, repos.AccountRepo, repos.PeriodRepo),
	}
}
