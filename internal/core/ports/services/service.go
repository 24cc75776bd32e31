package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	Organization OrganizationSvcFacade
	Account      AccountSvcFacade
	Journal      JournalSvcFacade
	JournalType  JournalTypeSvcFacade
	Posting      PostingSvcFacade
	Period       PeriodSvcFacade
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Ledger       LedgerSvcFacade
}
