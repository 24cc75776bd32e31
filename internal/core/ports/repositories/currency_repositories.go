package repositories

import (
	"context"
	"time"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// CurrencyRepository persists currency master data.
type CurrencyRepository interface {
	// SaveCurrency inserts a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateRepository persists and resolves exchange rates.
type ExchangeRateRepository interface {
	// SaveExchangeRate inserts or updates a rate for a currency pair and
	// effective date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindRateOnOrBefore retrieves the latest rate effective on or before the
	// given date for a currency pair. ErrNotFound when no rate exists; the
	// caller must surface NO_RATE_FOUND, never default to 1.0.
	FindRateOnOrBefore(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error)
}
