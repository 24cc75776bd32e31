package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// CurrencySvcFacade manages currency master data.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateSvcFacade resolves rates and converts amounts into the
// functional currency.
type ExchangeRateSvcFacade interface {
	// CreateExchangeRate registers a rate effective from a date.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error)

	// ResolveRate returns the latest rate effective on or before asOf for the
	// currency pair. Same-currency pairs resolve to 1 without a lookup.
	// A missing rate is ErrNotFound, surfaced as NO_RATE_FOUND by validation,
	// never silently defaulted.
	ResolveRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error)

	// Convert multiplies an amount by rate and rounds to the target
	// currency's minor-unit precision using banker's rounding.
	Convert(ctx context.Context, amount, rate decimal.Decimal, toCode string) (decimal.Decimal, error)
}
