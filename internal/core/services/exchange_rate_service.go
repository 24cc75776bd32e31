package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// exchangeRateService resolves rates and converts amounts into the
// functional currency.
type exchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepository
	currencyRepo portsrepo.CurrencyRepository
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository, currencyRepo portsrepo.CurrencyRepository) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo, currencyRepo: currencyRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate registers a rate effective from a date. Both currencies
// must exist as master data first.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(req.FromCurrencyCode)
	to := strings.ToUpper(req.ToCurrencyCode)
	if from == to {
		return nil, apperrors.NewValidationError("from and to currencies must differ")
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, from); err != nil {
		return nil, err
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, to); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields:      domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// ResolveRate returns the latest rate effective on or before asOf for the
// currency pair. Same-currency pairs resolve to 1 without a lookup; a
// missing rate is ErrNotFound, never a silent default.
func (s *exchangeRateService) ResolveRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	from := strings.ToUpper(fromCode)
	to := strings.ToUpper(toCode)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindRateOnOrBefore(ctx, from, to, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}

// Convert multiplies an amount by rate and rounds to the target currency's
// minor-unit precision using banker's rounding.
func (s *exchangeRateService) Convert(ctx context.Context, amount, rate decimal.Decimal, toCode string) (decimal.Decimal, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(toCode))
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate).RoundBank(currency.Precision), nil
}
