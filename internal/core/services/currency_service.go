package services

import (
	"context"
	"strings"
	"time"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// currencyService manages currency master data.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency registers a supported currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorID string) (*domain.Currency, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if len(code) != 3 {
		return nil, apperrors.NewValidationError("currency code must be exactly 3 letters")
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: code,
		Name:         req.Name,
		Symbol:       req.Symbol,
		Precision:    req.Precision,
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, err
	}
	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its ISO code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
}

// ListCurrencies retrieves all supported currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
