package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency and its minor-unit precision.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Precision    int32  `json:"precision"` // Minor units, e.g., 2 for cents
	AuditFields
}

// ExchangeRate stores the conversion rate between two currencies effective
// from a specific date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
