package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the db-layer shape of a currency row.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Name         string `db:"name"`
	Symbol       string `db:"symbol"`
	Precision    int32  `db:"precision"`
	AuditFields
}

// ExchangeRate is the db-layer shape of an exchange rate row.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"`
	DateEffective    time.Time       `db:"date_effective"`
	AuditFields
}
