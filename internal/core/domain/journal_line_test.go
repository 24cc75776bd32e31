package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

func TestJournalLine_ValidateShape(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.JournalLine
		wantErr bool
	}{
		{
			name:    "debit only",
			line:    domain.JournalLine{Debit: decimal.NewFromInt(50), Credit: decimal.Zero},
			wantErr: false,
		},
		{
			name:    "credit only",
			line:    domain.JournalLine{Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
			wantErr: false,
		},
		{
			name:    "both sides set",
			line:    domain.JournalLine{Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
			wantErr: true,
		},
		{
			name:    "both sides zero",
			line:    domain.JournalLine{Debit: decimal.Zero, Credit: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "negative debit",
			line:    domain.JournalLine{Debit: decimal.NewFromInt(-50), Credit: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "negative credit",
			line:    domain.JournalLine{Debit: decimal.Zero, Credit: decimal.NewFromInt(-50)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.ValidateShape()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalLine_SideAndAmount(t *testing.T) {
	debitLine := domain.JournalLine{Debit: decimal.RequireFromString("12.34"), Credit: decimal.Zero}
	assert.Equal(t, domain.DebitSide, debitLine.Side())
	assert.Equal(t, "12.34", debitLine.Amount().String())

	creditLine := domain.JournalLine{Debit: decimal.Zero, Credit: decimal.RequireFromString("99.99")}
	assert.Equal(t, domain.CreditSide, creditLine.Side())
	assert.Equal(t, "99.99", creditLine.Amount().String())
}

func TestJournalLine_Negated(t *testing.T) {
	original := domain.JournalLine{
		LineID:    "line-1",
		AccountID: "acc-1",
		Debit:     decimal.RequireFromString("250.50"),
		Credit:    decimal.Zero,
		Notes:     "original",
	}

	negated := original.Negated()

	assert.True(t, negated.Debit.IsZero())
	assert.Equal(t, "250.5", negated.Credit.String())
	assert.Equal(t, domain.CreditSide, negated.Side())
	// Everything but the sides carries over.
	assert.Equal(t, original.AccountID, negated.AccountID)
	assert.Equal(t, original.Notes, negated.Notes)
	// Negating twice restores the original shape.
	assert.True(t, negated.Negated().Debit.Equal(original.Debit))
}

func TestJournalLine_IsInventoryBearing(t *testing.T) {
	full := domain.JournalLine{ProductID: "p1", WarehouseID: "w1", Quantity: decimal.NewFromInt(5)}
	assert.True(t, full.IsInventoryBearing())

	assert.False(t, domain.JournalLine{WarehouseID: "w1", Quantity: decimal.NewFromInt(5)}.IsInventoryBearing())
	assert.False(t, domain.JournalLine{ProductID: "p1", Quantity: decimal.NewFromInt(5)}.IsInventoryBearing())
	assert.False(t, domain.JournalLine{ProductID: "p1", WarehouseID: "w1"}.IsInventoryBearing())
}
