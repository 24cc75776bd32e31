package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// JournalLine is a single debit or credit effect within a journal. Exactly
// one of Debit/Credit is strictly positive and the other is exactly zero.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	JournalID    string          `json:"journalID"`
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	LineCurrency *string         `json:"lineCurrency,omitempty"` // Overrides journal currency when set
	LineRate     *decimal.Decimal `json:"lineRate,omitempty"`    // Overrides journal rate when set
	// Optional analysis dimensions, carried through to the ledger untouched.
	CostCenter string `json:"costCenter,omitempty"`
	Department string `json:"department,omitempty"`
	Project    string `json:"project,omitempty"`
	Notes      string `json:"notes,omitempty"`
	// Inventory-bearing lines trigger the post-commit inventory collaborator.
	ProductID   string          `json:"productID,omitempty"`
	WarehouseID string          `json:"warehouseID,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
	AuditFields
}

// ValidateShape enforces the per-line invariant: one side strictly positive,
// the other exactly zero, neither negative.
func (l JournalLine) ValidateShape() error {
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("line %s: debit and credit must not be negative", l.LineID)
	}
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if debitSet == creditSet {
		return fmt.Errorf("line %s: exactly one of debit or credit must be positive", l.LineID)
	}
	return nil
}

// Amount returns the magnitude of the line regardless of side.
func (l JournalLine) Amount() decimal.Decimal {
	if l.Debit.IsPositive() {
		return l.Debit
	}
	return l.Credit
}

// Side returns which side of the ledger the line hits.
func (l JournalLine) Side() BalanceSide {
	if l.Debit.IsPositive() {
		return DebitSide
	}
	return CreditSide
}

// Negated returns a copy of the line with debit and credit swapped, used to
// build reversal journals.
func (l JournalLine) Negated() JournalLine {
	out := l
	out.Debit = l.Credit
	out.Credit = l.Debit
	return out
}

// IsInventoryBearing reports whether the line carries an inventory movement.
func (l JournalLine) IsInventoryBearing() bool {
	return l.ProductID != "" && l.WarehouseID != "" && !l.Quantity.IsZero()
}
