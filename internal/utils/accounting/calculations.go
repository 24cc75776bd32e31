package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// SignedEffect returns the contribution of a debit/credit pair to a running
// balance kept on the account's normal side.
// Debit to a debit-normal account increases the balance; credit decreases it.
// Credit to a credit-normal account increases the balance; debit decreases it.
func SignedEffect(debit, credit decimal.Decimal, normalSide domain.BalanceSide) (decimal.Decimal, error) {
	switch normalSide {
	case domain.DebitSide:
		return debit.Sub(credit), nil
	case domain.CreditSide:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown normal side %q", normalSide)
	}
}

// LineEffect returns the signed balance effect of one journal line against
// an account held on the given normal side.
func LineEffect(line domain.JournalLine, normalSide domain.BalanceSide) (decimal.Decimal, error) {
	return SignedEffect(line.Debit, line.Credit, normalSide)
}

// ConvertToFunctional converts a transaction-currency amount into functional
// currency: multiply by the rate, then round to the functional currency's
// minor-unit precision with banker's rounding so conversion is reproducible.
func ConvertToFunctional(amount, rate decimal.Decimal, precision int32) decimal.Decimal {
	return amount.Mul(rate).RoundBank(precision)
}

// SumDebitsCredits totals both sides of a set of lines at full precision.
func SumDebitsCredits(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}
