package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/core/services"
)

func openPeriod() *domain.AccountingPeriod {
	return &domain.AccountingPeriod{
		PeriodID:  "period-1",
		Name:      "2026-03",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
}

// validInput builds a same-currency, balanced, two-line journal against two
// active leaf accounts in an open period. Each test breaks exactly one thing.
func validInput() services.ValidationInput {
	cash := domain.Account{
		AccountID:      "acc-cash",
		OrganizationID: "org-1",
		Code:           "1000",
		Name:           "Cash",
		AccountType:    domain.Asset,
		NormalSide:     domain.DebitSide,
		IsActive:       true,
	}
	sales := domain.Account{
		AccountID:      "acc-sales",
		OrganizationID: "org-1",
		Code:           "4000",
		Name:           "Sales",
		AccountType:    domain.Revenue,
		NormalSide:     domain.CreditSide,
		IsActive:       true,
	}

	journal := domain.Journal{
		JournalID:      "journal-1",
		OrganizationID: "org-1",
		JournalTypeID:  "type-1",
		JournalDate:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CurrencyCode:   "USD",
		Status:         domain.Draft,
		Lines: []domain.JournalLine{
			{LineID: "l1", AccountID: cash.AccountID, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{LineID: "l2", AccountID: sales.AccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
	}

	return services.ValidationInput{
		Journal: journal,
		JournalType: &domain.JournalType{
			JournalTypeID:    "type-1",
			Code:             "GJ",
			RequiresApproval: false,
		},
		Period: openPeriod(),
		Accounts: map[string]domain.Account{
			cash.AccountID:  cash,
			sales.AccountID: sales,
		},
		FunctionalCurrency: "USD",
		Rates:              map[string]decimal.Decimal{},
	}
}

func TestValidateJournal_Valid(t *testing.T) {
	result := services.ValidateJournal(validInput())
	assert.True(t, result.OK(), "expected no failures, got %v", result.Failures)
}

func TestValidateJournal_NoPeriod(t *testing.T) {
	in := validInput()
	in.Period = nil

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodePeriodNotFound))
}

func TestValidateJournal_ClosedPeriod(t *testing.T) {
	in := validInput()
	in.Period.Status = domain.PeriodClosed

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodePeriodClosed))
}

func TestValidateJournal_Unbalanced(t *testing.T) {
	in := validInput()
	in.Journal.Lines[1].Credit = decimal.RequireFromString("99.99")

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeUnbalanced))
}

func TestValidateJournal_SingleLine(t *testing.T) {
	in := validInput()
	in.Journal.Lines = in.Journal.Lines[:1]

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeInvalidLine))
}

func TestValidateJournal_SameAccountBothSides(t *testing.T) {
	in := validInput()
	in.Journal.Lines[1].AccountID = in.Journal.Lines[0].AccountID

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeInvalidLine))
}

func TestValidateJournal_LineWithBothSidesSet(t *testing.T) {
	in := validInput()
	in.Journal.Lines[0].Credit = decimal.NewFromInt(100)

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeInvalidLine))
}

func TestValidateJournal_UnknownAccount(t *testing.T) {
	in := validInput()
	delete(in.Accounts, "acc-sales")

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeAccountNotFound))
}

func TestValidateJournal_InactiveAccount(t *testing.T) {
	in := validInput()
	acc := in.Accounts["acc-cash"]
	acc.IsActive = false
	in.Accounts["acc-cash"] = acc

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeAccountInactive))
}

func TestValidateJournal_GroupAccount(t *testing.T) {
	in := validInput()
	acc := in.Accounts["acc-cash"]
	acc.IsGroup = true
	in.Accounts["acc-cash"] = acc

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeAccountGroup))

	// The same journal passes when the organization allows group posting.
	in.AllowGroupPosting = true
	assert.True(t, services.ValidateJournal(in).OK())
}

func TestValidateJournal_ApprovalGating(t *testing.T) {
	in := validInput()
	in.JournalType.RequiresApproval = true

	// No decision on record fails the gate, whatever the status claims.
	result := services.ValidateJournal(in)
	assert.True(t, result.Has(domain.CodeApprovalRequired))

	in.Journal.Status = domain.Approved
	assert.True(t, services.ValidateJournal(in).Has(domain.CodeApprovalRequired),
		"an approved status without a record must not clear the gate")

	// An approved decision for this journal passes it.
	in.Approval = &domain.Approval{
		ApprovalID: "ap-1",
		JournalID:  in.Journal.JournalID,
		Decision:   domain.DecisionApproved,
		DecidedBy:  "approver-1",
	}
	assert.True(t, services.ValidateJournal(in).OK())

	// A record for a different journal does not.
	in.Approval.JournalID = "journal-other"
	assert.True(t, services.ValidateJournal(in).Has(domain.CodeApprovalRequired))

	// Neither does a rejection.
	in.Approval.JournalID = in.Journal.JournalID
	in.Approval.Decision = domain.DecisionRejected
	assert.True(t, services.ValidateJournal(in).Has(domain.CodeApprovalRequired))
}

func TestValidateJournal_MissingHeaderRate(t *testing.T) {
	in := validInput()
	in.Journal.CurrencyCode = "EUR" // Functional currency stays USD; no rate loaded.

	result := services.ValidateJournal(in)
	assert.False(t, result.OK())
	assert.True(t, result.Has(domain.CodeNoRateFound))

	// A resolved rate clears the failure.
	in.Rates["EUR"] = decimal.RequireFromString("1.0845")
	assert.True(t, services.ValidateJournal(in).OK())
}

func TestValidateJournal_ExplicitHeaderRateSkipsResolution(t *testing.T) {
	in := validInput()
	in.Journal.CurrencyCode = "EUR"
	in.Journal.ExchangeRate = decimal.RequireFromString("1.10")

	assert.True(t, services.ValidateJournal(in).OK())
}

func TestValidateJournal_NegativeHeaderRate(t *testing.T) {
	in := validInput()
	in.Journal.ExchangeRate = decimal.RequireFromString("-1")

	result := services.ValidateJournal(in)
	assert.True(t, result.Has(domain.CodeInvalidExchangeRate))
}

func TestValidateJournal_LineCurrencyNeedsRate(t *testing.T) {
	in := validInput()
	gbp := "GBP"
	in.Journal.Lines[0].LineCurrency = &gbp

	result := services.ValidateJournal(in)
	assert.True(t, result.Has(domain.CodeNoRateFound))

	// An explicit line rate overrides resolution entirely.
	lineRate := decimal.RequireFromString("1.27")
	in.Journal.Lines[0].LineRate = &lineRate
	assert.True(t, services.ValidateJournal(in).OK())
}

func TestValidateJournal_NonPositiveLineRate(t *testing.T) {
	in := validInput()
	zero := decimal.Zero
	in.Journal.Lines[0].LineRate = &zero

	result := services.ValidateJournal(in)
	assert.True(t, result.Has(domain.CodeInvalidExchangeRate))
}

func TestValidateJournal_AccumulatesAllFailures(t *testing.T) {
	in := validInput()
	in.Period.Status = domain.PeriodClosed
	in.Journal.Lines[1].Credit = decimal.NewFromInt(50)
	delete(in.Accounts, "acc-cash")

	result := services.ValidateJournal(in)
	require.False(t, result.OK())
	assert.True(t, result.Has(domain.CodePeriodClosed))
	assert.True(t, result.Has(domain.CodeUnbalanced))
	assert.True(t, result.Has(domain.CodeAccountNotFound))
	assert.GreaterOrEqual(t, len(result.Failures), 3, "all checks report, none short-circuit")
}

func TestValidateJournal_Deterministic(t *testing.T) {
	in := validInput()
	in.Period.Status = domain.PeriodClosed
	in.Journal.Lines[1].Credit = decimal.NewFromInt(50)

	first := services.ValidateJournal(in)
	second := services.ValidateJournal(in)
	assert.Equal(t, first, second, "same input yields the identical failure list in order")
}
