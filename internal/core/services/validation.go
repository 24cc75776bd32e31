package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// ValidationInput is the pre-loaded state the pipeline runs against. The
// caller (preview or posting orchestrator) loads everything first; the checks
// themselves touch no storage, so preview and authoritative validation share
// the exact same code path.
type ValidationInput struct {
	Journal     domain.Journal // Lines populated
	JournalType *domain.JournalType
	Period      *domain.AccountingPeriod // nil when no period contains the date
	Accounts    map[string]domain.Account
	// Approval is the latest decision recorded for this journal, nil when
	// none exists. Only consulted when the journal type requires approval.
	Approval           *domain.Approval
	FunctionalCurrency string
	// Rates maps currency code -> rate into the functional currency, for
	// every currency the journal references that has no explicit override.
	// A referenced currency absent from the map means no rate was found.
	Rates             map[string]decimal.Decimal
	AllowGroupPosting bool
}

// ValidateJournal runs every check and accumulates the full failure list.
// Checks never short-circuit: the caller gets all problems at once, and a
// second run over unchanged state yields the identical result.
func ValidateJournal(in ValidationInput) domain.ValidationResult {
	var result domain.ValidationResult

	validatePeriod(in, &result)
	validateLines(in, &result)
	validateBalance(in, &result)
	validateAccounts(in, &result)
	validateApproval(in, &result)
	validateRates(in, &result)

	return result
}

func validatePeriod(in ValidationInput, result *domain.ValidationResult) {
	if in.Period == nil {
		result.Add(domain.CodePeriodNotFound, "journalDate",
			fmt.Sprintf("no accounting period contains %s", in.Journal.JournalDate.Format("2006-01-02")))
		return
	}
	if !in.Period.IsOpen() {
		result.Add(domain.CodePeriodClosed, "journalDate",
			fmt.Sprintf("period %s is %s", in.Period.Name, in.Period.Status))
	}
}

func validateLines(in ValidationInput, result *domain.ValidationResult) {
	lines := in.Journal.Lines
	if len(lines) < 2 {
		result.Add(domain.CodeInvalidLine, "lines", "a journal requires at least two lines")
	}

	accountSet := make(map[string]struct{}, len(lines))
	for i, line := range lines {
		if err := line.ValidateShape(); err != nil {
			result.Add(domain.CodeInvalidLine, fmt.Sprintf("lines[%d]", i), err.Error())
		}
		accountSet[line.AccountID] = struct{}{}
	}
	if len(lines) >= 2 && len(accountSet) < 2 {
		result.Add(domain.CodeInvalidLine, "lines", "a journal must affect at least two different accounts")
	}
}

func validateBalance(in ValidationInput, result *domain.ValidationResult) {
	debits := in.Journal.TotalDebits()
	credits := in.Journal.TotalCredits()
	if !debits.Equal(credits) {
		result.Add(domain.CodeUnbalanced, "lines",
			fmt.Sprintf("debits total %s but credits total %s", debits.String(), credits.String()))
	}
}

func validateAccounts(in ValidationInput, result *domain.ValidationResult) {
	for i, line := range in.Journal.Lines {
		field := fmt.Sprintf("lines[%d].accountID", i)
		account, found := in.Accounts[line.AccountID]
		if !found {
			result.Add(domain.CodeAccountNotFound, field,
				fmt.Sprintf("account %s does not exist in this organization", line.AccountID))
			continue
		}
		if !account.IsActive {
			result.Add(domain.CodeAccountInactive, field,
				fmt.Sprintf("account %s (%s) is inactive", account.Code, account.Name))
		}
		if account.IsGroup && !in.AllowGroupPosting {
			result.Add(domain.CodeAccountGroup, field,
				fmt.Sprintf("account %s (%s) is a group account and cannot be posted to", account.Code, account.Name))
		}
	}
}

func validateApproval(in ValidationInput, result *domain.ValidationResult) {
	if in.JournalType == nil || !in.JournalType.RequiresApproval {
		return
	}
	if in.Approval == nil || !in.Approval.Approves(in.Journal.JournalID) {
		result.Add(domain.CodeApprovalRequired, "approval",
			fmt.Sprintf("journal type %s requires an approved decision on record", in.JournalType.Code))
	}
}

func validateRates(in ValidationInput, result *domain.ValidationResult) {
	if in.Journal.ExchangeRate.IsNegative() {
		result.Add(domain.CodeInvalidExchangeRate, "exchangeRate", "exchange rate must be positive")
	}

	// Header currency: an explicit positive rate is used as-is; otherwise a
	// resolved rate must exist for cross-currency journals.
	if in.Journal.CurrencyCode != in.FunctionalCurrency && !in.Journal.HasExplicitRate() {
		if _, found := in.Rates[in.Journal.CurrencyCode]; !found {
			result.Add(domain.CodeNoRateFound, "currencyCode",
				fmt.Sprintf("no exchange rate from %s to %s on or before %s",
					in.Journal.CurrencyCode, in.FunctionalCurrency, in.Journal.JournalDate.Format("2006-01-02")))
		}
	}

	// Per-line currency overrides.
	for i, line := range in.Journal.Lines {
		if line.LineRate != nil && !line.LineRate.IsPositive() {
			result.Add(domain.CodeInvalidExchangeRate, fmt.Sprintf("lines[%d].lineRate", i), "line rate must be positive")
		}
		if line.LineCurrency == nil || *line.LineCurrency == in.FunctionalCurrency || line.LineRate != nil {
			continue
		}
		if _, found := in.Rates[*line.LineCurrency]; !found {
			result.Add(domain.CodeNoRateFound, fmt.Sprintf("lines[%d].lineCurrency", i),
				fmt.Sprintf("no exchange rate from %s to %s on or before %s",
					*line.LineCurrency, in.FunctionalCurrency, in.Journal.JournalDate.Format("2006-01-02")))
		}
	}
}
