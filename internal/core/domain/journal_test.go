package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

func TestJournalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.JournalStatus
		to     domain.JournalStatus
		want   bool
	}{
		{"draft to pending approval", domain.Draft, domain.PendingApproval, true},
		{"draft to posted (no approval required)", domain.Draft, domain.Posted, true},
		{"draft to rejected", domain.Draft, domain.Rejected, true},
		{"draft to approved skips submission", domain.Draft, domain.Approved, false},
		{"pending to approved", domain.PendingApproval, domain.Approved, true},
		{"pending to rejected", domain.PendingApproval, domain.Rejected, true},
		{"pending straight to posted", domain.PendingApproval, domain.Posted, false},
		{"approved to posted", domain.Approved, domain.Posted, true},
		{"approved to rejected", domain.Approved, domain.Rejected, true},
		{"posted to reversed", domain.Posted, domain.Reversed, true},
		{"posted back to draft", domain.Posted, domain.Draft, false},
		{"rejected is terminal", domain.Rejected, domain.Draft, false},
		{"reversed is terminal", domain.Reversed, domain.Posted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJournalStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.Posted.IsTerminal())
	assert.True(t, domain.Rejected.IsTerminal())
	assert.True(t, domain.Reversed.IsTerminal())
	assert.False(t, domain.Draft.IsTerminal())
	assert.False(t, domain.PendingApproval.IsTerminal())
	assert.False(t, domain.Approved.IsTerminal())
}

func TestJournal_IsLocked(t *testing.T) {
	assert.True(t, domain.Journal{Status: domain.Posted}.IsLocked())
	assert.True(t, domain.Journal{Status: domain.Reversed}.IsLocked())
	assert.False(t, domain.Journal{Status: domain.Draft}.IsLocked())
	assert.False(t, domain.Journal{Status: domain.Rejected}.IsLocked())
}

func TestJournal_IsBalanced(t *testing.T) {
	balanced := domain.Journal{
		Lines: []domain.JournalLine{
			{Debit: decimal.RequireFromString("100.01"), Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: decimal.RequireFromString("100.01")},
		},
	}
	assert.True(t, balanced.IsBalanced())
	assert.Equal(t, "100.01", balanced.TotalDebits().String())
	assert.Equal(t, "100.01", balanced.TotalCredits().String())

	// A one-cent difference is a failure; there is no tolerance.
	unbalanced := domain.Journal{
		Lines: []domain.JournalLine{
			{Debit: decimal.RequireFromString("100.01"), Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00")},
		},
	}
	assert.False(t, unbalanced.IsBalanced())
}

func TestJournal_HasExplicitRate(t *testing.T) {
	assert.False(t, domain.Journal{}.HasExplicitRate())
	assert.False(t, domain.Journal{ExchangeRate: decimal.Zero}.HasExplicitRate())
	assert.True(t, domain.Journal{ExchangeRate: decimal.RequireFromString("1.0845")}.HasExplicitRate())
}
