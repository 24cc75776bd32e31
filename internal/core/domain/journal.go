package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the lifecycle state of a journal voucher.
type JournalStatus string

const (
	Draft           JournalStatus = "DRAFT"
	PendingApproval JournalStatus = "PENDING_APPROVAL"
	Approved        JournalStatus = "APPROVED"
	Posted          JournalStatus = "POSTED"
	Rejected        JournalStatus = "REJECTED"
	Reversed        JournalStatus = "REVERSED"
)

// journalTransitions is the canonical state transition table. Posting and
// reversal are the only paths into the two terminal, locked states.
var journalTransitions = map[JournalStatus][]JournalStatus{
	Draft:           {PendingApproval, Posted, Rejected},
	PendingApproval: {Approved, Rejected},
	Approved:        {Posted, Rejected},
	Posted:          {Reversed},
	Rejected:        {},
	Reversed:        {},
}

// CanTransitionTo reports whether the status may move to the target state.
func (s JournalStatus) CanTransitionTo(target JournalStatus) bool {
	for _, allowed := range journalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible except
// reversal of a posted journal.
func (s JournalStatus) IsTerminal() bool {
	return s == Posted || s == Rejected || s == Reversed
}

// Journal is the voucher header: a single business transaction composed of
// balanced debit/credit lines. The journal number is assigned by the
// numbering service at posting time when still blank.
type Journal struct {
	JournalID      string          `json:"journalID"`
	OrganizationID string          `json:"organizationID"`
	JournalTypeID  string          `json:"journalTypeID"`
	JournalNumber  string          `json:"journalNumber"` // Blank until posted
	JournalDate    time.Time       `json:"journalDate"`
	PeriodID       string          `json:"periodID"` // Resolved at posting time
	Description    string          `json:"description"`
	CurrencyCode   string          `json:"currencyCode"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"` // Transaction -> functional; zero means "resolve at posting"
	Status         JournalStatus   `json:"status"`
	ApprovedBy     string          `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	PostedBy       string          `json:"postedBy,omitempty"`
	PostedAt       *time.Time      `json:"postedAt,omitempty"`
	// Reversal linkage: a reversing journal points at its original, and the
	// original points forward at the journal that reversed it.
	OriginalJournalID  *string `json:"originalJournalID,omitempty"`
	ReversingJournalID *string `json:"reversingJournalID,omitempty"`
	// Version guards the header against concurrent edits between load and post.
	Version int64 `json:"version"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"`
}

// IsLocked is derived from status: locked journals' lines are immutable.
func (j Journal) IsLocked() bool {
	return j.Status == Posted || j.Status == Reversed
}

// HasExplicitRate reports whether the user pinned an exchange rate on the
// header; an explicit rate is used as-is and never re-resolved.
func (j Journal) HasExplicitRate() bool {
	return j.ExchangeRate.IsPositive()
}

// TotalDebits sums the debit side of all lines at full precision.
func (j Journal) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range j.Lines {
		sum = sum.Add(l.Debit)
	}
	return sum
}

// TotalCredits sums the credit side of all lines at full precision.
func (j Journal) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range j.Lines {
		sum = sum.Add(l.Credit)
	}
	return sum
}

// IsBalanced reports whether debits equal credits exactly, with zero tolerance.
func (j Journal) IsBalanced() bool {
	return j.TotalDebits().Equal(j.TotalCredits())
}
