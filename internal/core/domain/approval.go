package domain

import "time"

// ApprovalDecision is the outcome recorded by an approver.
type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "APPROVED"
	DecisionRejected ApprovalDecision = "REJECTED"
)

// Approval records a decision taken on a journal that is pending approval.
// The engine only reads the decision and actor; who is authorized to decide
// is computed by the permission layer upstream.
type Approval struct {
	ApprovalID string           `json:"approvalID"`
	JournalID  string           `json:"journalID"`
	Decision   ApprovalDecision `json:"decision"`
	Notes      string           `json:"notes,omitempty"`
	DecidedBy  string           `json:"decidedBy"`
	DecidedAt  time.Time        `json:"decidedAt"`
}

// Approves reports whether this record clears the given journal for posting.
func (a Approval) Approves(journalID string) bool {
	return a.JournalID == journalID && a.Decision == DecisionApproved
}
