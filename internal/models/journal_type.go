package models

import "time"

// JournalType is the db-layer shape of a voucher category row.
type JournalType struct {
	JournalTypeID    string `db:"journal_type_id"`
	OrganizationID   string `db:"organization_id"`
	Code             string `db:"code"`
	Name             string `db:"name"`
	NumberPrefix     string `db:"number_prefix"`
	NextSequence     int64  `db:"next_sequence"`
	NumberWidth      int    `db:"number_width"`
	RequiresApproval bool   `db:"requires_approval"`
	AuditFields
}

// Approval is the db-layer shape of an approval decision row.
type Approval struct {
	ApprovalID string    `db:"approval_id"`
	JournalID  string    `db:"journal_id"`
	Decision   string    `db:"decision"`
	Notes      string    `db:"notes"`
	DecidedBy  string    `db:"decided_by"`
	DecidedAt  time.Time `db:"decided_at"`
}
