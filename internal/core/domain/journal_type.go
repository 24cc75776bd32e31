package domain

import "fmt"

// JournalType categorizes vouchers (general journal, sales invoice, ...) and
// owns the numbering configuration for journals of its kind.
type JournalType struct {
	JournalTypeID    string `json:"journalTypeID"`
	OrganizationID   string `json:"organizationID"`
	Code             string `json:"code"` // Unique per organization
	Name             string `json:"name"`
	NumberPrefix     string `json:"numberPrefix"` // e.g., "GJ-"
	NextSequence     int64  `json:"nextSequence"` // Next value to issue; incremented under the posting tx
	NumberWidth      int    `json:"numberWidth"`  // Zero-padding width of the sequence part
	RequiresApproval bool   `json:"requiresApproval"`
	AuditFields
}

// FormatNumber renders a sequence value as a journal number for this type.
func (t JournalType) FormatNumber(sequence int64) string {
	return fmt.Sprintf("%s%0*d", t.NumberPrefix, t.NumberWidth, sequence)
}
