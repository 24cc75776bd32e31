package dto

import "github.com/openbooks/ledger_engine/internal/core/domain"

// CreateJournalTypeRequest creates a voucher category with its numbering
// configuration.
type CreateJournalTypeRequest struct {
	Code             string `json:"code" binding:"required"`
	Name             string `json:"name" binding:"required"`
	NumberPrefix     string `json:"numberPrefix" binding:"required"`
	NumberWidth      int    `json:"numberWidth" binding:"required,min=1,max=12"`
	RequiresApproval bool   `json:"requiresApproval"`
}

// JournalTypeResponse mirrors a stored journal type.
type JournalTypeResponse struct {
	JournalTypeID    string `json:"journalTypeID"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	NumberPrefix     string `json:"numberPrefix"`
	NextSequence     int64  `json:"nextSequence"`
	NumberWidth      int    `json:"numberWidth"`
	RequiresApproval bool   `json:"requiresApproval"`
}

// ToJournalTypeResponse converts a domain journal type to its response DTO.
func ToJournalTypeResponse(t *domain.JournalType) JournalTypeResponse {
	return JournalTypeResponse{
		JournalTypeID:    t.JournalTypeID,
		Code:             t.Code,
		Name:             t.Name,
		NumberPrefix:     t.NumberPrefix,
		NextSequence:     t.NextSequence,
		NumberWidth:      t.NumberWidth,
		RequiresApproval: t.RequiresApproval,
	}
}
