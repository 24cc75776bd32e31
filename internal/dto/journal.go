package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// JournalLineRequest is one line of a proposed voucher. Exactly one of
// debit/credit must be positive; the shape check reports violations with the
// rest of the validation pipeline instead of binding errors.
type JournalLineRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	LineCurrency *string          `json:"lineCurrency,omitempty" binding:"omitempty,len=3"`
	LineRate     *decimal.Decimal `json:"lineRate,omitempty"`
	CostCenter   string           `json:"costCenter,omitempty"`
	Department   string           `json:"department,omitempty"`
	Project      string           `json:"project,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	ProductID    string           `json:"productID,omitempty"`
	WarehouseID  string           `json:"warehouseID,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity,omitempty"`
}

// CreateJournalRequest creates a draft voucher. The payload shape is the
// stable contract with the schema-driven form layer; how it was produced
// never leaks into the engine.
type CreateJournalRequest struct {
	JournalTypeID string               `json:"journalTypeID" binding:"required"`
	Date          time.Time            `json:"date" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	CurrencyCode  string               `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate  decimal.Decimal      `json:"exchangeRate"` // Optional explicit override
	Lines         []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalLinesRequest replaces a draft's lines. Version is the header
// version the client loaded; a mismatch fails with a conflict.
type UpdateJournalLinesRequest struct {
	Version int64                `json:"version" binding:"required"`
	Lines   []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// DecisionRequest carries approval/rejection notes.
type DecisionRequest struct {
	Notes string `json:"notes"`
}

// ListJournalsParams are the query parameters for listing journals.
type ListJournalsParams struct {
	Limit            int     `form:"limit"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals"`
}

// JournalLineResponse mirrors a stored journal line.
type JournalLineResponse struct {
	LineID       string           `json:"lineID"`
	AccountID    string           `json:"accountID"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	LineCurrency *string          `json:"lineCurrency,omitempty"`
	LineRate     *decimal.Decimal `json:"lineRate,omitempty"`
	CostCenter   string           `json:"costCenter,omitempty"`
	Department   string           `json:"department,omitempty"`
	Project      string           `json:"project,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// JournalResponse mirrors a stored journal header.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	JournalTypeID      string                `json:"journalTypeID"`
	JournalNumber      string                `json:"journalNumber,omitempty"`
	Date               time.Time             `json:"date"`
	PeriodID           string                `json:"periodID,omitempty"`
	Description        string                `json:"description"`
	CurrencyCode       string                `json:"currencyCode"`
	ExchangeRate       decimal.Decimal       `json:"exchangeRate"`
	Status             domain.JournalStatus  `json:"status"`
	IsLocked           bool                  `json:"isLocked"`
	Version            int64                 `json:"version"`
	ApprovedBy         string                `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time            `json:"approvedAt,omitempty"`
	PostedBy           string                `json:"postedBy,omitempty"`
	PostedAt           *time.Time            `json:"postedAt,omitempty"`
	OriginalJournalID  *string               `json:"originalJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	Lines              []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalsResponse is a token-paginated page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ValidationResultResponse is the structured outcome of the validate preview
// and of a refused posting.
type ValidationResultResponse struct {
	OK       bool                       `json:"ok"`
	Failures []domain.ValidationFailure `json:"failures,omitempty"`
}

// ToJournalLineResponse converts a domain line to its response DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		Debit:        l.Debit,
		Credit:       l.Credit,
		LineCurrency: l.LineCurrency,
		LineRate:     l.LineRate,
		CostCenter:   l.CostCenter,
		Department:   l.Department,
		Project:      l.Project,
		Notes:        l.Notes,
	}
}

// ToJournalResponse converts a domain journal to its response DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          j.JournalID,
		JournalTypeID:      j.JournalTypeID,
		JournalNumber:      j.JournalNumber,
		Date:               j.JournalDate,
		PeriodID:           j.PeriodID,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		ExchangeRate:       j.ExchangeRate,
		Status:             j.Status,
		IsLocked:           j.IsLocked(),
		Version:            j.Version,
		ApprovedBy:         j.ApprovedBy,
		ApprovedAt:         j.ApprovedAt,
		PostedBy:           j.PostedBy,
		PostedAt:           j.PostedAt,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i := range j.Lines {
			resp.Lines[i] = ToJournalLineResponse(&j.Lines[i])
		}
	}
	return resp
}

// ToValidationResultResponse converts a pipeline result to its response DTO.
func ToValidationResultResponse(r domain.ValidationResult) ValidationResultResponse {
	return ValidationResultResponse{OK: r.OK(), Failures: r.Failures}
}
