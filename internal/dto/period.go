package dto

import (
	"time"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// CreateFiscalYearRequest creates a fiscal year; monthly periods are
// generated from the date range.
type CreateFiscalYearRequest struct {
	Code      string    `json:"code" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// PeriodResponse mirrors a stored accounting period.
type PeriodResponse struct {
	PeriodID     string              `json:"periodID"`
	FiscalYearID string              `json:"fiscalYearID"`
	PeriodNumber int                 `json:"periodNumber"`
	Name         string              `json:"name"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
	Status       domain.PeriodStatus `json:"status"`
}

// FiscalYearResponse mirrors a stored fiscal year and its periods.
type FiscalYearResponse struct {
	FiscalYearID string              `json:"fiscalYearID"`
	Code         string              `json:"code"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
	Status       domain.PeriodStatus `json:"status"`
	Periods      []PeriodResponse    `json:"periods,omitempty"`
}

// ToPeriodResponse converts a domain period to its response DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:     p.PeriodID,
		FiscalYearID: p.FiscalYearID,
		PeriodNumber: p.PeriodNumber,
		Name:         p.Name,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
	}
}

// ToFiscalYearResponse converts a fiscal year and its periods.
func ToFiscalYearResponse(fy *domain.FiscalYear, periods []domain.AccountingPeriod) FiscalYearResponse {
	resp := FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Code:         fy.Code,
		StartDate:    fy.StartDate,
		EndDate:      fy.EndDate,
		Status:       fy.Status,
	}
	for i := range periods {
		resp.Periods = append(resp.Periods, ToPeriodResponse(&periods[i]))
	}
	return resp
}
