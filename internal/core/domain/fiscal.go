package domain

import (
	"fmt"
	"time"
)

// PeriodStatus indicates whether an accounting period accepts postings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
	PeriodLocked PeriodStatus = "LOCKED"
)

// FiscalYear is an ordered range of accounting periods.
type FiscalYear struct {
	FiscalYearID   string       `json:"fiscalYearID"`
	OrganizationID string       `json:"organizationID"`
	Code           string       `json:"code"` // e.g., "FY2026"
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	AuditFields
}

// AccountingPeriod is a bounded date range within a fiscal year.
// Periods within one fiscal year never overlap and are fully contained
// within the fiscal year's own range.
type AccountingPeriod struct {
	PeriodID       string       `json:"periodID"`
	OrganizationID string       `json:"organizationID"`
	FiscalYearID   string       `json:"fiscalYearID"`
	PeriodNumber   int          `json:"periodNumber"` // 1-based ordinal within the fiscal year
	Name           string       `json:"name"`         // e.g., "2026-03"
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether the given date falls inside the period's range (inclusive).
func (p AccountingPeriod) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}

// IsOpen reports whether the period accepts new postings.
func (p AccountingPeriod) IsOpen() bool {
	return p.Status == PeriodOpen
}

// GenerateMonthlyPeriods splits a fiscal year into calendar-month periods.
// The fiscal year is expected to start on the first day of a month; each
// generated period is clamped to the fiscal year's end date.
func GenerateMonthlyPeriods(fy FiscalYear) []AccountingPeriod {
	periods := make([]AccountingPeriod, 0, 12)
	start := fy.StartDate
	number := 1
	for !start.After(fy.EndDate) {
		end := start.AddDate(0, 1, -1)
		if end.After(fy.EndDate) {
			end = fy.EndDate
		}
		periods = append(periods, AccountingPeriod{
			OrganizationID: fy.OrganizationID,
			FiscalYearID:   fy.FiscalYearID,
			PeriodNumber:   number,
			Name:           fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month())),
			StartDate:      start,
			EndDate:        end,
			Status:         PeriodOpen,
		})
		start = start.AddDate(0, 1, 0)
		number++
	}
	return periods
}
