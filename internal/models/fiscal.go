package models

import "time"

// FiscalYear is the db-layer shape of a fiscal year row.
type FiscalYear struct {
	FiscalYearID   string    `db:"fiscal_year_id"`
	OrganizationID string    `db:"organization_id"`
	Code           string    `db:"code"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Status         string    `db:"status"`
	AuditFields
}

// AccountingPeriod is the db-layer shape of a period row.
type AccountingPeriod struct {
	PeriodID       string    `db:"period_id"`
	OrganizationID string    `db:"organization_id"`
	FiscalYearID   string    `db:"fiscal_year_id"`
	PeriodNumber   int       `db:"period_number"`
	Name           string    `db:"name"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Status         string    `db:"status"`
	AuditFields
}
