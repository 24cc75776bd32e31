package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccountingPeriod_Contains(t *testing.T) {
	period := domain.AccountingPeriod{
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 31),
	}

	assert.True(t, period.Contains(date(2026, time.March, 1)), "start date is inclusive")
	assert.True(t, period.Contains(date(2026, time.March, 31)), "end date is inclusive")
	assert.True(t, period.Contains(date(2026, time.March, 15)))
	assert.False(t, period.Contains(date(2026, time.February, 28)))
	assert.False(t, period.Contains(date(2026, time.April, 1)))
}

func TestAccountingPeriod_IsOpen(t *testing.T) {
	assert.True(t, domain.AccountingPeriod{Status: domain.PeriodOpen}.IsOpen())
	assert.False(t, domain.AccountingPeriod{Status: domain.PeriodClosed}.IsOpen())
	assert.False(t, domain.AccountingPeriod{Status: domain.PeriodLocked}.IsOpen())
}

func TestGenerateMonthlyPeriods_CalendarYear(t *testing.T) {
	fy := domain.FiscalYear{
		FiscalYearID:   "fy-1",
		OrganizationID: "org-1",
		Code:           "FY2026",
		StartDate:      date(2026, time.January, 1),
		EndDate:        date(2026, time.December, 31),
	}

	periods := domain.GenerateMonthlyPeriods(fy)
	require.Len(t, periods, 12)

	assert.Equal(t, 1, periods[0].PeriodNumber)
	assert.Equal(t, "2026-01", periods[0].Name)
	assert.Equal(t, date(2026, time.January, 1), periods[0].StartDate)
	assert.Equal(t, date(2026, time.January, 31), periods[0].EndDate)

	// February of a non-leap year.
	assert.Equal(t, date(2026, time.February, 28), periods[1].EndDate)

	assert.Equal(t, 12, periods[11].PeriodNumber)
	assert.Equal(t, "2026-12", periods[11].Name)
	assert.Equal(t, date(2026, time.December, 31), periods[11].EndDate)

	// Consecutive periods never overlap and leave no gap.
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].EndDate.AddDate(0, 0, 1), periods[i].StartDate)
	}

	for _, p := range periods {
		assert.Equal(t, domain.PeriodOpen, p.Status)
		assert.Equal(t, fy.FiscalYearID, p.FiscalYearID)
		assert.Equal(t, fy.OrganizationID, p.OrganizationID)
	}
}

func TestGenerateMonthlyPeriods_NonCalendarYear(t *testing.T) {
	// April-to-March year, common in several jurisdictions.
	fy := domain.FiscalYear{
		StartDate: date(2026, time.April, 1),
		EndDate:   date(2027, time.March, 31),
	}

	periods := domain.GenerateMonthlyPeriods(fy)
	require.Len(t, periods, 12)
	assert.Equal(t, "2026-04", periods[0].Name)
	assert.Equal(t, "2027-03", periods[11].Name)
	assert.Equal(t, date(2027, time.March, 31), periods[11].EndDate)
}

func TestGenerateMonthlyPeriods_ShortYearClamped(t *testing.T) {
	// A stub year ending mid-month: the last period is clamped.
	fy := domain.FiscalYear{
		StartDate: date(2026, time.January, 1),
		EndDate:   date(2026, time.March, 15),
	}

	periods := domain.GenerateMonthlyPeriods(fy)
	require.Len(t, periods, 3)
	assert.Equal(t, date(2026, time.March, 15), periods[2].EndDate)
}
