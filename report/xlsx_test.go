package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/warp/timeclock-engine/approval"
	"github.com/warp/timeclock-engine/report"
	"github.com/warp/timeclock-engine/timesheet"
)

func TestWorkbook(t *testing.T) {
	ts := timesheet.NewBlankTimesheet("Pat Doe", "11/2/2025 - 11/15/2025")
	ts.Week1[1].Intervals = []timesheet.TimeInterval{{
		Start: timesheet.MustTimeOfDay("09:00"),
		Stop:  timesheet.MustTimeOfDay("17:00"),
	}}
	ts.Week1[1].Recompute()
	ts.Week1[2].DayType = timesheet.DayHoliday
	ts.Week1[3].ManualEntries = []timesheet.ManualHoursEntry{
		{Amount: decimal.RequireFromString("1.5"), Description: "pager duty"},
		{Amount: decimal.Zero, Description: "placeholder row"},
		{Amount: decimal.New(2, 0)},
	}
	ts.Week1[3].Recompute()

	sub := &approval.Submission{
		ID:            "sub-1",
		EmployeeName:  "Pat Doe",
		PayPeriod:     ts.PayPeriod,
		Timesheet:     *ts,
		Status:        approval.StatusApproved,
		SubmittedAt:   time.Date(2025, time.November, 16, 9, 0, 0, 0, time.UTC),
		SignatureDate: "11/16/2025",
	}

	buf, filename, err := report.Workbook(sub)
	require.NoError(t, err)
	assert.Equal(t, "timesheet-Pat_Doe-2025-11-02.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Week 1", "Week 2", "Summary"}, f.GetSheetList())

	// Monday Nov 3 carries the worked shift.
	date, err := f.GetCellValue("Week 1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "11/03/2025 Mon", date)
	hours, err := f.GetCellValue("Week 1", "D3")
	require.NoError(t, err)
	assert.Equal(t, "8", hours)

	// Manual entries render like the form summary: zero-amount rows are
	// skipped and a bare amount carries no trailing space.
	times, err := f.GetCellValue("Week 1", "C5")
	require.NoError(t, err)
	assert.Equal(t, "1.5h pager duty; 2h", times)

	// The holiday's fixed hours and the manual entries both count toward
	// the week total: 8 worked + 8 holiday + 3.5 manual.
	weekTotal, err := f.GetCellValue("Week 1", "D9")
	require.NoError(t, err)
	assert.Equal(t, "19.5", weekTotal)

	employee, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Pat Doe", employee)
}

func TestWorkbook_BadPeriodLabel(t *testing.T) {
	sub := &approval.Submission{
		ID:        "sub-2",
		PayPeriod: "not a period",
		Timesheet: *timesheet.NewBlankTimesheet("Pat", "not a period"),
	}
	_, _, err := report.Workbook(sub)
	require.Error(t, err)
}
