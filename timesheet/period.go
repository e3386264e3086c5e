/*
period.go - Week and pay-period aggregation

PURPOSE:
  Rolls 14 day-results up into week totals, overtime, and the pay-period
  total, and decides whether a timesheet is blank (which drives
  auto-fill-from-template on period selection).

OVERTIME POLICY (hourly mode):
  - Overtime is weekly, never biweekly: each week's hours beyond 40
    non-holiday hours count as overtime, matching US wage-and-hour law.
  - Holiday hours count toward pay but never toward the 40-hour
    threshold. Other fixed-hours days (office-closed) count as regular.
  - Period total = sum over both weeks of holiday + min(regular, 40);
    overtime is reported separately, not folded into the period total.

SALARY MODE:
  Overtime is not tracked; the period total is the raw sum of both weeks.

SEE ALSO:
  - day.go: How each DayRecord.Total is derived
  - calendar.go: Which 14 days form a period
*/
package timesheet

import "github.com/shopspring/decimal"

// DaysPerWeek is the length of each of the two weeks in a pay period.
const DaysPerWeek = 7

// regularHoursPerWeek is the weekly overtime threshold.
var regularHoursPerWeek = decimal.New(40, 0)

// Week is the 7 day records of one week, index = day offset from the
// week's start date.
type Week [DaysPerWeek]DayRecord

// Total sums the week's derived day totals, treating unset as zero.
func (w *Week) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range w {
		total = total.Add(w[i].Total)
	}
	return total
}

// HolidayTotal sums the totals of the week's holiday days only.
func (w *Week) HolidayTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range w {
		if w[i].DayType == DayHoliday {
			total = total.Add(w[i].Total)
		}
	}
	return total
}

// Timesheet is one employee's record for a 14-day pay period. Its identity
// key for persistence is PayPeriod; the literal label "Template" names the
// reusable blank-fill source.
type Timesheet struct {
	EmployeeName  string          `json:"employeeName"`
	PayPeriod     string          `json:"payPeriod"`
	Week1         Week            `json:"week1"`
	Week2         Week            `json:"week2"`
	PersonalLeave decimal.Decimal `json:"personalLeave"`
}

// Day returns the record at pay-period day index 0-13.
func (ts *Timesheet) Day(index int) *DayRecord {
	if index < DaysPerWeek {
		return &ts.Week1[index]
	}
	return &ts.Week2[index-DaysPerWeek]
}

// Totals is the pay-period aggregation result.
type Totals struct {
	Week1Total  decimal.Decimal `json:"week1Total"`
	Week2Total  decimal.Decimal `json:"week2Total"`
	PeriodTotal decimal.Decimal `json:"periodTotal"`
	Overtime    decimal.Decimal `json:"overtime"`
}

// ComputeTotals aggregates both weeks under the overtime policy.
// In salary mode the period total is the raw sum and overtime is zero.
func ComputeTotals(ts *Timesheet, salaryMode bool) Totals {
	week1 := ts.Week1.Total()
	week2 := ts.Week2.Total()

	if salaryMode {
		return Totals{
			Week1Total:  week1,
			Week2Total:  week2,
			PeriodTotal: week1.Add(week2),
			Overtime:    decimal.Zero,
		}
	}

	holiday1 := ts.Week1.HolidayTotal()
	holiday2 := ts.Week2.HolidayTotal()
	regular1 := week1.Sub(holiday1)
	regular2 := week2.Sub(holiday2)

	overtime := weekOvertime(regular1).Add(weekOvertime(regular2))
	periodTotal := holiday1.Add(capped(regular1)).
		Add(holiday2).Add(capped(regular2))

	return Totals{
		Week1Total:  week1,
		Week2Total:  week2,
		PeriodTotal: periodTotal,
		Overtime:    overtime,
	}
}

func weekOvertime(regular decimal.Decimal) decimal.Decimal {
	ot := regular.Sub(regularHoursPerWeek)
	if ot.IsNegative() {
		return decimal.Zero
	}
	return ot
}

func capped(regular decimal.Decimal) decimal.Decimal {
	if regular.GreaterThan(regularHoursPerWeek) {
		return regularHoursPerWeek
	}
	return regular
}

// IsBlank reports whether the timesheet carries no entered data: no day
// has an interval endpoint set, every day type is regular, and personal
// leave is not positive. A blank sheet is eligible for template fill.
func (ts *Timesheet) IsBlank() bool {
	for i := 0; i < 2*DaysPerWeek; i++ {
		day := ts.Day(i)
		if day.HasTimeData() {
			return false
		}
		if day.DayType != "" && day.DayType != DayRegular {
			return false
		}
	}
	return !ts.PersonalLeave.IsPositive()
}

// Clone returns a deep copy, so a save snapshot is isolated from
// subsequent edits.
func (ts *Timesheet) Clone() *Timesheet {
	dup := *ts
	for i := 0; i < 2*DaysPerWeek; i++ {
		src := ts.Day(i)
		dst := dup.Day(i)
		dst.Intervals = append([]TimeInterval(nil), src.Intervals...)
		dst.ManualEntries = append([]ManualHoursEntry(nil), src.ManualEntries...)
	}
	return &dup
}

// NewBlankTimesheet builds an empty sheet for a period, with each day
// carrying one empty interval and the regular day type.
func NewBlankTimesheet(employeeName, payPeriodLabel string) *Timesheet {
	ts := &Timesheet{
		EmployeeName: employeeName,
		PayPeriod:    payPeriodLabel,
	}
	for i := 0; i < 2*DaysPerWeek; i++ {
		day := ts.Day(i)
		day.DayType = DayRegular
		day.Intervals = []TimeInterval{{}}
	}
	return ts
}
