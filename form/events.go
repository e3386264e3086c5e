/*
events.go - Edit events applied to the form state

PURPOSE:
  Every user edit is expressed as a data value handed to
  Controller.Apply, instead of scattered direct mutation of the sheet.
  Each event knows how to apply itself and which pay-period day (0-13)
  it touches, so the controller can recompute exactly that day.

  Events with out-of-range day or slot indexes apply as no-ops; they can
  only come from a stale view and are not worth failing an edit over.
*/
package form

import (
	"github.com/shopspring/decimal"
	"github.com/warp/timeclock-engine/timesheet"
)

// Event is one edit to the timesheet form state.
type Event interface {
	apply(ts *timesheet.Timesheet)
	// dayIndex reports which pay-period day the event touches, if any.
	dayIndex() (int, bool)
}

func validDay(day int) bool { return day >= 0 && day < 2*timesheet.DaysPerWeek }

// SetStart sets the start endpoint of one interval slot.
type SetStart struct {
	Day  int
	Slot int
	Time timesheet.TimeOfDay
}

func (e SetStart) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	if e.Slot >= 0 && e.Slot < len(d.Intervals) {
		d.Intervals[e.Slot].Start = e.Time
	}
}

func (e SetStart) dayIndex() (int, bool) { return e.Day, true }

// SetStop sets the stop endpoint of one interval slot.
type SetStop struct {
	Day  int
	Slot int
	Time timesheet.TimeOfDay
}

func (e SetStop) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	if e.Slot >= 0 && e.Slot < len(d.Intervals) {
		d.Intervals[e.Slot].Stop = e.Time
	}
}

func (e SetStop) dayIndex() (int, bool) { return e.Day, true }

// AddInterval appends an empty interval row to a day.
type AddInterval struct{ Day int }

func (e AddInterval) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	d.Intervals = append(d.Intervals, timesheet.TimeInterval{})
}

func (e AddInterval) dayIndex() (int, bool) { return e.Day, true }

// RemoveInterval deletes one interval row.
type RemoveInterval struct {
	Day  int
	Slot int
}

func (e RemoveInterval) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	if e.Slot >= 0 && e.Slot < len(d.Intervals) {
		d.Intervals = append(d.Intervals[:e.Slot], d.Intervals[e.Slot+1:]...)
	}
}

func (e RemoveInterval) dayIndex() (int, bool) { return e.Day, true }

// AddManualEntry appends an empty manual hours entry to a day.
type AddManualEntry struct{ Day int }

func (e AddManualEntry) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	d.ManualEntries = append(d.ManualEntries, timesheet.ManualHoursEntry{})
}

func (e AddManualEntry) dayIndex() (int, bool) { return e.Day, true }

// SetManualEntry replaces the amount and description of one entry slot.
type SetManualEntry struct {
	Day         int
	Slot        int
	Amount      decimal.Decimal
	Description string
}

func (e SetManualEntry) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	if e.Slot >= 0 && e.Slot < len(d.ManualEntries) {
		d.ManualEntries[e.Slot] = timesheet.ManualHoursEntry{Amount: e.Amount, Description: e.Description}
	}
}

func (e SetManualEntry) dayIndex() (int, bool) { return e.Day, true }

// RemoveManualEntry deletes one manual hours entry.
type RemoveManualEntry struct {
	Day  int
	Slot int
}

func (e RemoveManualEntry) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) {
		return
	}
	d := ts.Day(e.Day)
	if e.Slot >= 0 && e.Slot < len(d.ManualEntries) {
		d.ManualEntries = append(d.ManualEntries[:e.Slot], d.ManualEntries[e.Slot+1:]...)
	}
}

func (e RemoveManualEntry) dayIndex() (int, bool) { return e.Day, true }

// SetDayType reclassifies a day. Invalid tags apply as no-ops.
type SetDayType struct {
	Day  int
	Type timesheet.DayType
}

func (e SetDayType) apply(ts *timesheet.Timesheet) {
	if !validDay(e.Day) || !e.Type.Valid() {
		return
	}
	ts.Day(e.Day).DayType = e.Type
}

func (e SetDayType) dayIndex() (int, bool) { return e.Day, true }

// SetPersonalLeave sets the pay period's personal leave hours.
type SetPersonalLeave struct{ Amount decimal.Decimal }

func (e SetPersonalLeave) apply(ts *timesheet.Timesheet) {
	if e.Amount.IsNegative() {
		return
	}
	ts.PersonalLeave = e.Amount
}

func (e SetPersonalLeave) dayIndex() (int, bool) { return 0, false }

// SetEmployeeName sets the employee name on the sheet.
type SetEmployeeName struct{ Name string }

func (e SetEmployeeName) apply(ts *timesheet.Timesheet) { ts.EmployeeName = e.Name }

func (e SetEmployeeName) dayIndex() (int, bool) { return 0, false }
