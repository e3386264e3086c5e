/*
clock.go - Clock in/out state machine

PURPOSE:
  Drives the ClockedOut -> ClockedIn -> ClockedOut cycle against today's
  day record. "Clocked in" holds iff some interval for today has a start
  and no stop. Punch times are rounded half-up to the nearest 15 minutes;
  this rounding is independent of the quarter-hour duration quantization
  in interval.go.

GATING:
  Both operations require the selected period to be the current one and
  today to fall inside it. Failed operations mutate nothing.
*/
package timesheet

import "time"

// RoundToQuarterHour rounds a wall-clock time half-up on the minutes
// component to the nearest multiple of 15, rolling into the next hour
// (or day) when minutes round to 60.
func RoundToQuarterHour(t time.Time) time.Time {
	quarters := (t.Minute()*2 + 15) / 30
	base := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	return base.Add(time.Duration(quarters) * 15 * time.Minute)
}

// IsClockedIn reports whether the day has an open punch.
func IsClockedIn(day *DayRecord) bool {
	for _, iv := range day.Intervals {
		if iv.IsOpen() {
			return true
		}
	}
	return false
}

// ClockIn opens a punch on today's record with a start time of now
// rounded to the nearest 15 minutes. It fills the first fully-empty
// interval, appending one only when none exists.
func ClockIn(ts *Timesheet, period PayPeriod, now time.Time) error {
	day, err := todaysRecord(ts, period, now)
	if err != nil {
		return err
	}
	if IsClockedIn(day) {
		return ErrAlreadyClockedIn
	}

	start := timeOfDayAt(RoundToQuarterHour(now))

	for i := range day.Intervals {
		if day.Intervals[i].IsEmpty() {
			day.Intervals[i].Start = start
			day.Recompute()
			return nil
		}
	}
	day.Intervals = append(day.Intervals, TimeInterval{Start: start})
	day.Recompute()
	return nil
}

// ClockOut closes today's open punch with a stop time of now rounded to
// the nearest 15 minutes.
func ClockOut(ts *Timesheet, period PayPeriod, now time.Time) error {
	day, err := todaysRecord(ts, period, now)
	if err != nil {
		return err
	}

	for i := range day.Intervals {
		if day.Intervals[i].IsOpen() {
			day.Intervals[i].Stop = timeOfDayAt(RoundToQuarterHour(now))
			day.Recompute()
			return nil
		}
	}
	return ErrNotClockedIn
}

func todaysRecord(ts *Timesheet, period PayPeriod, now time.Time) (*DayRecord, error) {
	if !period.IsCurrent {
		return nil, ErrNotCurrentPeriod
	}
	idx, ok := period.DayIndex(now)
	if !ok {
		return nil, ErrNotInPeriod
	}
	return ts.Day(idx), nil
}

// timeOfDayAt extracts the wall-clock time of a rounded timestamp.
// A midnight rollover (24:00) lands on 00:00.
func timeOfDayAt(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute())
	return tod
}
