/*
errors.go - Sentinel errors for the time-accounting engine

PURPOSE:
  All engine error values in one place for consistency. Callers match
  them with errors.Is and surface user-facing notices; none of them roll
  back in-memory state.
*/
package timesheet

import "errors"

var (
	// ErrNotInPeriod is returned when today falls outside the selected
	// pay period, so clock operations cannot target a day.
	ErrNotInPeriod = errors.New("today is not within the selected pay period")

	// ErrNotCurrentPeriod is returned when clocking against a period
	// other than the current one.
	ErrNotCurrentPeriod = errors.New("not the current pay period")

	// ErrAlreadyClockedIn is returned by a clock-in while an open punch
	// exists for today.
	ErrAlreadyClockedIn = errors.New("already clocked in")

	// ErrNotClockedIn is returned by a clock-out with no open punch.
	ErrNotClockedIn = errors.New("not clocked in")

	// ErrDayIndexRange is returned for day indexes outside 0-13.
	ErrDayIndexRange = errors.New("day index out of range")
)
