/*
Package timesheet provides the core time-accounting engine.

PURPOSE:
  This package contains the rules that turn raw clock punches and
  day-type classifications into validated daily, weekly, and pay-period
  totals: duration computation, conflict detection, day aggregation,
  overtime, and the 14-day pay-period calendar.

KEY CONCEPTS IN THIS FILE (interval.go):
  - TimeOfDay: A wall-clock time with minute resolution (no date, no zone)
  - TimeInterval: A single start/stop punch; either endpoint may be empty
  - Duration: Quarter-hour quantized elapsed time, overnight-aware

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for hour totals, never float64
  2. Partial state is valid: A punch with only a start time is mid-entry
     or mid-clock-in, not an error
  3. Empty serializes as "": the wire format distinguishes "no data"
     from "zero hours recorded"

USAGE:
  start, _ := timesheet.ParseTimeOfDay("09:00")
  stop, _ := timesheet.ParseTimeOfDay("17:00")
  iv := timesheet.TimeInterval{Start: start, Stop: stop}
  hours := iv.Duration() // 8.00

SEE ALSO:
  - parse.go: Tolerant free-text range parsing
  - overlap.go: Same-day conflict detection
  - day.go: Day-level aggregation
*/
package timesheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// =============================================================================
// TIME OF DAY - Wall-clock time with minute resolution
// =============================================================================

// TimeOfDay is a wall-clock time ("HH:MM") with minute resolution.
// The zero value is "unset", which serializes as the empty string.
type TimeOfDay struct {
	minutes int
	set     bool
}

// NewTimeOfDay builds a set TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day out of range: %02d:%02d", hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute, set: true}, nil
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string. The empty string parses
// to the unset value; this is the persisted representation of a blank field.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute)
}

// MustTimeOfDay is ParseTimeOfDay for constants and tests; it panics on error.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// IsSet reports whether the field holds a time at all.
func (t TimeOfDay) IsSet() bool { return t.set }

// Minutes returns minutes since midnight. Zero when unset.
func (t TimeOfDay) Minutes() int { return t.minutes }

// Hour returns the 24-hour clock hour.
func (t TimeOfDay) Hour() int { return t.minutes / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// String renders the 24-hour "HH:MM" wire form, or "" when unset.
func (t TimeOfDay) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12Hour renders the display form used in day summaries, e.g. "5:30PM".
func (t TimeOfDay) Format12Hour() string {
	if !t.set {
		return ""
	}
	hour := t.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour12, t.Minute(), period)
}

// MarshalJSON writes "HH:MM", or "" when unset. Absent times serialize as
// the empty string rather than null so the persisted record keeps the
// distinction between "no data entered" and "zero".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// =============================================================================
// TIME INTERVAL - A single start/stop punch
// =============================================================================

// TimeInterval is one start/stop punch. Both endpoints are independently
// optional: a start without a stop is an open punch (clocked in).
type TimeInterval struct {
	Start TimeOfDay `json:"start"`
	Stop  TimeOfDay `json:"stop"`
}

// IsComplete reports whether both endpoints are present.
func (iv TimeInterval) IsComplete() bool { return iv.Start.IsSet() && iv.Stop.IsSet() }

// IsEmpty reports whether neither endpoint is present.
func (iv TimeInterval) IsEmpty() bool { return !iv.Start.IsSet() && !iv.Stop.IsSet() }

// IsOpen reports whether the punch has a start but no stop yet.
func (iv TimeInterval) IsOpen() bool { return iv.Start.IsSet() && !iv.Stop.IsSet() }

// Duration returns the elapsed hours between start and stop, quantized to
// the nearest quarter hour. A stop numerically earlier than the start is an
// overnight wrap and gains 24h before rounding. Incomplete intervals
// contribute zero. A positive span shorter than half a quarter still counts
// as 0.25 rather than rounding away to nothing.
func (iv TimeInterval) Duration() decimal.Decimal {
	if !iv.IsComplete() {
		return decimal.Zero
	}
	diff := iv.Stop.Minutes() - iv.Start.Minutes()
	if diff < 0 {
		diff += minutesPerDay
	}
	return quantizeQuarterHours(diff)
}

// quantizeQuarterHours rounds a positive minute count to the nearest
// quarter hour (round half up), with a floor of one quarter for any
// non-zero span.
func quantizeQuarterHours(minutes int) decimal.Decimal {
	quarters := (minutes*2 + 15) / 30
	if quarters == 0 && minutes > 0 {
		quarters = 1
	}
	return decimal.New(int64(quarters), 0).Div(decimal.New(4, 0))
}

// FormatRange renders the summary form, e.g. "9:00AM - 5:30PM".
// Only complete intervals have a range representation.
func (iv TimeInterval) FormatRange() string {
	if !iv.IsComplete() {
		return ""
	}
	return iv.Start.Format12Hour() + " - " + iv.Stop.Format12Hour()
}
