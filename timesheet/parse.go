/*
parse.go - Tolerant parsing of free-text time ranges

PURPOSE:
  Timesheets imported from older records carry ranges typed by hand, like
  "9:00 AM - 5:30 PM" or "10pm-6am". This parser accepts that mess and
  returns a tagged result, so callers never have to guess whether a zero
  duration means "midnight to midnight" or "could not parse".

TOLERANCE RULES:
  - AM/PM inferred from substring presence, case-insensitive
  - Everything that is not a digit or a colon is stripped before reading
  - Missing minutes default to :00
  - No separator, or more than one separator, is unparseable

SEE ALSO:
  - interval.go: Duration rules applied to the parsed interval
*/
package timesheet

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRange parses a free-text "h:mm AM/PM - h:mm AM/PM" range.
// The boolean is false when the text is unparseable.
func ParseRange(s string) (TimeInterval, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeInterval{}, false
	}

	start, ok := parseClockTime(parts[0])
	if !ok {
		return TimeInterval{}, false
	}
	stop, ok := parseClockTime(parts[1])
	if !ok {
		return TimeInterval{}, false
	}

	return TimeInterval{Start: start, Stop: stop}, true
}

// HoursFromRange returns the quarter-hour quantized duration of a free-text
// range, or zero when the text is unparseable. The boolean reports whether
// the range parsed, so callers can log the failure for diagnostics.
func HoursFromRange(s string) (decimal.Decimal, bool) {
	iv, ok := ParseRange(s)
	if !ok {
		return decimal.Zero, false
	}
	return iv.Duration(), true
}

// parseClockTime reads one side of a range, e.g. " 5:30 PM".
func parseClockTime(s string) (TimeOfDay, bool) {
	lower := strings.ToLower(s)
	isPM := strings.Contains(lower, "pm")
	isAM := strings.Contains(lower, "am")

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ':' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return TimeOfDay{}, false
	}

	fields := strings.SplitN(cleaned, ":", 2)
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return TimeOfDay{}, false
	}

	minute := 0
	if len(fields) == 2 && fields[1] != "" {
		// Trailing garbage after the minutes (e.g. a second colon) fails here.
		minute, err = strconv.Atoi(strings.SplitN(fields[1], ":", 2)[0])
		if err != nil {
			return TimeOfDay{}, false
		}
	}

	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}

	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		return TimeOfDay{}, false
	}
	return t, true
}
