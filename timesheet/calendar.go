/*
calendar.go - The 14-day pay-period calendar

PURPOSE:
  Computes candidate pay periods relative to a fixed epoch and maps dates
  to day indexes within a period. Periods are derived each session from
  the cycle rule; they are never persisted as entities.

CYCLE RULE:
  Periods are back-to-back 14-day windows (Sunday through the second
  Saturday) anchored at the Nov 2, 2025 period start. The period
  containing a date starts at epoch + floor((date-epoch)/14)*14 days.

CANDIDATES:
  Six dated periods are offered around the reference date (three past,
  the current one, two future), plus the synthetic Template pseudo-period
  that carries no dates and names the reusable blank-fill record.
*/
package timesheet

import (
	"fmt"
	"time"
)

// PeriodDays is the length of a pay period in days.
const PeriodDays = 14

// TemplateLabel is the reserved persistence label of the reusable
// template timesheet.
const TemplateLabel = "Template"

// payPeriodEpoch anchors the 14-day cycle: the Nov 2, 2025 period start.
var payPeriodEpoch = time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)

// PayPeriod is a derived 14-day accounting window.
type PayPeriod struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"` // Start + 13 days
	Label      string    `json:"label"`
	IsCurrent  bool      `json:"isCurrent"`
	IsTemplate bool      `json:"isTemplate,omitempty"`
}

// TemplatePeriod returns the synthetic Template pseudo-period.
func TemplatePeriod() PayPeriod {
	return PayPeriod{Label: TemplateLabel, IsTemplate: true}
}

// PeriodContaining returns the pay period holding the given date.
func PeriodContaining(date time.Time) PayPeriod {
	days := daysBetween(payPeriodEpoch, date)
	start := payPeriodEpoch.AddDate(0, 0, floorDiv(days, PeriodDays)*PeriodDays)
	return newPeriod(start, false)
}

// CurrentPeriod returns the pay period containing now, tagged IsCurrent
// so clock-in/out is permitted.
func CurrentPeriod(now time.Time) PayPeriod {
	p := PeriodContaining(now)
	p.IsCurrent = true
	return p
}

// CandidatePeriods returns the Template pseudo-period followed by six
// dated periods around the reference date: three past, the current one
// (tagged IsCurrent), and two future. Adjacent periods are contiguous.
func CandidatePeriods(reference time.Time) []PayPeriod {
	current := PeriodContaining(reference)
	periods := make([]PayPeriod, 0, 7)
	periods = append(periods, TemplatePeriod())
	for i := -3; i <= 2; i++ {
		p := newPeriod(current.Start.AddDate(0, 0, i*PeriodDays), i == 0)
		periods = append(periods, p)
	}
	return periods
}

// DayIndex maps a date to its 0-13 offset within the period. ok is false
// when the date falls outside the period (or the period is the Template),
// which gates clock-in/out eligibility.
func (p PayPeriod) DayIndex(date time.Time) (int, bool) {
	if p.IsTemplate {
		return 0, false
	}
	idx := daysBetween(p.Start, date)
	if idx < 0 || idx >= PeriodDays {
		return 0, false
	}
	return idx, true
}

// DateOf returns the calendar date of day index 0-13 within the period.
func (p PayPeriod) DateOf(index int) time.Time {
	return p.Start.AddDate(0, 0, index)
}

// ParsePeriodLabel recovers the period from a persisted label like
// "11/2/2025 - 11/15/2025". The Template label parses to the Template
// pseudo-period. ok is false for labels that don't name a cycle-aligned
// period start.
func ParsePeriodLabel(label string) (PayPeriod, bool) {
	if label == TemplateLabel {
		return TemplatePeriod(), true
	}
	var m1, d1, y1, m2, d2, y2 int
	n, err := fmt.Sscanf(label, "%d/%d/%d - %d/%d/%d", &m1, &d1, &y1, &m2, &d2, &y2)
	if err != nil || n != 6 {
		return PayPeriod{}, false
	}
	start := time.Date(y1, time.Month(m1), d1, 0, 0, 0, 0, time.UTC)
	if daysBetween(payPeriodEpoch, start)%PeriodDays != 0 {
		return PayPeriod{}, false
	}
	p := newPeriod(start, false)
	if p.Label != label {
		return PayPeriod{}, false
	}
	return p, true
}

func newPeriod(start time.Time, current bool) PayPeriod {
	end := start.AddDate(0, 0, PeriodDays-1)
	return PayPeriod{
		Start:     start,
		End:       end,
		Label:     formatPeriodDate(start) + " - " + formatPeriodDate(end),
		IsCurrent: current,
	}
}

// formatPeriodDate renders the label form, e.g. "11/2/2025".
func formatPeriodDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatDayDate renders the per-day date field, e.g. "11/02/2025 Sun".
func FormatDayDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d %s", int(t.Month()), t.Day(), t.Year(), t.Format("Mon"))
}

// daysBetween counts whole days from a to b after truncating both to
// midnight UTC.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// floorDiv divides rounding toward negative infinity, so dates before
// the epoch land in the right period.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
