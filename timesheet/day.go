/*
day.go - Day types and day-level aggregation

PURPOSE:
  Classifies a calendar day and computes its total hours and a
  human-readable summary from punches and manual hour entries.

KEY CONCEPTS:
  - DayType: Classification governing fixed-hours overrides. The string
    tags are a wire-format contract; persisted records round-trip them.
  - ManualHoursEntry: Direct hours ("2.5h on-call support") with no punch.
  - DayRecord: One day of a week; its Total is derived, never authoritative.

FIXED-HOURS OVERRIDES:
  holiday        8.00  summary "Holiday"
  called-off     0.00  summary "Called off"
  vacation       0.00  summary "Vacation/Time Off"
  office-closed  8.00  punches still shown, annotated "*Office closed early"
  on-call        computed, annotated "On Call"
  regular        computed

SEE ALSO:
  - period.go: Week and pay-period aggregation over day results
  - overlap.go: Advisory conflict check run after each recompute
*/
package timesheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DAY TYPE
// =============================================================================

// DayType classifies a day. The values are serialized string tags.
type DayType string

const (
	DayRegular      DayType = "regular"
	DayOnCall       DayType = "on-call"
	DayHoliday      DayType = "holiday"
	DayCalledOff    DayType = "called-off"
	DayOfficeClosed DayType = "office-closed"
	DayVacation     DayType = "vacation"
)

// Valid reports whether the tag is one of the six known day types.
func (d DayType) Valid() bool {
	switch d {
	case DayRegular, DayOnCall, DayHoliday, DayCalledOff, DayOfficeClosed, DayVacation:
		return true
	}
	return false
}

// FixedHours returns the fixed-hours override for the day type, when one
// applies. Regular and on-call days compute their total from entries.
func (d DayType) FixedHours() (decimal.Decimal, bool) {
	switch d {
	case DayHoliday, DayOfficeClosed:
		return decimal.New(8, 0), true
	case DayCalledOff, DayVacation:
		return decimal.Zero, true
	}
	return decimal.Zero, false
}

// =============================================================================
// DAY RECORD
// =============================================================================

// ManualHoursEntry contributes hours directly to a day's total,
// independent of any punch.
type ManualHoursEntry struct {
	Amount      decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

// Label renders the entry for summaries, e.g. "2.5h pager duty" or
// "2.5h". Non-positive amounts render as "".
func (e ManualHoursEntry) Label() string {
	if !e.Amount.IsPositive() {
		return ""
	}
	if e.Description != "" {
		return e.Amount.String() + "h " + e.Description
	}
	return e.Amount.String() + "h"
}

// DayRecord is one day of a week. Total is derived from the other fields
// and must be recomputed whenever any of them change; only the fixed-hours
// day types set it directly.
type DayRecord struct {
	Date          string             `json:"date"`
	DayType       DayType            `json:"dayType"`
	Intervals     []TimeInterval     `json:"timePairs"`
	ManualEntries []ManualHoursEntry `json:"hoursEntries,omitempty"`
	Total         decimal.Decimal    `json:"total"`
}

// HasTimeData reports whether any interval endpoint is set. Used by
// blank-timesheet detection, which deliberately ignores totals.
func (d DayRecord) HasTimeData() bool {
	for _, iv := range d.Intervals {
		if iv.Start.IsSet() || iv.Stop.IsSet() {
			return true
		}
	}
	return false
}

// Recompute refreshes the derived Total from the day's current inputs
// and returns the full result.
func (d *DayRecord) Recompute() DayResult {
	res := ComputeDay(d.DayType, d.Intervals, d.ManualEntries)
	d.Total = res.Total
	return res
}

// =============================================================================
// DAY AGGREGATION
// =============================================================================

// DayResult is the outcome of aggregating one day.
type DayResult struct {
	Total decimal.Decimal
	// HasInput distinguishes "no data entered" (false) from "zero hours
	// recorded". A regular day with no punches reports an unset total.
	HasInput bool
	Summary  string
}

const (
	summaryHoliday   = "Holiday"
	summaryCalledOff = "Called off"
	summaryVacation  = "Vacation/Time Off"
	noteOfficeClosed = "*Office closed early"
	noteOnCall       = "On Call"
)

// ComputeDay aggregates a day's punches and manual entries under its
// day-type rules, producing the total hours and summary text. The caller
// should run the overlap check afterwards for UI feedback; conflicts do
// not change the total.
func ComputeDay(dayType DayType, intervals []TimeInterval, entries []ManualHoursEntry) DayResult {
	switch dayType {
	case DayHoliday:
		return DayResult{Total: decimal.New(8, 0), HasInput: true, Summary: summaryHoliday}
	case DayCalledOff:
		return DayResult{Total: decimal.Zero, HasInput: true, Summary: summaryCalledOff}
	case DayVacation:
		return DayResult{Total: decimal.Zero, HasInput: true, Summary: summaryVacation}
	case DayOfficeClosed:
		// Fixed 8 hours regardless of punches; punches still display.
		return DayResult{
			Total:    decimal.New(8, 0),
			HasInput: true,
			Summary:  annotate(formatRanges(intervals), noteOfficeClosed),
		}
	case DayOnCall:
		total, hasInput := sumEntries(intervals, entries)
		return DayResult{
			Total:    total,
			HasInput: hasInput,
			Summary:  annotate(joinParts(formatRanges(intervals), formatManualEntries(entries)), noteOnCall),
		}
	default: // regular
		total, hasInput := sumEntries(intervals, entries)
		return DayResult{
			Total:    total,
			HasInput: hasInput,
			Summary:  joinParts(formatRanges(intervals), formatManualEntries(entries)),
		}
	}
}

func sumEntries(intervals []TimeInterval, entries []ManualHoursEntry) (decimal.Decimal, bool) {
	total := decimal.Zero
	hasInput := false
	for _, iv := range intervals {
		if iv.IsComplete() {
			total = total.Add(iv.Duration())
			hasInput = true
		}
	}
	for _, e := range entries {
		if e.Amount.IsPositive() {
			total = total.Add(e.Amount)
			hasInput = true
		}
	}
	return total, hasInput
}

func formatRanges(intervals []TimeInterval) string {
	var parts []string
	for _, iv := range intervals {
		if r := iv.FormatRange(); r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, " ")
}

func formatManualEntries(entries []ManualHoursEntry) string {
	var parts []string
	for _, e := range entries {
		if label := e.Label(); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " ")
}

func joinParts(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

// annotate appends the day-type note on its own line when there is
// summary text, or returns just the note otherwise.
func annotate(text, note string) string {
	if text == "" {
		return note
	}
	return text + "\n" + note
}
