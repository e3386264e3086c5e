/*
controller.go - Owner of the in-memory timesheet state

PURPOSE:
  A single controller owns the timesheet for the selected pay period.
  Edits arrive as events (events.go); the controller applies them,
  recomputes the touched day and the period totals, refreshes the
  advisory conflict flags, and schedules a debounced save. Rendering
  layers read the state through accessors and never write it back.

PERIOD SELECTION:
  Selecting a period loads its saved record when one exists with data.
  A missing or blank record is instead pre-filled from the Template
  record when that setting is enabled (the Template itself never
  auto-fills). Period dates always come from the calendar, not from the
  loaded record.

SAVE SEMANTICS:
  Saves run against a snapshot, so edits made during the quiet period
  never leak into an in-flight save. Save failures are logged and the
  in-memory state is kept; the user can keep editing and retry.

SEE ALSO:
  - debounce.go: The cancellable scheduled save
  - timesheet: All aggregation rules
*/
package form

import (
	"context"
	"log"
	"time"

	"github.com/warp/timeclock-engine/timesheet"
)

// SaveDelay is the auto-save quiet period.
const SaveDelay = 1 * time.Second

// Store persists timesheets keyed by pay-period label.
// timesheet.TemplateLabel is a reserved key.
type Store interface {
	SaveTimesheet(ctx context.Context, label string, ts *timesheet.Timesheet) error
	LoadTimesheet(ctx context.Context, label string) (*timesheet.Timesheet, bool, error)
}

// Settings exposes the user preferences the controller reads on period
// selection and at startup.
type Settings interface {
	EmployeeName() string
	AutoFillFromTemplate() bool
	SalaryMode() bool
	ShowAddHoursButton() bool
}

// Controller owns the form state for one selected pay period.
type Controller struct {
	store    Store
	settings Settings
	saver    *Debouncer
	logf     func(format string, args ...any)

	period    timesheet.PayPeriod
	sheet     *timesheet.Timesheet
	totals    timesheet.Totals
	conflicts [2 * timesheet.DaysPerWeek]bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithSaveDelay overrides the auto-save quiet period.
func WithSaveDelay(d time.Duration) Option {
	return func(c *Controller) { c.saver = NewDebouncer(d) }
}

// WithLogger overrides the diagnostic logger.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(c *Controller) { c.logf = logf }
}

// NewController creates a controller with an empty template-less sheet;
// call SelectPeriod before applying edits.
func NewController(store Store, settings Settings, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		settings: settings,
		saver:    NewDebouncer(SaveDelay),
		logf:     log.Printf,
		sheet:    timesheet.NewBlankTimesheet(settings.EmployeeName(), ""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// PERIOD SELECTION
// =============================================================================

// SelectPeriod switches the controller to a pay period, loading its saved
// record or pre-filling from the template per the settings.
func (c *Controller) SelectPeriod(ctx context.Context, p timesheet.PayPeriod) error {
	saved, found, err := c.store.LoadTimesheet(ctx, p.Label)
	if err != nil {
		return err
	}

	c.period = p
	switch {
	case found && !saved.IsBlank():
		c.sheet = saved
	default:
		c.sheet = c.templateOrBlank(ctx, p)
	}

	c.sheet.PayPeriod = p.Label
	if c.sheet.EmployeeName == "" {
		c.sheet.EmployeeName = c.settings.EmployeeName()
	}
	c.fillDates()
	c.recomputeAll()
	return nil
}

// templateOrBlank returns a copy of the Template record when auto-fill is
// enabled and one exists, otherwise a fresh blank sheet. The Template
// itself never auto-fills.
func (c *Controller) templateOrBlank(ctx context.Context, p timesheet.PayPeriod) *timesheet.Timesheet {
	if p.IsTemplate || !c.settings.AutoFillFromTemplate() {
		return timesheet.NewBlankTimesheet(c.settings.EmployeeName(), p.Label)
	}
	tmpl, found, err := c.store.LoadTimesheet(ctx, timesheet.TemplateLabel)
	if err != nil {
		c.logf("template load failed: %v", err)
		return timesheet.NewBlankTimesheet(c.settings.EmployeeName(), p.Label)
	}
	if !found {
		return timesheet.NewBlankTimesheet(c.settings.EmployeeName(), p.Label)
	}
	return tmpl
}

// fillDates projects the period's calendar dates onto the day records.
// The Template carries no dates.
func (c *Controller) fillDates() {
	for i := 0; i < 2*timesheet.DaysPerWeek; i++ {
		if c.period.IsTemplate {
			c.sheet.Day(i).Date = ""
			continue
		}
		c.sheet.Day(i).Date = timesheet.FormatDayDate(c.period.DateOf(i))
	}
}

// =============================================================================
// EDITS
// =============================================================================

// Apply applies one edit event, recomputes derived state, and schedules
// a debounced save.
func (c *Controller) Apply(ev Event) {
	ev.apply(c.sheet)
	if day, ok := ev.dayIndex(); ok && validDay(day) {
		c.recomputeDay(day)
	}
	c.totals = timesheet.ComputeTotals(c.sheet, c.settings.SalaryMode())
	c.scheduleSave()
}

// ClockIn opens a punch for now against the selected period.
func (c *Controller) ClockIn(now time.Time) error {
	if err := timesheet.ClockIn(c.sheet, c.period, now); err != nil {
		return err
	}
	c.afterClock(now)
	return nil
}

// ClockOut closes the open punch for now against the selected period.
func (c *Controller) ClockOut(now time.Time) error {
	if err := timesheet.ClockOut(c.sheet, c.period, now); err != nil {
		return err
	}
	c.afterClock(now)
	return nil
}

func (c *Controller) afterClock(now time.Time) {
	if idx, ok := c.period.DayIndex(now); ok {
		c.recomputeDay(idx)
	}
	c.totals = timesheet.ComputeTotals(c.sheet, c.settings.SalaryMode())
	c.scheduleSave()
}

func (c *Controller) recomputeDay(day int) {
	d := c.sheet.Day(day)
	d.Recompute()
	// Advisory only: a conflict highlights the day, it never blocks
	// totals or saving.
	c.conflicts[day] = timesheet.HasConflict(d.Intervals)
}

func (c *Controller) recomputeAll() {
	for i := 0; i < 2*timesheet.DaysPerWeek; i++ {
		c.recomputeDay(i)
	}
	c.totals = timesheet.ComputeTotals(c.sheet, c.settings.SalaryMode())
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (c *Controller) scheduleSave() {
	label := c.sheet.PayPeriod
	if label == "" {
		return
	}
	snapshot := c.sheet.Clone()
	c.saver.Schedule(func() {
		if err := c.store.SaveTimesheet(context.Background(), label, snapshot); err != nil {
			c.logf("auto-save of %q failed: %v", label, err)
		}
	})
}

// SaveNow cancels any pending auto-save and saves synchronously.
func (c *Controller) SaveNow(ctx context.Context) error {
	c.saver.Stop()
	if c.sheet.PayPeriod == "" {
		return nil
	}
	return c.store.SaveTimesheet(ctx, c.sheet.PayPeriod, c.sheet.Clone())
}

// Flush runs any pending auto-save immediately. Call on shutdown.
func (c *Controller) Flush() { c.saver.Flush() }

// =============================================================================
// READ ACCESS
// =============================================================================

// Timesheet returns the current sheet. Callers must treat it as
// read-only; all writes go through Apply.
func (c *Controller) Timesheet() *timesheet.Timesheet { return c.sheet }

// Period returns the selected pay period.
func (c *Controller) Period() timesheet.PayPeriod { return c.period }

// Totals returns the most recently computed period totals.
func (c *Controller) Totals() timesheet.Totals { return c.totals }

// HasConflict reports the advisory overlap flag for a pay-period day.
func (c *Controller) HasConflict(day int) bool {
	if !validDay(day) {
		return false
	}
	return c.conflicts[day]
}

// DaySummary renders the human-readable summary for a pay-period day.
func (c *Controller) DaySummary(day int) string {
	if !validDay(day) {
		return ""
	}
	d := c.sheet.Day(day)
	return timesheet.ComputeDay(d.DayType, d.Intervals, d.ManualEntries).Summary
}

// IsClockedIn reports whether today's record holds an open punch.
func (c *Controller) IsClockedIn(now time.Time) bool {
	idx, ok := c.period.DayIndex(now)
	if !ok {
		return false
	}
	return timesheet.IsClockedIn(c.sheet.Day(idx))
}
