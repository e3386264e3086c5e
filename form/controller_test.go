package form_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timeclock-engine/form"
	"github.com/warp/timeclock-engine/store/memory"
	"github.com/warp/timeclock-engine/timesheet"
)

// fakeSettings is a fixed settings provider.
type fakeSettings struct {
	name     string
	autoFill bool
	salary   bool
}

func (f fakeSettings) EmployeeName() string       { return f.name }
func (f fakeSettings) AutoFillFromTemplate() bool { return f.autoFill }
func (f fakeSettings) SalaryMode() bool           { return f.salary }
func (f fakeSettings) ShowAddHoursButton() bool   { return true }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestController(t *testing.T, store *memory.Store, s fakeSettings) *form.Controller {
	t.Helper()
	// Short quiet period so debounce tests stay fast.
	return form.NewController(store, s, form.WithSaveDelay(20*time.Millisecond))
}

func selectCurrentPeriod(t *testing.T, c *form.Controller) timesheet.PayPeriod {
	t.Helper()
	p := timesheet.PeriodContaining(time.Now())
	p.IsCurrent = true
	require.NoError(t, c.SelectPeriod(context.Background(), p))
	return p
}

// =============================================================================
// EDITS AND RECOMPUTATION
// =============================================================================

func TestController_ApplyRecomputesDayAndTotals(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{name: "Pat"})
	selectCurrentPeriod(t, c)

	c.Apply(form.SetStart{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("09:00")})
	c.Apply(form.SetStop{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("17:00")})

	assert.True(t, c.Timesheet().Day(0).Total.Equal(dec("8")))
	assert.True(t, c.Totals().Week1Total.Equal(dec("8")))
	assert.Equal(t, "9:00AM - 5:00PM", c.DaySummary(0))
}

func TestController_DayTypeChangeOverridesTotal(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})
	selectCurrentPeriod(t, c)

	c.Apply(form.SetDayType{Day: 3, Type: timesheet.DayHoliday})

	assert.True(t, c.Timesheet().Day(3).Total.Equal(dec("8")))
	assert.Equal(t, "Holiday", c.DaySummary(3))
}

func TestController_ManualEntries(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})
	selectCurrentPeriod(t, c)

	c.Apply(form.AddManualEntry{Day: 1})
	c.Apply(form.SetManualEntry{Day: 1, Slot: 0, Amount: dec("2.5"), Description: "training"})

	assert.True(t, c.Timesheet().Day(1).Total.Equal(dec("2.5")))
	assert.Equal(t, "2.5h training", c.DaySummary(1))

	c.Apply(form.RemoveManualEntry{Day: 1, Slot: 0})
	assert.True(t, c.Timesheet().Day(1).Total.IsZero())
}

func TestController_ConflictFlagIsAdvisory(t *testing.T) {
	// GIVEN: two overlapping punches on one day
	// THEN: the day is flagged, but its total still computes and the
	//       edit still schedules a save
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})
	selectCurrentPeriod(t, c)

	c.Apply(form.SetStart{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("09:00")})
	c.Apply(form.SetStop{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("12:00")})
	c.Apply(form.AddInterval{Day: 0})
	c.Apply(form.SetStart{Day: 0, Slot: 1, Time: timesheet.MustTimeOfDay("11:00")})
	c.Apply(form.SetStop{Day: 0, Slot: 1, Time: timesheet.MustTimeOfDay("13:00")})

	assert.True(t, c.HasConflict(0))
	assert.True(t, c.Timesheet().Day(0).Total.Equal(dec("5")))

	// Removing the overlap clears the flag.
	c.Apply(form.RemoveInterval{Day: 0, Slot: 1})
	assert.False(t, c.HasConflict(0))
}

// =============================================================================
// DEBOUNCED PERSISTENCE
// =============================================================================

func TestController_DebouncedSaveCoalescesEdits(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})
	p := selectCurrentPeriod(t, c)

	// A burst of edits inside one quiet period saves once.
	c.Apply(form.SetStart{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("09:00")})
	c.Apply(form.SetStop{Day: 0, Slot: 0, Time: timesheet.MustTimeOfDay("17:00")})
	c.Apply(form.SetPersonalLeave{Amount: dec("4")})

	require.Eventually(t, func() bool { return store.SaveCount() == 1 },
		time.Second, 5*time.Millisecond)

	saved, found, err := store.LoadTimesheet(context.Background(), p.Label)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, saved.Day(0).Total.Equal(dec("8")))
	assert.True(t, saved.PersonalLeave.Equal(dec("4")))
}

func TestController_SaveNowCancelsPendingSave(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})
	selectCurrentPeriod(t, c)

	c.Apply(form.SetPersonalLeave{Amount: dec("8")})
	require.NoError(t, c.SaveNow(context.Background()))
	assert.Equal(t, 1, store.SaveCount())

	// The debounce timer was cancelled; no second save arrives.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, store.SaveCount())
}

// =============================================================================
// PERIOD SELECTION AND TEMPLATE FILL
// =============================================================================

func TestController_SelectPeriodLoadsSavedData(t *testing.T) {
	store := memory.New()
	p := timesheet.PeriodContaining(time.Now())

	saved := timesheet.NewBlankTimesheet("Pat", p.Label)
	saved.Week1[2].DayType = timesheet.DayVacation
	require.NoError(t, store.SaveTimesheet(context.Background(), p.Label, saved))

	c := newTestController(t, store, fakeSettings{name: "Pat"})
	require.NoError(t, c.SelectPeriod(context.Background(), p))

	assert.Equal(t, timesheet.DayVacation, c.Timesheet().Day(2).DayType)
	// Dates are projected from the calendar even for loaded sheets.
	assert.Equal(t, timesheet.FormatDayDate(p.Start), c.Timesheet().Day(0).Date)
}

func TestController_AutoFillFromTemplate(t *testing.T) {
	store := memory.New()

	tmpl := timesheet.NewBlankTimesheet("Pat", timesheet.TemplateLabel)
	tmpl.Week1[0].Intervals = []timesheet.TimeInterval{{
		Start: timesheet.MustTimeOfDay("09:00"),
		Stop:  timesheet.MustTimeOfDay("17:00"),
	}}
	require.NoError(t, store.SaveTimesheet(context.Background(), timesheet.TemplateLabel, tmpl))

	t.Run("blank period fills from template, keeping its own dates", func(t *testing.T) {
		c := newTestController(t, store, fakeSettings{name: "Pat", autoFill: true})
		p := selectCurrentPeriod(t, c)

		got := c.Timesheet()
		assert.Equal(t, p.Label, got.PayPeriod)
		assert.True(t, got.Day(0).Total.Equal(dec("8")), "template punches carried over")
		assert.Equal(t, timesheet.FormatDayDate(p.Start), got.Day(0).Date)
	})

	t.Run("auto-fill disabled leaves the period blank", func(t *testing.T) {
		c := newTestController(t, store, fakeSettings{name: "Pat", autoFill: false})
		selectCurrentPeriod(t, c)
		assert.True(t, c.Timesheet().IsBlank())
	})

	t.Run("the template never auto-fills itself", func(t *testing.T) {
		c := newTestController(t, store, fakeSettings{name: "Pat", autoFill: true})
		require.NoError(t, c.SelectPeriod(context.Background(), timesheet.TemplatePeriod()))
		// Loading the template record itself is fine; it is not blank here,
		// so it loads as saved data with empty dates.
		assert.Equal(t, "", c.Timesheet().Day(0).Date)
	})
}

func TestController_SalaryModeTotals(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{salary: true})
	selectCurrentPeriod(t, c)

	for day := 0; day < 5; day++ {
		c.Apply(form.SetStart{Day: day, Slot: 0, Time: timesheet.MustTimeOfDay("08:00")})
		c.Apply(form.SetStop{Day: day, Slot: 0, Time: timesheet.MustTimeOfDay("18:00")})
	}

	// 50 hours, no overtime tracked.
	assert.True(t, c.Totals().Week1Total.Equal(dec("50")))
	assert.True(t, c.Totals().Overtime.IsZero())
	assert.True(t, c.Totals().PeriodTotal.Equal(dec("50")))
}

// =============================================================================
// CLOCK IN/OUT THROUGH THE CONTROLLER
// =============================================================================

func TestController_ClockInOut(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{name: "Pat"})
	selectCurrentPeriod(t, c)

	// Midday, so the clock-out below stays within the same calendar day.
	y, m, d := time.Now().Date()
	now := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.ClockIn(now))
	assert.True(t, c.IsClockedIn(now))
	assert.ErrorIs(t, c.ClockIn(now), timesheet.ErrAlreadyClockedIn)

	require.NoError(t, c.ClockOut(now.Add(4*time.Hour)))
	assert.False(t, c.IsClockedIn(now))

	// The punch flows into persistence like any other edit.
	require.Eventually(t, func() bool { return store.SaveCount() > 0 },
		time.Second, 5*time.Millisecond)
}

func TestController_ClockInRejectedOutsideCurrentPeriod(t *testing.T) {
	store := memory.New()
	c := newTestController(t, store, fakeSettings{})

	// A past period is selectable for editing but not for clocking.
	past := timesheet.PeriodContaining(time.Now().AddDate(0, 0, -28))
	require.NoError(t, c.SelectPeriod(context.Background(), past))

	assert.ErrorIs(t, c.ClockIn(time.Now()), timesheet.ErrNotCurrentPeriod)
}
