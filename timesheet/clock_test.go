package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timeclock-engine/timesheet"
)

func clockFixture() (timesheet.PayPeriod, time.Time) {
	now := time.Date(2025, time.November, 5, 9, 7, 0, 0, time.UTC) // Wednesday, day 3
	return timesheet.PeriodContaining(now), now
}

func TestRoundToQuarterHour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:07", "09:00"}, // 7 < 7.5, rounds down
		{"09:08", "09:15"}, // rounds half up
		{"17:08", "17:15"},
		{"09:00", "09:00"},
		{"09:53", "10:00"}, // rolls into the next hour
	}
	for _, tt := range tests {
		in, _ := time.Parse("15:04", tt.in)
		got := timesheet.RoundToQuarterHour(in)
		assert.Equal(t, tt.want, got.Format("15:04"), "round(%s)", tt.in)
	}
}

func TestClockInOut_RoundTrip(t *testing.T) {
	// GIVEN: clocked in at 09:07 (rounds to 09:00), out at 17:08 (17:15)
	// THEN: the punch duration follows the quarter-hour rules on the
	//       rounded times: 8.25 hours
	ts := timesheet.NewBlankTimesheet("Pat", "")
	period, now := clockFixture()
	period.IsCurrent = true

	require.NoError(t, timesheet.ClockIn(ts, period, now))

	idx, _ := period.DayIndex(now)
	day := ts.Day(idx)
	assert.True(t, timesheet.IsClockedIn(day))
	assert.Equal(t, "09:00", day.Intervals[0].Start.String())

	out := time.Date(2025, time.November, 5, 17, 8, 0, 0, time.UTC)
	require.NoError(t, timesheet.ClockOut(ts, period, out))

	assert.False(t, timesheet.IsClockedIn(day))
	assert.Equal(t, "17:15", day.Intervals[0].Stop.String())
	assert.True(t, day.Total.Equal(dec("8.25")))
}

func TestClockIn_Rejections(t *testing.T) {
	ts := timesheet.NewBlankTimesheet("Pat", "")
	period, now := clockFixture()

	t.Run("not the current period", func(t *testing.T) {
		past := period
		past.IsCurrent = false
		err := timesheet.ClockIn(ts, past, now)
		assert.ErrorIs(t, err, timesheet.ErrNotCurrentPeriod)
		assert.True(t, ts.IsBlank(), "rejected clock-in must not mutate state")
	})

	t.Run("today outside the period", func(t *testing.T) {
		p := period
		p.IsCurrent = true
		err := timesheet.ClockIn(ts, p, now.AddDate(0, 0, 20))
		assert.ErrorIs(t, err, timesheet.ErrNotInPeriod)
	})

	t.Run("double clock-in", func(t *testing.T) {
		p := period
		p.IsCurrent = true
		require.NoError(t, timesheet.ClockIn(ts, p, now))
		err := timesheet.ClockIn(ts, p, now.Add(time.Hour))
		assert.ErrorIs(t, err, timesheet.ErrAlreadyClockedIn)
	})
}

func TestClockOut_Rejections(t *testing.T) {
	ts := timesheet.NewBlankTimesheet("Pat", "")
	period, now := clockFixture()
	period.IsCurrent = true

	err := timesheet.ClockOut(ts, period, now)
	assert.ErrorIs(t, err, timesheet.ErrNotClockedIn)
}

func TestClockIn_AppendsWhenNoEmptyInterval(t *testing.T) {
	// GIVEN: today already has a completed punch in its only interval row
	// WHEN: clocking in again
	// THEN: a new interval is appended rather than overwriting the punch
	ts := timesheet.NewBlankTimesheet("Pat", "")
	period, now := clockFixture()
	period.IsCurrent = true

	idx, _ := period.DayIndex(now)
	day := ts.Day(idx)
	day.Intervals[0] = interval("06:00", "08:00")

	require.NoError(t, timesheet.ClockIn(ts, period, now))
	require.Len(t, day.Intervals, 2)
	assert.Equal(t, "09:00", day.Intervals[1].Start.String())
	assert.Equal(t, "6:00AM - 8:00AM", day.Intervals[0].FormatRange())
}
