package timesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/timeclock-engine/timesheet"
)

func TestComputeDay_FixedHourTypes(t *testing.T) {
	// Fixed-hours day types override whatever was punched.
	punched := []timesheet.TimeInterval{interval("09:00", "17:00")}

	tests := []struct {
		dayType     timesheet.DayType
		wantTotal   string
		wantSummary string
	}{
		{timesheet.DayHoliday, "8", "Holiday"},
		{timesheet.DayCalledOff, "0", "Called off"},
		{timesheet.DayVacation, "0", "Vacation/Time Off"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dayType), func(t *testing.T) {
			res := timesheet.ComputeDay(tt.dayType, punched, nil)
			assert.True(t, res.Total.Equal(dec(tt.wantTotal)))
			assert.True(t, res.HasInput)
			assert.Equal(t, tt.wantSummary, res.Summary)
		})
	}
}

func TestComputeDay_OfficeClosed(t *testing.T) {
	// GIVEN: an office-closed-early day with a morning punch
	// THEN: total is fixed at 8 but the punch still shows in the summary
	res := timesheet.ComputeDay(timesheet.DayOfficeClosed,
		[]timesheet.TimeInterval{interval("09:00", "12:00")}, nil)

	assert.True(t, res.Total.Equal(dec("8")))
	assert.Equal(t, "9:00AM - 12:00PM\n*Office closed early", res.Summary)

	// The annotation shows even with nothing punched.
	res = timesheet.ComputeDay(timesheet.DayOfficeClosed, nil, nil)
	assert.True(t, res.Total.Equal(dec("8")))
	assert.Equal(t, "*Office closed early", res.Summary)
}

func TestComputeDay_OnCall(t *testing.T) {
	res := timesheet.ComputeDay(timesheet.DayOnCall,
		[]timesheet.TimeInterval{interval("09:00", "12:00")},
		[]timesheet.ManualHoursEntry{{Amount: dec("2.5"), Description: "pager duty"}})

	assert.True(t, res.Total.Equal(dec("5.5")))
	assert.Equal(t, "9:00AM - 12:00PM 2.5h pager duty\nOn Call", res.Summary)
}

func TestComputeDay_Regular(t *testing.T) {
	t.Run("sums punches and manual entries", func(t *testing.T) {
		res := timesheet.ComputeDay(timesheet.DayRegular,
			[]timesheet.TimeInterval{
				interval("09:00", "12:00"),
				interval("13:00", "17:00"),
			},
			[]timesheet.ManualHoursEntry{{Amount: dec("1")}})

		assert.True(t, res.Total.Equal(dec("8")))
		assert.True(t, res.HasInput)
		assert.Equal(t, "9:00AM - 12:00PM 1:00PM - 5:00PM 1h", res.Summary)
	})

	t.Run("no input reports unset, not zero", func(t *testing.T) {
		// A day with one empty interval row is blank, distinguishing
		// "no data entered" from "zero hours recorded".
		res := timesheet.ComputeDay(timesheet.DayRegular,
			[]timesheet.TimeInterval{{}}, nil)

		assert.False(t, res.HasInput)
		assert.True(t, res.Total.IsZero())
		assert.Equal(t, "", res.Summary)
	})

	t.Run("open punch contributes nothing yet", func(t *testing.T) {
		res := timesheet.ComputeDay(timesheet.DayRegular,
			[]timesheet.TimeInterval{{Start: timesheet.MustTimeOfDay("09:00")}}, nil)

		assert.False(t, res.HasInput)
		assert.True(t, res.Total.IsZero())
	})
}

func TestDayRecord_Recompute(t *testing.T) {
	day := timesheet.DayRecord{
		DayType:   timesheet.DayRegular,
		Intervals: []timesheet.TimeInterval{interval("09:00", "17:00")},
	}
	res := day.Recompute()
	assert.True(t, day.Total.Equal(dec("8")))
	assert.True(t, res.Total.Equal(day.Total))

	// Switching the classification re-derives the total.
	day.DayType = timesheet.DayHoliday
	day.Recompute()
	assert.True(t, day.Total.Equal(dec("8")))
	assert.Equal(t, "Holiday", timesheet.ComputeDay(day.DayType, day.Intervals, nil).Summary)
}

func TestDayType_Valid(t *testing.T) {
	for _, d := range []timesheet.DayType{
		timesheet.DayRegular, timesheet.DayOnCall, timesheet.DayHoliday,
		timesheet.DayCalledOff, timesheet.DayOfficeClosed, timesheet.DayVacation,
	} {
		assert.True(t, d.Valid())
	}
	assert.False(t, timesheet.DayType("weekend").Valid())
}

func TestManualHoursEntry_Label(t *testing.T) {
	tests := []struct {
		entry timesheet.ManualHoursEntry
		want  string
	}{
		{timesheet.ManualHoursEntry{Amount: dec("2.5"), Description: "pager duty"}, "2.5h pager duty"},
		{timesheet.ManualHoursEntry{Amount: dec("2")}, "2h"},
		{timesheet.ManualHoursEntry{Amount: dec("0"), Description: "placeholder"}, ""},
		{timesheet.ManualHoursEntry{Amount: dec("-1")}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.entry.Label())
	}
}
