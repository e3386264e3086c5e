package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timeclock-engine/approval"
	"github.com/warp/timeclock-engine/store/sqlite"
	"github.com/warp/timeclock-engine/timesheet"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// TIMESHEETS
// =============================================================================

func TestStore_TimesheetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := timesheet.NewBlankTimesheet("Pat Doe", "11/2/2025 - 11/15/2025")
	ts.Week1[0].DayType = timesheet.DayOnCall
	ts.Week1[0].Intervals = []timesheet.TimeInterval{{
		Start: timesheet.MustTimeOfDay("22:00"),
		Stop:  timesheet.MustTimeOfDay("06:00"),
	}}
	ts.Week1[0].Recompute()
	ts.Week2[4].DayType = timesheet.DayCalledOff
	ts.PersonalLeave = decimal.RequireFromString("4.25")

	require.NoError(t, store.SaveTimesheet(ctx, ts.PayPeriod, ts))

	loaded, found, err := store.LoadTimesheet(ctx, ts.PayPeriod)
	require.NoError(t, err)
	require.True(t, found)

	// Day-type tags and "HH:MM" times are a wire contract and must
	// round-trip exactly.
	assert.Equal(t, timesheet.DayOnCall, loaded.Week1[0].DayType)
	assert.Equal(t, timesheet.DayCalledOff, loaded.Week2[4].DayType)
	assert.Equal(t, "22:00", loaded.Week1[0].Intervals[0].Start.String())
	assert.Equal(t, "06:00", loaded.Week1[0].Intervals[0].Stop.String())
	assert.True(t, loaded.Week1[0].Total.Equal(decimal.RequireFromString("8")))
	assert.True(t, loaded.PersonalLeave.Equal(ts.PersonalLeave))

	// An unset endpoint survives as unset, not as midnight.
	assert.False(t, loaded.Week1[1].Intervals[0].Start.IsSet())
}

func TestStore_SaveTimesheetUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ts := timesheet.NewBlankTimesheet("Pat", timesheet.TemplateLabel)
	require.NoError(t, store.SaveTimesheet(ctx, timesheet.TemplateLabel, ts))

	ts.PersonalLeave = decimal.New(8, 0)
	require.NoError(t, store.SaveTimesheet(ctx, timesheet.TemplateLabel, ts))

	loaded, found, err := store.LoadTimesheet(ctx, timesheet.TemplateLabel)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, loaded.PersonalLeave.Equal(decimal.New(8, 0)))
}

func TestStore_LoadAbsentTimesheet(t *testing.T) {
	store := newTestStore(t)
	_, found, err := store.LoadTimesheet(context.Background(), "1/4/2026 - 1/17/2026")
	require.NoError(t, err)
	assert.False(t, found)
}

// =============================================================================
// SUBMISSIONS
// =============================================================================

func pendingSubmission(id string) *approval.Submission {
	return &approval.Submission{
		ID:           id,
		EmployeeName: "Pat Doe",
		PayPeriod:    "11/2/2025 - 11/15/2025",
		Timesheet:    *timesheet.NewBlankTimesheet("Pat Doe", "11/2/2025 - 11/15/2025"),
		Status:       approval.StatusPending,
		SubmittedAt:  time.Now(),
	}
}

func TestStore_SubmissionLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertSubmission(ctx, pendingSubmission("sub-1")))
	require.NoError(t, store.InsertSubmission(ctx, pendingSubmission("sub-2")))

	pending, err := store.ListSubmissionsByStatus(ctx, approval.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// Approve one with a signature.
	require.NoError(t, store.ApproveSubmission(ctx, "sub-1", "base64sig", "11/16/2025"))

	approved, err := store.ListSubmissionsByStatus(ctx, approval.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "base64sig", approved[0].SupervisorSignature)
	assert.Equal(t, "11/16/2025", approved[0].SignatureDate)

	// Reject the other with a reason.
	require.NoError(t, store.RejectSubmission(ctx, "sub-2", "missing Friday punches"))

	got, err := store.GetSubmission(ctx, "sub-2")
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejected, got.Status)
	assert.Equal(t, "missing Friday punches", got.RejectReason)

	// A decided submission cannot be decided again.
	assert.ErrorIs(t, store.ApproveSubmission(ctx, "sub-2", "sig", "11/17/2025"), sqlite.ErrNotFound)
}

func TestStore_DeleteSubmission(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertSubmission(ctx, pendingSubmission("sub-1")))
	require.NoError(t, store.DeleteSubmission(ctx, "sub-1"))

	_, err := store.GetSubmission(ctx, "sub-1")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
	assert.ErrorIs(t, store.DeleteSubmission(ctx, "sub-1"), sqlite.ErrNotFound)
}

// =============================================================================
// SUPERVISORS
// =============================================================================

func TestStore_Supervisors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.CountSupervisors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.SaveSupervisor(ctx, sqlite.Supervisor{
		Username: "chris", PasswordHash: "$2a$10$hash", DisplayName: "Chris Lee",
	}))

	sup, err := store.GetSupervisor(ctx, "chris")
	require.NoError(t, err)
	assert.Equal(t, "Chris Lee", sup.DisplayName)

	names, err := store.ListSupervisorNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chris Lee"}, names)

	_, err = store.GetSupervisor(ctx, "nobody")
	assert.ErrorIs(t, err, sqlite.ErrNotFound)
}
