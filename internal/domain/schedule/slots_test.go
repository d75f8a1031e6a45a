package schedule_test

import (
	"testing"
	"time"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// mondayDate 2025-03-10 is a Monday.
var mondayDate = schedule.Date{Year: 2025, Month: 3, Day: 10}

func mondayRule(openHour, closeHour, slotMin, bufferMin int) schedule.WeeklyRule {
	r := baseRule(schedule.Monday)
	r.OpenMinute = openHour * 60
	r.CloseMinute = closeHour * 60
	r.SlotMinutes = slotMin
	r.BufferMinutes = bufferMin
	return r
}

func localInterval(t *testing.T, d schedule.Date, from, to string) schedule.Interval {
	t.Helper()
	layout := "2006-01-02 15:04"
	start, err := time.ParseInLocation(layout, d.String()+" "+from, madrid)
	require.NoError(t, err)
	end, err := time.ParseInLocation(layout, d.String()+" "+to, madrid)
	require.NoError(t, err)
	return schedule.Interval{Start: start, End: end}
}

func TestGenerateSlots_TwoExactSlots(t *testing.T) {
	// open 08:00, close 10:00, 60-minute slots, no buffer
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	want := []schedule.Slot{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00"), Status: schedule.StatusAvailable},
		{Interval: localInterval(t, mondayDate, "09:00", "10:00"), Status: schedule.StatusAvailable},
	}
	require.Empty(t, cmp.Diff(want, slots))
}

func TestGenerateSlots_BufferDropsOverrunningSlot(t *testing.T) {
	// with a 15-minute buffer the second candidate starts 09:15 and would
	// end 10:15, past closing, so only one slot survives
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 15), mondayDate, madrid)
	require.NoError(t, err)

	want := []schedule.Slot{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00"), Status: schedule.StatusAvailable},
	}
	require.Empty(t, cmp.Diff(want, slots))
}

func TestGenerateSlots_Properties(t *testing.T) {
	rule := mondayRule(8, 22, 90, 10)
	slots, err := schedule.GenerateSlots(rule, mondayDate, madrid)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	closeAt := mondayDate.At(rule.CloseMinute, madrid)
	for i, s := range slots {
		require.Equal(t, time.Duration(rule.SlotMinutes)*time.Minute, s.Duration(), "slot %d length", i)
		require.False(t, s.End.After(closeAt), "slot %d runs past closing", i)
		if i > 0 {
			gap := s.Start.Sub(slots[i-1].End)
			require.Equal(t, time.Duration(rule.BufferMinutes)*time.Minute, gap, "gap before slot %d", i)
		}
	}
}

func TestGenerateSlots_InvalidRule(t *testing.T) {
	_, err := schedule.GenerateSlots(mondayRule(8, 10, 0, 0), mondayDate, madrid)
	require.ErrorIs(t, err, schedule.ErrInvalidRule)

	_, err = schedule.GenerateSlots(mondayRule(10, 8, 60, 0), mondayDate, madrid)
	require.ErrorIs(t, err, schedule.ErrInvalidRule)
}

func TestGenerateSlots_TimezoneAnchoring(t *testing.T) {
	// The same wall-clock template lands on different UTC instants across a
	// DST change. Madrid is UTC+1 in January and UTC+2 in July.
	janMonday := schedule.Date{Year: 2025, Month: 1, Day: 6}
	julMonday := schedule.Date{Year: 2025, Month: 7, Day: 7}

	rule := mondayRule(8, 10, 60, 0)

	winter, err := schedule.GenerateSlots(rule, janMonday, madrid)
	require.NoError(t, err)
	summer, err := schedule.GenerateSlots(rule, julMonday, madrid)
	require.NoError(t, err)

	require.Equal(t, 7, winter[0].Start.UTC().Hour())
	require.Equal(t, 6, summer[0].Start.UTC().Hour())
}

func sundayNightRule() schedule.WeeklyRule {
	r := baseRule(schedule.Sunday)
	r.OpenMinute = 60      // 01:00
	r.CloseMinute = 4 * 60 // 04:00
	r.SlotMinutes = 60
	r.BufferMinutes = 0
	return r
}

func TestGenerateSlots_FallBackDayKeepsExactSlotLength(t *testing.T) {
	// Madrid repeats an hour on 2025-10-26 (03:00 CEST -> 02:00 CET). The
	// 01:00-04:00 wall-clock window spans four absolute hours.
	day := schedule.Date{Year: 2025, Month: 10, Day: 26}

	slots, err := schedule.GenerateSlots(sundayNightRule(), day, madrid)
	require.NoError(t, err)

	require.Len(t, slots, 4)
	for i, s := range slots {
		require.Equal(t, time.Hour, s.Duration(), "slot %d", i)
	}
	require.True(t, slots[0].Start.Equal(day.At(60, madrid)))
	require.True(t, slots[len(slots)-1].End.Equal(day.At(4*60, madrid)))
}

func TestGenerateSlots_SpringForwardDayHasNoZeroLengthSlot(t *testing.T) {
	// Madrid skips an hour on 2025-03-30 (02:00 CET -> 03:00 CEST). The same
	// wall-clock window spans only two absolute hours and must never emit a
	// collapsed slot for the missing one.
	day := schedule.Date{Year: 2025, Month: 3, Day: 30}

	slots, err := schedule.GenerateSlots(sundayNightRule(), day, madrid)
	require.NoError(t, err)

	require.Len(t, slots, 2)
	for i, s := range slots {
		require.Equal(t, time.Hour, s.Duration(), "slot %d", i)
	}
	require.True(t, slots[len(slots)-1].End.Equal(day.At(4*60, madrid)))
}

func TestAnnotate_ReservationOverlaps(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	// confirmed booking 08:30-09:30 straddles both slots
	bookings := []schedule.Booking{
		{Interval: localInterval(t, mondayDate, "08:30", "09:30"), Status: reservation.StatusConfirmed},
	}

	got := schedule.Annotate(slots, bookings, nil, schedule.AnnotateOptions{PendingBlocks: true})
	require.Len(t, got, 2)
	for i, s := range got {
		require.Equal(t, schedule.StatusOccupied, s.Status, "slot %d", i)
		require.Equal(t, schedule.ReasonOccupied, s.Reason, "slot %d", i)
	}
}

func TestAnnotate_AdjacentReservationDoesNotBlock(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	// booking ends exactly when the first slot starts
	bookings := []schedule.Booking{
		{Interval: localInterval(t, mondayDate, "07:00", "08:00"), Status: reservation.StatusConfirmed},
	}

	got := schedule.Annotate(slots, bookings, nil, schedule.AnnotateOptions{PendingBlocks: true})
	for i, s := range got {
		require.Equal(t, schedule.StatusAvailable, s.Status, "slot %d", i)
	}
}

func TestAnnotate_CancelledNeverBlocks(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	bookings := []schedule.Booking{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00"), Status: reservation.StatusCancelled},
	}

	got := schedule.Annotate(slots, bookings, nil, schedule.AnnotateOptions{PendingBlocks: true})
	require.Equal(t, schedule.StatusAvailable, got[0].Status)
}

func TestAnnotate_PendingPolicyIsExplicit(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	bookings := []schedule.Booking{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00"), Status: reservation.StatusPending},
	}

	blocking := schedule.Annotate(slots, bookings, nil, schedule.AnnotateOptions{PendingBlocks: true})
	require.Equal(t, schedule.StatusOccupied, blocking[0].Status)

	nonBlocking := schedule.Annotate(slots, bookings, nil, schedule.AnnotateOptions{PendingBlocks: false})
	require.Equal(t, schedule.StatusAvailable, nonBlocking[0].Status)
}

func TestAnnotate_BlackoutReason(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	blackouts := []schedule.Blackout{
		{Interval: localInterval(t, mondayDate, "08:00", "10:00"), Reason: "Mantenimiento"},
	}

	got := schedule.Annotate(slots, nil, blackouts, schedule.AnnotateOptions{PendingBlocks: true})
	for i, s := range got {
		require.Equal(t, schedule.StatusBlackout, s.Status, "slot %d", i)
		require.Equal(t, "Mantenimiento", s.Reason, "slot %d", i)
	}
}

func TestAnnotate_BlackoutDefaultReason(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	blackouts := []schedule.Blackout{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00")},
	}

	got := schedule.Annotate(slots, nil, blackouts, schedule.AnnotateOptions{PendingBlocks: true})
	require.Equal(t, schedule.StatusBlackout, got[0].Status)
	require.Equal(t, schedule.ReasonClosed, got[0].Reason)
}

func TestAnnotate_ReservationWinsOverBlackout(t *testing.T) {
	slots, err := schedule.GenerateSlots(mondayRule(8, 10, 60, 0), mondayDate, madrid)
	require.NoError(t, err)

	bookings := []schedule.Booking{
		{Interval: localInterval(t, mondayDate, "08:00", "09:00"), Status: reservation.StatusConfirmed},
	}
	blackouts := []schedule.Blackout{
		{Interval: localInterval(t, mondayDate, "08:00", "10:00"), Reason: "Mantenimiento"},
	}

	got := schedule.Annotate(slots, bookings, blackouts, schedule.AnnotateOptions{PendingBlocks: true})
	require.Equal(t, schedule.StatusOccupied, got[0].Status)
	require.Equal(t, schedule.StatusBlackout, got[1].Status)
}

func TestComputeDay(t *testing.T) {
	opts := schedule.AnnotateOptions{PendingBlocks: true}

	t.Run("closed day yields empty sequence, not an error", func(t *testing.T) {
		rules := []schedule.WeeklyRule{baseRule(schedule.Tuesday)}
		got, err := schedule.ComputeDay(rules, mondayDate, madrid, nil, nil, opts)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("full pipeline", func(t *testing.T) {
		rules := []schedule.WeeklyRule{mondayRule(8, 10, 60, 0)}
		bookings := []schedule.Booking{
			{Interval: localInterval(t, mondayDate, "09:00", "09:30"), Status: reservation.StatusConfirmed},
		}
		got, err := schedule.ComputeDay(rules, mondayDate, madrid, bookings, nil, opts)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, schedule.StatusAvailable, got[0].Status)
		require.Equal(t, schedule.StatusOccupied, got[1].Status)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		rules := []schedule.WeeklyRule{mondayRule(8, 22, 90, 15)}
		bookings := []schedule.Booking{
			{Interval: localInterval(t, mondayDate, "09:30", "11:00"), Status: reservation.StatusConfirmed},
		}
		blackouts := []schedule.Blackout{
			{Interval: localInterval(t, mondayDate, "18:00", "20:00"), Reason: "Torneo privado"},
		}

		first, err := schedule.ComputeDay(rules, mondayDate, madrid, bookings, blackouts, opts)
		require.NoError(t, err)
		second, err := schedule.ComputeDay(rules, mondayDate, madrid, bookings, blackouts, opts)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(first, second))
	})

	t.Run("invalid rule propagates", func(t *testing.T) {
		rules := []schedule.WeeklyRule{mondayRule(8, 10, -1, 0)}
		_, err := schedule.ComputeDay(rules, mondayDate, madrid, nil, nil, opts)
		require.ErrorIs(t, err, schedule.ErrInvalidRule)
	})
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2025-03-10")
	require.NoError(t, err)
	require.Equal(t, mondayDate, d)

	for _, bad := range []string{"", "10-03-2025", "2025-13-01", "2025-02-30", "not-a-date"} {
		_, err := schedule.ParseDate(bad)
		require.ErrorIs(t, err, schedule.ErrInvalidDate, "input %q", bad)
	}
}
