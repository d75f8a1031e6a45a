package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityStore struct {
	dayCtx    *queries.CourtDayContext
	dayCtxErr error
	rules     []schedule.WeeklyRule
	rulesErr  error
	bookings  []schedule.Booking
	blackouts []schedule.Blackout

	bookingsFrom time.Time
	bookingsTo   time.Time
}

func (f *fakeAvailabilityStore) CourtDayContext(_ context.Context, _ uuid.UUID) (*queries.CourtDayContext, error) {
	return f.dayCtx, f.dayCtxErr
}

func (f *fakeAvailabilityStore) ListWeeklyRules(_ context.Context, _ uuid.UUID) ([]schedule.WeeklyRule, error) {
	return f.rules, f.rulesErr
}

func (f *fakeAvailabilityStore) ListBookings(_ context.Context, _ uuid.UUID, from, to time.Time) ([]schedule.Booking, error) {
	f.bookingsFrom = from
	f.bookingsTo = to
	return f.bookings, nil
}

func (f *fakeAvailabilityStore) ListBlackouts(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.Blackout, error) {
	return f.blackouts, nil
}

type fakeCache struct {
	entries map[string][]queries.SlotView
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]queries.SlotView{}}
}

func (f *fakeCache) Get(_ context.Context, courtID uuid.UUID, date string) ([]queries.SlotView, bool) {
	views, ok := f.entries[courtID.String()+":"+date]
	return views, ok
}

func (f *fakeCache) Set(_ context.Context, courtID uuid.UUID, date string, slots []queries.SlotView) {
	f.sets++
	f.entries[courtID.String()+":"+date] = slots
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func mondayRule(courtID uuid.UUID) schedule.WeeklyRule {
	return schedule.WeeklyRule{
		ID:          uuid.New(),
		CourtID:     courtID,
		Weekday:     schedule.Monday,
		OpenMinute:  8 * 60,
		CloseMinute: 10 * 60,
		SlotMinutes: 60,
		IsActive:    true,
	}
}

func TestGetDayAvailability_InvalidDate(t *testing.T) {
	q := queries.NewAvailabilityQueries(&fakeAvailabilityStore{}, nil, testLogger())

	_, err := q.GetDayAvailability(context.Background(), uuid.New(), "10-03-2025")
	require.ErrorIs(t, err, queries.ErrInvalidDate)
}

func TestGetDayAvailability_CourtNotFound(t *testing.T) {
	notFound := errs.New("court not found")
	store := &fakeAvailabilityStore{dayCtxErr: notFound}
	q := queries.NewAvailabilityQueries(store, nil, testLogger())

	_, err := q.GetDayAvailability(context.Background(), uuid.New(), "2025-03-10")
	require.ErrorIs(t, err, notFound)
}

func TestGetDayAvailability_InvalidTimezone(t *testing.T) {
	courtID := uuid.New()
	store := &fakeAvailabilityStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Mars/Olympus"},
	}
	q := queries.NewAvailabilityQueries(store, nil, testLogger())

	_, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-10")
	require.ErrorIs(t, err, queries.ErrInvalidTimezone)
}

func TestGetDayAvailability_FullPipeline(t *testing.T) {
	courtID := uuid.New()
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 2025-03-10 is a Monday. One confirmed booking covers the first slot.
	store := &fakeAvailabilityStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
		rules:  []schedule.WeeklyRule{mondayRule(courtID)},
		bookings: []schedule.Booking{
			{
				Interval: schedule.Interval{
					Start: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
					End:   time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
				},
				Status: reservation.StatusConfirmed,
			},
		},
	}
	cache := newFakeCache()
	q := queries.NewAvailabilityQueries(store, cache, testLogger())

	slots, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	require.False(t, slots[0].Available)
	require.Equal(t, string(schedule.StatusOccupied), slots[0].Status)
	require.Equal(t, schedule.ReasonOccupied, slots[0].Reason)

	require.True(t, slots[1].Available)
	require.Equal(t, string(schedule.StatusAvailable), slots[1].Status)
	require.Empty(t, slots[1].Reason)

	// Day window is local midnight to next local midnight.
	require.True(t, store.bookingsFrom.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, madrid)))
	require.True(t, store.bookingsTo.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, madrid)))

	require.Equal(t, 1, cache.sets)
}

func TestGetDayAvailability_PendingBlocksOverHTTP(t *testing.T) {
	courtID := uuid.New()
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	store := &fakeAvailabilityStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
		rules:  []schedule.WeeklyRule{mondayRule(courtID)},
		bookings: []schedule.Booking{
			{
				Interval: schedule.Interval{
					Start: time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
					End:   time.Date(2025, 3, 10, 10, 0, 0, 0, madrid),
				},
				Status: reservation.StatusPending,
			},
		},
	}
	q := queries.NewAvailabilityQueries(store, nil, testLogger())

	slots, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.True(t, slots[0].Available)
	require.False(t, slots[1].Available)
}

func TestGetDayAvailability_ClosedDayIsEmptyNotError(t *testing.T) {
	courtID := uuid.New()
	store := &fakeAvailabilityStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
		rules:  []schedule.WeeklyRule{mondayRule(courtID)},
	}
	q := queries.NewAvailabilityQueries(store, nil, testLogger())

	// 2025-03-11 is a Tuesday; the only rule is for Monday.
	slots, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-11")
	require.NoError(t, err)
	require.NotNil(t, slots)
	require.Empty(t, slots)
}

func TestGetDayAvailability_CacheHitSkipsStore(t *testing.T) {
	courtID := uuid.New()
	cached := []queries.SlotView{{Available: true, Status: string(schedule.StatusAvailable)}}

	cache := newFakeCache()
	cache.entries[courtID.String()+":2025-03-10"] = cached

	boom := errs.New("store must not be called")
	store := &fakeAvailabilityStore{dayCtxErr: boom}
	q := queries.NewAvailabilityQueries(store, cache, testLogger())

	slots, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, cached, slots)
}

func TestGetDayAvailability_StoreFailurePropagates(t *testing.T) {
	courtID := uuid.New()
	boom := errs.New("connection reset")
	store := &fakeAvailabilityStore{
		dayCtx:   &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
		rulesErr: boom,
	}
	q := queries.NewAvailabilityQueries(store, nil, testLogger())

	_, err := q.GetDayAvailability(context.Background(), courtID, "2025-03-10")
	require.ErrorIs(t, err, boom)
}
