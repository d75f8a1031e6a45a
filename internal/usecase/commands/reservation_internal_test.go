package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type dayCtxStore struct {
	dayCtx *queries.CourtDayContext
	err    error
}

func (s *dayCtxStore) CourtDayContext(context.Context, uuid.UUID) (*queries.CourtDayContext, error) {
	return s.dayCtx, s.err
}

func (s *dayCtxStore) ListWeeklyRules(context.Context, uuid.UUID) ([]schedule.WeeklyRule, error) {
	return nil, nil
}

func (s *dayCtxStore) ListBookings(context.Context, uuid.UUID, time.Time, time.Time) ([]schedule.Booking, error) {
	return nil, nil
}

func (s *dayCtxStore) ListBlackouts(context.Context, uuid.UUID, time.Time, time.Time) ([]schedule.Blackout, error) {
	return nil, nil
}

type recordingInvalidator struct {
	calls   int
	courtID uuid.UUID
	dates   []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, courtID uuid.UUID, dates ...string) {
	r.calls++
	r.courtID = courtID
	r.dates = dates
}

func invalidationFixture(store *dayCtxStore) (*reservationCommandsImpl, *recordingInvalidator, *bytes.Buffer) {
	var buf bytes.Buffer
	inv := &recordingInvalidator{}
	impl := &reservationCommandsImpl{
		availability: store,
		invalidator:  inv,
		logger:       slog.New(slog.NewTextHandler(&buf, nil)),
	}
	return impl, inv, &buf
}

func TestInvalidateDay_DropsClubLocalDate(t *testing.T) {
	courtID := uuid.New()
	impl, inv, buf := invalidationFixture(&dayCtxStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
	})

	// 23:30 UTC on the 9th is already the 10th in Madrid.
	impl.invalidateDay(context.Background(), courtID, time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC))

	require.Equal(t, 1, inv.calls)
	require.Equal(t, courtID, inv.courtID)
	require.Equal(t, []string{"2025-03-10"}, inv.dates)
	require.Empty(t, buf.String())
}

func TestInvalidateDay_CourtLookupFailureIsLoggedNotSilent(t *testing.T) {
	impl, inv, buf := invalidationFixture(&dayCtxStore{err: errs.New("connection reset")})

	impl.invalidateDay(context.Background(), uuid.New(), time.Now())

	require.Zero(t, inv.calls)
	require.Contains(t, buf.String(), "availability invalidation skipped")
	require.Contains(t, buf.String(), "connection reset")
}

func TestInvalidateDay_BadTimezoneIsLoggedNotSilent(t *testing.T) {
	courtID := uuid.New()
	impl, inv, buf := invalidationFixture(&dayCtxStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Mars/Olympus"},
	})

	impl.invalidateDay(context.Background(), courtID, time.Now())

	require.Zero(t, inv.calls)
	require.Contains(t, buf.String(), "availability invalidation skipped")
}
