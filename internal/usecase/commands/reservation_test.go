package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"
	"padelhub/internal/domain/user"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/clock"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/commands"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityStore struct {
	dayCtx    *queries.CourtDayContext
	dayCtxErr error
	rules     []schedule.WeeklyRule
	bookings  []schedule.Booking
	blackouts []schedule.Blackout
}

func (s *stubAvailabilityStore) CourtDayContext(_ context.Context, _ uuid.UUID) (*queries.CourtDayContext, error) {
	return s.dayCtx, s.dayCtxErr
}

func (s *stubAvailabilityStore) ListWeeklyRules(_ context.Context, _ uuid.UUID) ([]schedule.WeeklyRule, error) {
	return s.rules, nil
}

func (s *stubAvailabilityStore) ListBookings(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.Booking, error) {
	return s.bookings, nil
}

func (s *stubAvailabilityStore) ListBlackouts(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.Blackout, error) {
	return s.blackouts, nil
}

type stubReservationRepo struct {
	found *reservation.Reservation
}

func (s *stubReservationRepo) Create(_ context.Context, _ db.DBTX, _ *reservation.Reservation) (uuid.UUID, error) {
	return uuid.Nil, errs.New("not reached in these tests")
}

func (s *stubReservationRepo) FindByID(_ context.Context, _ uuid.UUID) (*reservation.Reservation, error) {
	if s.found == nil {
		return nil, errs.New("not found")
	}
	return s.found, nil
}

func (s *stubReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, _ reservation.Status) error {
	return nil
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(_ context.Context, _ uuid.UUID, _ ...string) {}

var madrid = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		panic(err)
	}
	return loc
}()

// 2025-03-10 is a Monday, open 08:00-10:00 with 60 minute slots.
func openMondayStore(courtID uuid.UUID) *stubAvailabilityStore {
	return &stubAvailabilityStore{
		dayCtx: &queries.CourtDayContext{CourtID: courtID, ClubID: uuid.New(), Timezone: "Europe/Madrid"},
		rules: []schedule.WeeklyRule{{
			ID:          uuid.New(),
			CourtID:     courtID,
			Weekday:     schedule.Monday,
			OpenMinute:  8 * 60,
			CloseMinute: 10 * 60,
			SlotMinutes: 60,
			IsActive:    true,
		}},
	}
}

func newCommands(store *stubAvailabilityStore, repo *stubReservationRepo, now time.Time) commands.ReservationCommands {
	return commands.NewReservationCommands(repo, store, noopInvalidator{}, nil, clock.NewMockClock(now), slog.Default())
}

func player() commands.Actor {
	return commands.Actor{ID: uuid.New(), Role: user.RolePlayer}
}

func TestCreateReservation_CourtNotFound(t *testing.T) {
	store := &stubAvailabilityStore{dayCtxErr: errs.New("no rows")}
	cmds := newCommands(store, &stubReservationRepo{}, time.Now())

	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: uuid.New(),
		StartAt: time.Now().Add(time.Hour),
		EndAt:   time.Now().Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, commands.ErrCourtNotFound)
}

func TestCreateReservation_RejectsOffGridInterval(t *testing.T) {
	courtID := uuid.New()
	cmds := newCommands(openMondayStore(courtID), &stubReservationRepo{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	// 08:30-09:30 straddles two slots; never a grid slot.
	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 8, 30, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 9, 30, 0, 0, madrid),
	})
	require.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
}

func TestCreateReservation_RejectsPartialSlot(t *testing.T) {
	courtID := uuid.New()
	cmds := newCommands(openMondayStore(courtID), &stubReservationRepo{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	// Correct start, half-length end.
	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 8, 30, 0, 0, madrid),
	})
	require.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
}

func TestCreateReservation_RejectsOccupiedSlot(t *testing.T) {
	courtID := uuid.New()
	store := openMondayStore(courtID)
	store.bookings = []schedule.Booking{{
		Interval: schedule.Interval{
			Start: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
			End:   time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
		},
		Status: reservation.StatusConfirmed,
	}}
	cmds := newCommands(store, &stubReservationRepo{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
	})
	require.ErrorIs(t, err, commands.ErrSlotUnavailable)
}

func TestCreateReservation_RejectsPendingOccupiedSlot(t *testing.T) {
	courtID := uuid.New()
	store := openMondayStore(courtID)
	store.bookings = []schedule.Booking{{
		Interval: schedule.Interval{
			Start: time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
			End:   time.Date(2025, 3, 10, 10, 0, 0, 0, madrid),
		},
		Status: reservation.StatusPending,
	}}
	cmds := newCommands(store, &stubReservationRepo{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 10, 0, 0, 0, madrid),
	})
	require.ErrorIs(t, err, commands.ErrSlotUnavailable)
}

func TestCreateReservation_RejectsBlackedOutSlot(t *testing.T) {
	courtID := uuid.New()
	store := openMondayStore(courtID)
	store.blackouts = []schedule.Blackout{{
		Interval: schedule.Interval{
			Start: time.Date(2025, 3, 10, 0, 0, 0, 0, madrid),
			End:   time.Date(2025, 3, 11, 0, 0, 0, 0, madrid),
		},
		Reason: "Mantenimiento",
	}}
	cmds := newCommands(store, &stubReservationRepo{}, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
	})
	require.ErrorIs(t, err, commands.ErrSlotUnavailable)
}

func TestCreateReservation_RejectsPastSlot(t *testing.T) {
	courtID := uuid.New()

	// Clock is after the requested slot; the grid still lists it as available.
	cmds := newCommands(openMondayStore(courtID), &stubReservationRepo{}, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))

	_, err := cmds.CreateReservation(context.Background(), player(), commands.CreateReservationParams{
		CourtID: courtID,
		StartAt: time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		EndAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
	})
	require.ErrorIs(t, err, reservation.ErrSlotInPast)
}

func TestCancelReservation_NotFound(t *testing.T) {
	cmds := newCommands(&stubAvailabilityStore{}, &stubReservationRepo{}, time.Now())

	err := cmds.CancelReservation(context.Background(), player(), uuid.New())
	require.ErrorIs(t, err, commands.ErrReservationNotFound)
}

func TestCancelReservation_OtherPlayersReservation(t *testing.T) {
	slot, err := reservation.NewTimeSlot(
		time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
	)
	require.NoError(t, err)

	owner := uuid.New()
	existing := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), owner, slot,
		reservation.StatusConfirmed, reservation.NewNote(""),
		time.Now(), time.Now(),
	)

	cmds := newCommands(&stubAvailabilityStore{}, &stubReservationRepo{found: existing}, time.Now())

	err = cmds.CancelReservation(context.Background(), player(), existing.ID())
	require.ErrorIs(t, err, reservation.ErrNotReservationOwner)
}

func TestCancelReservation_AlreadyCancelled(t *testing.T) {
	slot, err := reservation.NewTimeSlot(
		time.Date(2025, 3, 10, 8, 0, 0, 0, madrid),
		time.Date(2025, 3, 10, 9, 0, 0, 0, madrid),
	)
	require.NoError(t, err)

	actor := player()
	existing := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), actor.ID, slot,
		reservation.StatusCancelled, reservation.NewNote(""),
		time.Now(), time.Now(),
	)

	cmds := newCommands(&stubAvailabilityStore{}, &stubReservationRepo{found: existing}, time.Now())

	err = cmds.CancelReservation(context.Background(), actor, existing.ID())
	require.ErrorIs(t, err, reservation.ErrReservationCancelled)
}
