package commands

import (
	"context"
	"log/slog"
	"time"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/clock"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/queries"
	"padelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTimeSlot     = errs.New("requested interval is not a bookable slot")
	ErrSlotUnavailable     = errs.New("slot is not available")
	ErrReservationConflict = errs.New("reservation conflict")
)

type CreateReservationParams struct {
	CourtID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Note    string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor Actor, params CreateReservationParams) (uuid.UUID, error)
	CancelReservation(ctx context.Context, actor Actor, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservations ReservationRepository
	availability queries.AvailabilityReadStore
	invalidator  AvailabilityInvalidator
	pool         *pgxpool.Pool
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	reservations ReservationRepository,
	availability queries.AvailabilityReadStore,
	invalidator AvailabilityInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		availability: availability,
		invalidator:  invalidator,
		pool:         pool,
		clock:        clk,
		logger:       logger,
	}
}

// CreateReservation accepts only intervals that are exactly one available
// slot on the court's published grid for that day. The availability check
// here is advisory UX; the real double-booking guard is the exclusion
// constraint on the reservations table, surfaced as ErrReservationConflict.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, actor Actor, params CreateReservationParams) (uuid.UUID, error) {
	dayCtx, err := r.availability.CourtDayContext(ctx, params.CourtID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrCourtNotFound)
	}

	loc, err := time.LoadLocation(dayCtx.Timezone)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "club timezone")
	}

	slot, err := r.matchSlot(ctx, params, loc)
	if err != nil {
		return uuid.Nil, err
	}

	timeSlot, err := reservation.NewTimeSlot(slot.Start, slot.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	entity, err := reservation.NewReservation(
		params.CourtID,
		actor.ID,
		timeSlot,
		reservation.NewNote(params.Note),
		r.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := shared.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return r.reservations.Create(ctx, tx, entity)
	})
	if err != nil {
		return uuid.Nil, err
	}

	localDate := schedule.DateOf(slot.Start.In(loc))
	r.invalidator.Invalidate(ctx, params.CourtID, localDate.String())
	return id, nil
}

// matchSlot recomputes the day's grid and requires the requested interval to
// coincide with an available slot instant-for-instant.
func (r *reservationCommandsImpl) matchSlot(ctx context.Context, params CreateReservationParams, loc *time.Location) (*schedule.Slot, error) {
	localDate := schedule.DateOf(params.StartAt.In(loc))
	from := localDate.In(loc)
	to := localDate.AddDays(1).In(loc)

	rules, err := r.availability.ListWeeklyRules(ctx, params.CourtID)
	if err != nil {
		return nil, err
	}
	bookings, err := r.availability.ListBookings(ctx, params.CourtID, from, to)
	if err != nil {
		return nil, err
	}
	blackouts, err := r.availability.ListBlackouts(ctx, params.CourtID, from, to)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.ComputeDay(rules, localDate, loc, bookings, blackouts, schedule.AnnotateOptions{
		PendingBlocks: true,
	})
	if err != nil {
		return nil, err
	}

	for i := range slots {
		s := slots[i]
		if s.Start.Equal(params.StartAt) && s.End.Equal(params.EndAt) {
			if !s.Available() {
				return nil, ErrSlotUnavailable
			}
			return &s, nil
		}
	}
	return nil, ErrInvalidTimeSlot
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, actor Actor, reservationID uuid.UUID) error {
	entity, err := r.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return errs.Mark(err, ErrReservationNotFound)
	}

	if err := entity.Cancel(actor.ID, actor.isOperator()); err != nil {
		return err
	}

	_, err = shared.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, r.reservations.UpdateStatus(ctx, tx, reservationID, reservation.StatusCancelled)
	})
	if err != nil {
		return err
	}

	r.invalidateDay(ctx, entity.CourtID(), entity.TimeSlot().Start())
	return nil
}

// invalidateDay drops the cached availability for the day the slot falls on,
// in the club's local calendar. Best-effort: the write is already committed,
// so a failure here means a stale cached day until the TTL, never a wrong
// write. Failures are logged, not returned.
func (r *reservationCommandsImpl) invalidateDay(ctx context.Context, courtID uuid.UUID, startAt time.Time) {
	dayCtx, err := r.availability.CourtDayContext(ctx, courtID)
	if err != nil {
		r.logger.Warn("availability invalidation skipped", "error", err, "court_id", courtID)
		return
	}
	loc, err := time.LoadLocation(dayCtx.Timezone)
	if err != nil {
		r.logger.Warn("availability invalidation skipped", "error", err, "court_id", courtID)
		return
	}
	r.invalidator.Invalidate(ctx, courtID, schedule.DateOf(startAt.In(loc)).String())
}
