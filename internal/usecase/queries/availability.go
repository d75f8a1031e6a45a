package queries

import (
	"context"
	"log/slog"
	"time"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound   = errs.New("court not found")
	ErrInvalidDate     = errs.New("invalid date")
	ErrInvalidTimezone = errs.New("club has an invalid timezone")
)

// CourtDayContext is what the availability pipeline needs to know about a
// court before it can compute anything: that the court exists, and which
// timezone its club operates in.
type CourtDayContext struct {
	CourtID  uuid.UUID
	ClubID   uuid.UUID
	Timezone string
}

// AvailabilityReadStore is the engine's read-only boundary to the store.
// Implementations must return errors on failure rather than empty rows;
// a silently empty day would tell a player the court is closed.
type AvailabilityReadStore interface {
	CourtDayContext(ctx context.Context, courtID uuid.UUID) (*CourtDayContext, error)
	ListWeeklyRules(ctx context.Context, courtID uuid.UUID) ([]schedule.WeeklyRule, error)
	ListBookings(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]schedule.Booking, error)
	ListBlackouts(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]schedule.Blackout, error)
}

// AvailabilityCache is best-effort: a miss or a cache failure always falls
// back to direct computation. A hit is served without re-checking the court,
// so a court deactivated after a cached read keeps answering until the entry
// expires or a write invalidates it. The TTL bounds that window.
type AvailabilityCache interface {
	Get(ctx context.Context, courtID uuid.UUID, date string) ([]SlotView, bool)
	Set(ctx context.Context, courtID uuid.UUID, date string, slots []SlotView)
}

type AvailabilityQueries interface {
	GetDayAvailability(ctx context.Context, courtID uuid.UUID, date string) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	store  AvailabilityReadStore
	cache  AvailabilityCache
	logger *slog.Logger
}

func NewAvailabilityQueries(store AvailabilityReadStore, cache AvailabilityCache, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// GetDayAvailability is the public query function: fetch the court's weekly
// rules plus the day's bookings and blackouts, and thread them through
// resolve → generate → annotate. The store is never mutated.
func (q *availabilityQueriesImpl) GetDayAvailability(ctx context.Context, courtID uuid.UUID, date string) ([]SlotView, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if q.cache != nil {
		if cached, ok := q.cache.Get(ctx, courtID, day.String()); ok {
			return cached, nil
		}
	}

	dayCtx, err := q.store.CourtDayContext(ctx, courtID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(dayCtx.Timezone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimezone)
	}

	// Half-open day window in the club's local time, widened by nothing:
	// bookings and blackouts are stored as absolute instants, so local
	// midnight boundaries capture everything that can touch the day's slots.
	from := day.In(loc)
	to := day.AddDays(1).In(loc)

	rules, err := q.store.ListWeeklyRules(ctx, courtID)
	if err != nil {
		return nil, err
	}
	bookings, err := q.store.ListBookings(ctx, courtID, from, to)
	if err != nil {
		return nil, err
	}
	blackouts, err := q.store.ListBlackouts(ctx, courtID, from, to)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.ComputeDay(rules, day, loc, bookings, blackouts, schedule.AnnotateOptions{
		PendingBlocks: true,
	})
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			Start:     s.Start,
			End:       s.End,
			Available: s.Available(),
			Status:    string(s.Status),
			Reason:    s.Reason,
		}
	}

	if q.cache != nil {
		q.cache.Set(ctx, courtID, day.String(), views)
	}

	return views, nil
}
