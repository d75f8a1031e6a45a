package readstore

import (
	"context"
	"time"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"
	"padelhub/internal/infra"
	"padelhub/internal/pkg/pgconv"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityReadStore feeds the slot engine. Bookings and blackouts are
// fetched with half-open overlap predicates so an interval straddling the day
// boundary still lands in the window that can see it.
type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func (s *AvailabilityReadStore) CourtDayContext(ctx context.Context, courtID uuid.UUID) (*queries.CourtDayContext, error) {
	query := `
		SELECT c.id, c.club_id, cl.timezone
		FROM courts c
		JOIN clubs cl ON cl.id = c.club_id
		WHERE c.id = $1 AND c.is_active
	`

	var dayCtx queries.CourtDayContext
	err := s.pool.QueryRow(ctx, query, courtID).Scan(&dayCtx.CourtID, &dayCtx.ClubID, &dayCtx.Timezone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load court context", err)
	}
	return &dayCtx, nil
}

func (s *AvailabilityReadStore) ListWeeklyRules(ctx context.Context, courtID uuid.UUID) ([]schedule.WeeklyRule, error) {
	query := `
		SELECT id, court_id, weekday, open_minute, close_minute,
		       slot_minutes, buffer_minutes, effective_from, effective_to,
		       is_active, created_at
		FROM weekly_rules
		WHERE court_id = $1 AND is_active
	`

	rows, err := s.pool.Query(ctx, query, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly rules", err)
	}
	defer rows.Close()

	var rules []schedule.WeeklyRule
	for rows.Next() {
		var (
			id, cID                                        uuid.UUID
			weekday, openMin, closeMin, slotMin, bufferMin int
			effectiveFrom, effectiveTo                     pgtype.Date
			isActive                                       bool
			createdAt                                      pgtype.Timestamptz
		)
		if err := rows.Scan(
			&id, &cID, &weekday, &openMin, &closeMin,
			&slotMin, &bufferMin, &effectiveFrom, &effectiveTo,
			&isActive, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan weekly rule", err)
		}
		rules = append(rules, schedule.WeeklyRule{
			ID:            id,
			CourtID:       cID,
			Weekday:       schedule.Weekday(weekday),
			OpenMinute:    openMin,
			CloseMinute:   closeMin,
			SlotMinutes:   slotMin,
			BufferMinutes: bufferMin,
			EffectiveFrom: schedDatePtr(effectiveFrom),
			EffectiveTo:   schedDatePtr(effectiveTo),
			IsActive:      isActive,
			CreatedAt:     createdAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly rules", err)
	}
	return rules, nil
}

func (s *AvailabilityReadStore) ListBookings(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]schedule.Booking, error) {
	query := `
		SELECT start_at, end_at, status
		FROM reservations
		WHERE court_id = $1 AND start_at < $3 AND end_at > $2
		ORDER BY start_at
	`

	rows, err := s.pool.Query(ctx, query, courtID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []schedule.Booking
	for rows.Next() {
		var (
			startAt, endAt pgtype.Timestamptz
			status         string
		)
		if err := rows.Scan(&startAt, &endAt, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, schedule.Booking{
			Interval: schedule.Interval{Start: startAt.Time, End: endAt.Time},
			Status:   reservation.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return bookings, nil
}

func (s *AvailabilityReadStore) ListBlackouts(ctx context.Context, courtID uuid.UUID, from, to time.Time) ([]schedule.Blackout, error) {
	query := `
		SELECT start_at, end_at, reason
		FROM blackouts
		WHERE court_id = $1 AND start_at < $3 AND end_at > $2
		ORDER BY start_at
	`

	rows, err := s.pool.Query(ctx, query, courtID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	defer rows.Close()

	var blackouts []schedule.Blackout
	for rows.Next() {
		var (
			startAt, endAt pgtype.Timestamptz
			reason         string
		)
		if err := rows.Scan(&startAt, &endAt, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout", err)
		}
		blackouts = append(blackouts, schedule.Blackout{
			Interval: schedule.Interval{Start: startAt.Time, End: endAt.Time},
			Reason:   reason,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	return blackouts, nil
}

func schedDatePtr(pd pgtype.Date) *schedule.Date {
	if !pd.Valid {
		return nil
	}
	d := schedule.DateOf(pd.Time)
	return &d
}
