package readstore

import (
	"fmt"

	"context"

	"padelhub/internal/infra"
	"padelhub/internal/pkg/pgconv"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WeeklyRuleReadStore struct {
	pool *pgxpool.Pool
}

func NewWeeklyRuleReadStore(pool *pgxpool.Pool) *WeeklyRuleReadStore {
	return &WeeklyRuleReadStore{pool: pool}
}

func (s *WeeklyRuleReadStore) FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*queries.WeeklyRuleView, error) {
	query := `
		SELECT id, court_id, weekday, open_minute, close_minute,
		       slot_minutes, buffer_minutes, effective_from, effective_to,
		       is_active, created_at
		FROM weekly_rules
		WHERE court_id = $1
		ORDER BY weekday, open_minute
	`

	rows, err := s.pool.Query(ctx, query, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly rules", err)
	}
	defer rows.Close()

	var views []*queries.WeeklyRuleView
	for rows.Next() {
		var (
			view                       queries.WeeklyRuleView
			openMin, closeMin          int
			effectiveFrom, effectiveTo pgtype.Date
			createdAt                  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.CourtID, &view.Weekday, &openMin, &closeMin,
			&view.SlotMinutes, &view.BufferMinutes, &effectiveFrom, &effectiveTo,
			&view.IsActive, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan weekly rule", err)
		}
		view.OpenTime = minuteToClock(openMin)
		view.CloseTime = minuteToClock(closeMin)
		view.EffectiveFrom = pgconv.DatePtrFromPgtype(effectiveFrom)
		view.EffectiveTo = pgconv.DatePtrFromPgtype(effectiveTo)
		view.CreatedAt = createdAt.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly rules", err)
	}
	return views, nil
}

// minuteToClock renders a minute-of-day as "HH:MM"; 1440 becomes "24:00".
func minuteToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

type BlackoutReadStore struct {
	pool *pgxpool.Pool
}

func NewBlackoutReadStore(pool *pgxpool.Pool) *BlackoutReadStore {
	return &BlackoutReadStore{pool: pool}
}

func (s *BlackoutReadStore) FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*queries.BlackoutView, error) {
	query := `
		SELECT id, court_id, start_at, end_at, reason, created_at
		FROM blackouts
		WHERE court_id = $1
		ORDER BY start_at
	`

	rows, err := s.pool.Query(ctx, query, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	defer rows.Close()

	var views []*queries.BlackoutView
	for rows.Next() {
		var (
			view                      queries.BlackoutView
			startAt, endAt, createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.CourtID, &startAt, &endAt, &view.Reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout", err)
		}
		view.StartAt = startAt.Time
		view.EndAt = endAt.Time
		view.CreatedAt = createdAt.Time
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	return views, nil
}
