package repository

import (
	"context"
	"time"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/infra"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/pgconv"
	"padelhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WeeklyRuleRepository struct {
	pool *pgxpool.Pool
}

func NewWeeklyRuleRepository(pool *pgxpool.Pool) *WeeklyRuleRepository {
	return &WeeklyRuleRepository{pool: pool}
}

func (r *WeeklyRuleRepository) Create(ctx context.Context, tx db.DBTX, rule schedule.WeeklyRule) (uuid.UUID, error) {
	query := `
		INSERT INTO weekly_rules (
			id, court_id, weekday, open_minute, close_minute,
			slot_minutes, buffer_minutes, effective_from, effective_to, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rule.ID, rule.CourtID, int(rule.Weekday),
		rule.OpenMinute, rule.CloseMinute, rule.SlotMinutes, rule.BufferMinutes,
		datePtrToPgtype(rule.EffectiveFrom), datePtrToPgtype(rule.EffectiveTo),
		rule.IsActive,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("court does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create weekly rule", err)
	}
	return id, nil
}

func (r *WeeklyRuleRepository) Deactivate(ctx context.Context, tx db.DBTX, ruleID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE weekly_rules SET is_active = false WHERE id = $1`, ruleID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate weekly rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("weekly rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WeeklyRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.WeeklyRule, error) {
	query := `
		SELECT id, court_id, weekday, open_minute, close_minute,
		       slot_minutes, buffer_minutes, effective_from, effective_to,
		       is_active, created_at
		FROM weekly_rules
		WHERE id = $1
	`

	rule, err := scanWeeklyRule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("weekly rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find weekly rule", err)
	}
	return rule, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeeklyRule(row rowScanner) (*schedule.WeeklyRule, error) {
	var (
		id, courtID                                           uuid.UUID
		weekday, openMin, closeMin, slotMin, bufferMin        int
		effectiveFrom, effectiveTo                            pgtype.Date
		isActive                                              bool
		createdAt                                             pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &courtID, &weekday, &openMin, &closeMin,
		&slotMin, &bufferMin, &effectiveFrom, &effectiveTo,
		&isActive, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	return &schedule.WeeklyRule{
		ID:            id,
		CourtID:       courtID,
		Weekday:       schedule.Weekday(weekday),
		OpenMinute:    openMin,
		CloseMinute:   closeMin,
		SlotMinutes:   slotMin,
		BufferMinutes: bufferMin,
		EffectiveFrom: datePtrFromPgtype(effectiveFrom),
		EffectiveTo:   datePtrFromPgtype(effectiveTo),
		IsActive:      isActive,
		CreatedAt:     createdAt.Time,
	}, nil
}

func datePtrToPgtype(d *schedule.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func datePtrFromPgtype(pd pgtype.Date) *schedule.Date {
	if !pd.Valid {
		return nil
	}
	d := schedule.DateOf(pd.Time)
	return &d
}

type BlackoutRepository struct {
	pool *pgxpool.Pool
}

func NewBlackoutRepository(pool *pgxpool.Pool) *BlackoutRepository {
	return &BlackoutRepository{pool: pool}
}

func (r *BlackoutRepository) Create(ctx context.Context, tx db.DBTX, b commands.BlackoutRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO blackouts (id, court_id, start_at, end_at, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, b.ID, b.CourtID, b.StartAt, b.EndAt, b.Reason).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("court does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create blackout", err)
	}
	return id, nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM blackouts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blackout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blackout not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BlackoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BlackoutRecord, error) {
	query := `
		SELECT id, court_id, start_at, end_at, reason
		FROM blackouts
		WHERE id = $1
	`

	var (
		record         commands.BlackoutRecord
		startAt, endAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.CourtID, &startAt, &endAt, &record.Reason,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blackout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blackout", err)
	}
	record.StartAt = startAt.Time
	record.EndAt = endAt.Time
	return &record, nil
}
