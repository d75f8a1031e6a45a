package commands

import (
	"context"
	"time"

	"padelhub/internal/domain/schedule"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/clock"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRuleNotFound     = errs.New("weekly rule not found")
	ErrBlackoutNotFound = errs.New("blackout not found")
	ErrInvalidBlackout  = errs.New("blackout window is invalid")
)

type CreateWeeklyRuleParams struct {
	CourtID       uuid.UUID
	Weekday       int
	OpenMinute    int
	CloseMinute   int
	SlotMinutes   int
	BufferMinutes int
	EffectiveFrom *schedule.Date
	EffectiveTo   *schedule.Date
}

type CreateBlackoutParams struct {
	CourtID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Reason  string
}

type ScheduleCommands interface {
	CreateWeeklyRule(ctx context.Context, actor Actor, params CreateWeeklyRuleParams) (uuid.UUID, error)
	DeactivateWeeklyRule(ctx context.Context, actor Actor, ruleID uuid.UUID) error
	CreateBlackout(ctx context.Context, actor Actor, params CreateBlackoutParams) (uuid.UUID, error)
	DeleteBlackout(ctx context.Context, actor Actor, blackoutID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	rules       WeeklyRuleRepository
	blackouts   BlackoutRepository
	courts      CourtRepository
	clubs       ClubRepository
	invalidator AvailabilityInvalidator
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewScheduleCommands(
	rules WeeklyRuleRepository,
	blackouts BlackoutRepository,
	courts CourtRepository,
	clubs ClubRepository,
	invalidator AvailabilityInvalidator,
	pool *pgxpool.Pool,
	clk clock.Clock,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		rules:       rules,
		blackouts:   blackouts,
		courts:      courts,
		clubs:       clubs,
		invalidator: invalidator,
		pool:        pool,
		clock:       clk,
	}
}

func (s *scheduleCommandsImpl) CreateWeeklyRule(ctx context.Context, actor Actor, params CreateWeeklyRuleParams) (uuid.UUID, error) {
	if err := s.requireCourtOwnership(ctx, actor, params.CourtID); err != nil {
		return uuid.Nil, err
	}

	rule := schedule.WeeklyRule{
		ID:            uuid.New(),
		CourtID:       params.CourtID,
		Weekday:       schedule.Weekday(params.Weekday),
		OpenMinute:    params.OpenMinute,
		CloseMinute:   params.CloseMinute,
		SlotMinutes:   params.SlotMinutes,
		BufferMinutes: params.BufferMinutes,
		EffectiveFrom: params.EffectiveFrom,
		EffectiveTo:   params.EffectiveTo,
		IsActive:      true,
		CreatedAt:     s.clock.Now(),
	}
	if err := rule.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, err := shared.WithDefaultRetry(ctx, s.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return s.rules.Create(ctx, tx, rule)
	})
	if err != nil {
		return uuid.Nil, err
	}

	// A weekly rule touches every future day with its weekday; drop all
	// cached days for the court.
	s.invalidator.Invalidate(ctx, params.CourtID)
	return id, nil
}

func (s *scheduleCommandsImpl) DeactivateWeeklyRule(ctx context.Context, actor Actor, ruleID uuid.UUID) error {
	rule, err := s.rules.FindByID(ctx, ruleID)
	if err != nil {
		return errs.Mark(err, ErrRuleNotFound)
	}
	if err := s.requireCourtOwnership(ctx, actor, rule.CourtID); err != nil {
		return err
	}

	_, err = shared.WithDefaultRetry(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, s.rules.Deactivate(ctx, tx, ruleID)
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, rule.CourtID)
	return nil
}

func (s *scheduleCommandsImpl) CreateBlackout(ctx context.Context, actor Actor, params CreateBlackoutParams) (uuid.UUID, error) {
	if !params.StartAt.Before(params.EndAt) {
		return uuid.Nil, ErrInvalidBlackout
	}
	if err := s.requireCourtOwnership(ctx, actor, params.CourtID); err != nil {
		return uuid.Nil, err
	}

	record := BlackoutRecord{
		ID:      uuid.New(),
		CourtID: params.CourtID,
		StartAt: params.StartAt,
		EndAt:   params.EndAt,
		Reason:  params.Reason,
	}

	id, err := shared.WithDefaultRetry(ctx, s.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return s.blackouts.Create(ctx, tx, record)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.invalidator.Invalidate(ctx, params.CourtID, blackoutDates(record)...)
	return id, nil
}

func (s *scheduleCommandsImpl) DeleteBlackout(ctx context.Context, actor Actor, blackoutID uuid.UUID) error {
	record, err := s.blackouts.FindByID(ctx, blackoutID)
	if err != nil {
		return errs.Mark(err, ErrBlackoutNotFound)
	}
	if err := s.requireCourtOwnership(ctx, actor, record.CourtID); err != nil {
		return err
	}

	_, err = shared.WithDefaultRetry(ctx, s.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, s.blackouts.Delete(ctx, tx, blackoutID)
	})
	if err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, record.CourtID, blackoutDates(*record)...)
	return nil
}

func (s *scheduleCommandsImpl) requireCourtOwnership(ctx context.Context, actor Actor, courtID uuid.UUID) error {
	courtEntity, err := s.courts.FindByID(ctx, courtID)
	if err != nil {
		return errs.Mark(err, ErrCourtNotFound)
	}
	clubEntity, err := s.clubs.FindByID(ctx, courtEntity.ClubID())
	if err != nil {
		return errs.Mark(err, ErrClubNotFound)
	}
	if actor.isOperator() {
		return nil
	}
	if !clubEntity.IsOwnedBy(actor.ID) {
		return ErrNotClubOwner
	}
	return nil
}

// blackoutDates enumerates the UTC dates a blackout touches so only those
// cache entries are dropped. Cached keys are date-keyed in the club's local
// date; UTC enumeration widened by a day on each side covers every offset.
func blackoutDates(record BlackoutRecord) []string {
	var dates []string
	start := schedule.DateOf(record.StartAt.UTC()).AddDays(-1)
	end := schedule.DateOf(record.EndAt.UTC()).AddDays(1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d.String())
	}
	return dates
}
