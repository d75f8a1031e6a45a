package queries

import (
	"context"

	"github.com/google/uuid"
)

type WeeklyRuleReadStore interface {
	FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*WeeklyRuleView, error)
}

type BlackoutReadStore interface {
	FindByCourtID(ctx context.Context, courtID uuid.UUID) ([]*BlackoutView, error)
}

type ScheduleQueries interface {
	ListWeeklyRules(ctx context.Context, courtID uuid.UUID) ([]*WeeklyRuleView, error)
	ListBlackouts(ctx context.Context, courtID uuid.UUID) ([]*BlackoutView, error)
}

type scheduleQueriesImpl struct {
	rules     WeeklyRuleReadStore
	blackouts BlackoutReadStore
}

func NewScheduleQueries(rules WeeklyRuleReadStore, blackouts BlackoutReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{rules: rules, blackouts: blackouts}
}

func (q *scheduleQueriesImpl) ListWeeklyRules(ctx context.Context, courtID uuid.UUID) ([]*WeeklyRuleView, error) {
	return q.rules.FindByCourtID(ctx, courtID)
}

func (q *scheduleQueriesImpl) ListBlackouts(ctx context.Context, courtID uuid.UUID) ([]*BlackoutView, error) {
	return q.blackouts.FindByCourtID(ctx, courtID)
}
