package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByPlayerID(ctx context.Context, playerID uuid.UUID, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]*ReservationView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByPlayerID(ctx, playerID, int32(limit))
}
