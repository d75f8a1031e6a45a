package queries

import (
	"context"

	"github.com/google/uuid"
)

type ClubReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClubView, error)
	FindAll(ctx context.Context) ([]*ClubView, error)
}

type CourtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	FindByClubID(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error)
}

type CourtQueries interface {
	GetClub(ctx context.Context, id uuid.UUID) (*ClubView, error)
	ListClubs(ctx context.Context) ([]*ClubView, error)
	GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListCourtsByClub(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error)
}

type courtQueriesImpl struct {
	clubs  ClubReadStore
	courts CourtReadStore
}

func NewCourtQueries(clubs ClubReadStore, courts CourtReadStore) CourtQueries {
	return &courtQueriesImpl{clubs: clubs, courts: courts}
}

func (q *courtQueriesImpl) GetClub(ctx context.Context, id uuid.UUID) (*ClubView, error) {
	return q.clubs.FindByID(ctx, id)
}

func (q *courtQueriesImpl) ListClubs(ctx context.Context) ([]*ClubView, error) {
	return q.clubs.FindAll(ctx)
}

func (q *courtQueriesImpl) GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	return q.courts.FindByID(ctx, id)
}

func (q *courtQueriesImpl) ListCourtsByClub(ctx context.Context, clubID uuid.UUID) ([]*CourtView, error) {
	return q.courts.FindByClubID(ctx, clubID)
}
