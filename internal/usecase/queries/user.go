package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByID(ctx, id)
}
