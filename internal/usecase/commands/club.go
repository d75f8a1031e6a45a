package commands

import (
	"context"

	"padelhub/internal/domain/club"
	"padelhub/internal/domain/court"
	"padelhub/internal/domain/user"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrClubNotFound  = errs.New("club not found")
	ErrCourtNotFound = errs.New("court not found")
	ErrNotClubOwner  = errs.New("actor does not own this club")
)

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) isOperator() bool {
	return a.Role == user.RoleAdmin
}

type CreateClubParams struct {
	Name     string
	Timezone string
}

type CreateCourtParams struct {
	ClubID  uuid.UUID
	Name    string
	Surface string
	Indoor  bool
}

type ClubCommands interface {
	CreateClub(ctx context.Context, actor Actor, params CreateClubParams) (uuid.UUID, error)
	CreateCourt(ctx context.Context, actor Actor, params CreateCourtParams) (uuid.UUID, error)
}

type clubCommandsImpl struct {
	clubs  ClubRepository
	courts CourtRepository
	pool   *pgxpool.Pool
}

func NewClubCommands(clubs ClubRepository, courts CourtRepository, pool *pgxpool.Pool) ClubCommands {
	return &clubCommandsImpl{
		clubs:  clubs,
		courts: courts,
		pool:   pool,
	}
}

func (c *clubCommandsImpl) CreateClub(ctx context.Context, actor Actor, params CreateClubParams) (uuid.UUID, error) {
	entity, err := club.NewClub(actor.ID, params.Name, params.Timezone)
	if err != nil {
		return uuid.Nil, err
	}

	return shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.clubs.Create(ctx, tx, entity)
	})
}

func (c *clubCommandsImpl) CreateCourt(ctx context.Context, actor Actor, params CreateCourtParams) (uuid.UUID, error) {
	if err := c.requireClubOwnership(ctx, actor, params.ClubID); err != nil {
		return uuid.Nil, err
	}

	entity, err := court.NewCourt(params.ClubID, params.Name, court.Surface(params.Surface), params.Indoor)
	if err != nil {
		return uuid.Nil, err
	}

	return shared.WithDefaultRetry(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.courts.Create(ctx, tx, entity)
	})
}

func (c *clubCommandsImpl) requireClubOwnership(ctx context.Context, actor Actor, clubID uuid.UUID) error {
	entity, err := c.clubs.FindByID(ctx, clubID)
	if err != nil {
		return errs.Mark(err, ErrClubNotFound)
	}
	if actor.isOperator() {
		return nil
	}
	if !entity.IsOwnedBy(actor.ID) {
		return ErrNotClubOwner
	}
	return nil
}
