package commands

import (
	"context"

	"padelhub/internal/domain/user"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/pkg/jwt"
	"padelhub/internal/pkg/password"
	"padelhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user is inactive")
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidRefresh     = errs.New("invalid refresh token")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   user.Role
	Tokens TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, email, plainPassword, name string) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

type authCommandsImpl struct {
	users UserRepository
	jwt   *jwt.Service
	pool  *pgxpool.Pool
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service, pool *pgxpool.Pool) AuthCommands {
	return &authCommandsImpl{
		users: users,
		jwt:   jwtService,
		pool:  pool,
	}
}

// Register creates a player account. Owners and admins are provisioned out
// of band, never through the public signup endpoint.
func (a *authCommandsImpl) Register(ctx context.Context, email, plainPassword, name string) (*AuthResult, error) {
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	entity, err := user.NewUser(email, hash, name, user.RolePlayer)
	if err != nil {
		return nil, err
	}

	_, err = shared.WithDefaultRetry(ctx, a.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return a.users.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, err
	}

	return a.issueTokens(entity)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	entity, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := password.ComparePassword(entity.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := entity.CanAuthenticate(); err != nil {
		return nil, ErrUserInactive
	}

	_, err = shared.WithDefaultRetry(ctx, a.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, a.users.UpdateLastLogin(ctx, tx, entity.ID())
	})
	if err != nil {
		return nil, err
	}

	return a.issueTokens(entity)
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil || claims.Kind != jwt.KindRefresh {
		return nil, ErrInvalidRefresh
	}

	entity, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRefresh)
	}
	if err := entity.CanAuthenticate(); err != nil {
		return nil, ErrUserInactive
	}

	return a.issueTokens(entity)
}

func (a *authCommandsImpl) issueTokens(entity *user.User) (*AuthResult, error) {
	access, err := a.jwt.GenerateAccessToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}
	refresh, err := a.jwt.GenerateRefreshToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign refresh token")
	}

	return &AuthResult{
		UserID: entity.ID(),
		Email:  entity.Email(),
		Name:   entity.Name(),
		Role:   entity.Role(),
		Tokens: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}
