package usecase

import (
	"padelhub/internal/domain/user"
	"padelhub/internal/pkg/errs"
	"padelhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid token")

type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	if claims.Kind != jwt.KindAccess {
		return uuid.Nil, "", ErrInvalidToken
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}

	return claims.UserID, role, nil
}
