package response

import (
	"padelhub/internal/usecase/commands"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	User        AuthUserResponse `json:"user"`
}

func FromAuthResult(res *commands.AuthResult) AuthResponse {
	return AuthResponse{
		AccessToken: res.Tokens.AccessToken,
		User: AuthUserResponse{
			ID:    res.UserID,
			Email: res.Email,
			Name:  res.Name,
			Role:  string(res.Role),
		},
	}
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) MeResponse {
	return MeResponse{
		ID:       view.ID,
		Email:    view.Email,
		Name:     view.Name,
		Role:     view.Role,
		IsActive: view.IsActive,
	}
}
