package response

import (
	"time"

	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClubResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	ClubID    uuid.UUID `json:"club_id"`
	ClubName  string    `json:"club_name"`
	Name      string    `json:"name"`
	Surface   string    `json:"surface"`
	Indoor    bool      `json:"indoor"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClubView(view *queries.ClubView) *ClubResponse {
	var resp ClubResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromClubViews(views []*queries.ClubView) []*ClubResponse {
	out := make([]*ClubResponse, len(views))
	for i, v := range views {
		out[i] = FromClubView(v)
	}
	return out
}

func FromCourtView(view *queries.CourtView) *CourtResponse {
	var resp CourtResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCourtViews(views []*queries.CourtView) []*CourtResponse {
	out := make([]*CourtResponse, len(views))
	for i, v := range views {
		out[i] = FromCourtView(v)
	}
	return out
}
