package request

import (
	"github.com/google/uuid"
)

type CreateClubRequest struct {
	Name     string `json:"name" binding:"required"`
	Timezone string `json:"timezone" binding:"required"`
}

type CreateCourtRequest struct {
	ClubID  uuid.UUID `json:"club_id" binding:"required"`
	Name    string    `json:"name" binding:"required"`
	Surface string    `json:"surface" binding:"required,oneof=crystal panoramic wall"`
	Indoor  bool      `json:"indoor"`
}
