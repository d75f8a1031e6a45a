package request

import (
	"strings"
	"time"

	"padelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CourtID uuid.UUID `json:"court_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Note    *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.CreateReservationParams{
		CourtID: r.CourtID,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Note:    note,
	}
}
