package response

import (
	"time"

	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WeeklyRuleResponse struct {
	ID            uuid.UUID  `json:"id"`
	CourtID       uuid.UUID  `json:"court_id"`
	Weekday       int        `json:"weekday"`
	OpenTime      string     `json:"open_time"`
	CloseTime     string     `json:"close_time"`
	SlotMinutes   int        `json:"slot_minutes"`
	BufferMinutes int        `json:"buffer_minutes"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type BlackoutResponse struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func FromWeeklyRuleViews(views []*queries.WeeklyRuleView) []*WeeklyRuleResponse {
	out := make([]*WeeklyRuleResponse, len(views))
	for i, v := range views {
		var resp WeeklyRuleResponse
		_ = copier.Copy(&resp, v)
		out[i] = &resp
	}
	return out
}

func FromBlackoutViews(views []*queries.BlackoutView) []*BlackoutResponse {
	out := make([]*BlackoutResponse, len(views))
	for i, v := range views {
		var resp BlackoutResponse
		_ = copier.Copy(&resp, v)
		out[i] = &resp
	}
	return out
}
