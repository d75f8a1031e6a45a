package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// SlotView is the wire shape of one availability slot. Existing clients rely
// on the {start, end, available} triple; status and reason are additive.
type SlotView struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
}

type ClubView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourtView struct {
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

type WeeklyRuleView struct {
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

type BlackoutView struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	CourtName string    `json:"court_name"`
	ClubName  string    `json:"club_name"`
	PlayerID  uuid.UUID `json:"player_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
