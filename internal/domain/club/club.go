package club

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("club name cannot be empty")
	ErrInvalidTimezone = errors.New("invalid IANA timezone")
)

// Club is the tenant boundary. Every court, schedule rule and reservation
// hangs off exactly one club, and the club's timezone anchors all of its
// wall-clock schedule rules.
type Club struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	timezone  string
	createdAt time.Time
	updatedAt time.Time
}

func NewClub(ownerID uuid.UUID, name, timezone string) (*Club, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := time.LoadLocation(timezone); err != nil || timezone == "" {
		return nil, ErrInvalidTimezone
	}
	return &Club{
		id:       uuid.New(),
		ownerID:  ownerID,
		name:     name,
		timezone: timezone,
	}, nil
}

func ReconstructClub(id, ownerID uuid.UUID, name, timezone string, createdAt, updatedAt time.Time) *Club {
	return &Club{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		timezone:  timezone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Club) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func (c *Club) IsOwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *Club) ID() uuid.UUID        { return c.id }
func (c *Club) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Club) Name() string         { return c.name }
func (c *Club) Timezone() string     { return c.timezone }
func (c *Club) CreatedAt() time.Time { return c.createdAt }
func (c *Club) UpdatedAt() time.Time { return c.updatedAt }
