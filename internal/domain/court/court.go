package court

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("court name cannot be empty")
)

type Surface string

const (
	SurfaceCrystal   Surface = "crystal"
	SurfacePanoramic Surface = "panoramic"
	SurfaceWall      Surface = "wall"
)

func (s Surface) IsValid() bool {
	switch s {
	case SurfaceCrystal, SurfacePanoramic, SurfaceWall:
		return true
	default:
		return false
	}
}

type Court struct {
	id        uuid.UUID
	clubID    uuid.UUID
	name      string
	surface   Surface
	indoor    bool
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCourt(clubID uuid.UUID, name string, surface Surface, indoor bool) (*Court, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !surface.IsValid() {
		surface = SurfaceWall
	}
	return &Court{
		id:       uuid.New(),
		clubID:   clubID,
		name:     name,
		surface:  surface,
		indoor:   indoor,
		isActive: true,
	}, nil
}

func ReconstructCourt(
	id, clubID uuid.UUID,
	name string,
	surface Surface,
	indoor, isActive bool,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:        id,
		clubID:    clubID,
		name:      name,
		surface:   surface,
		indoor:    indoor,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) ClubID() uuid.UUID    { return c.clubID }
func (c *Court) Name() string         { return c.name }
func (c *Court) Surface() Surface     { return c.surface }
func (c *Court) Indoor() bool         { return c.indoor }
func (c *Court) IsActive() bool       { return c.isActive }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
