package commands

import (
	"context"
	"time"

	"padelhub/internal/domain/club"
	"padelhub/internal/domain/court"
	"padelhub/internal/domain/reservation"
	"padelhub/internal/domain/schedule"
	"padelhub/internal/domain/user"
	"padelhub/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository; every
// mutating method takes the DBTX it must run on so commands control
// transaction boundaries.

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type ClubRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *club.Club) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*club.Club, error)
}

type CourtRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *court.Court) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type WeeklyRuleRepository interface {
	Create(ctx context.Context, tx db.DBTX, rule schedule.WeeklyRule) (uuid.UUID, error)
	Deactivate(ctx context.Context, tx db.DBTX, ruleID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.WeeklyRule, error)
}

type BlackoutRecord struct {
	ID      uuid.UUID
	CourtID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Reason  string
}

type BlackoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, b BlackoutRecord) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*BlackoutRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

// AvailabilityInvalidator drops cached day availability after a write that
// can change it. Best effort: failures are logged, never returned.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, courtID uuid.UUID, dates ...string)
}
