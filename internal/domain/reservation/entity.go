package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotInPast           = errors.New("slot starts in the past")
	ErrReservationCancelled = errors.New("reservation is already cancelled")
	ErrNotReservationOwner  = errors.New("reservation belongs to another player")
)

type Reservation struct {
	id        uuid.UUID
	courtID   uuid.UUID
	playerID  uuid.UUID
	timeSlot  TimeSlot
	status    Status
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(courtID, playerID uuid.UUID, slot TimeSlot, note Note, now time.Time) (*Reservation, error) {
	if err := slot.ValidateNotPast(now); err != nil {
		return nil, ErrSlotInPast
	}
	return &Reservation{
		id:       uuid.New(),
		courtID:  courtID,
		playerID: playerID,
		timeSlot: slot,
		status:   StatusConfirmed,
		note:     note,
	}, nil
}

func ReconstructReservation(
	id, courtID, playerID uuid.UUID,
	slot TimeSlot,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		courtID:   courtID,
		playerID:  playerID,
		timeSlot:  slot,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel enforces that only the booking player (or an operator acting with
// elevated rights, asOperator) may cancel, and that cancelling is idempotent
// in effect but rejected as an error on already-cancelled rows.
func (r *Reservation) Cancel(actorID uuid.UUID, asOperator bool) error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if !asOperator && r.playerID != actorID {
		return ErrNotReservationOwner
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.Blocks()
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.timeSlot.End())
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CourtID() uuid.UUID   { return r.courtID }
func (r *Reservation) PlayerID() uuid.UUID  { return r.playerID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Note() Note           { return r.note }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
