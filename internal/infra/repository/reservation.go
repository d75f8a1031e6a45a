package repository

import (
	"context"

	"padelhub/internal/domain/reservation"
	"padelhub/internal/infra"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create relies on the reservations exclusion constraint for overlap safety:
// two concurrent inserts for intersecting intervals on the same court cannot
// both commit, and the loser surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	query := `
		INSERT INTO reservations (id, court_id, player_id, start_at, end_at, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	note := pgtype.Text{String: res.Note().String(), Valid: !res.Note().IsEmpty()}

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		res.ID(), res.CourtID(), res.PlayerID(),
		res.TimeSlot().Start(), res.TimeSlot().End(),
		res.Status().String(), note,
	).Scan(&id)
	if err != nil {
		if isExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation overlaps an existing booking", err, infra.KindConflict)
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("court or player does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT id, court_id, player_id, start_at, end_at, status, note, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var (
		resID, courtID, playerID             uuid.UUID
		startAt, endAt, createdAt, updatedAt pgtype.Timestamptz
		status                               string
		note                                 pgtype.Text
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&resID, &courtID, &playerID, &startAt, &endAt, &status, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := reservation.NewTimeSlot(startAt.Time, endAt.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation interval is invalid", err)
	}

	return reservation.ReconstructReservation(
		resID, courtID, playerID,
		slot,
		reservation.Status(status),
		reservation.NewNote(note.String),
		createdAt.Time, updatedAt.Time,
	), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
