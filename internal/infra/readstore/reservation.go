package readstore

import (
	"context"

	"padelhub/internal/infra"
	"padelhub/internal/pkg/pgconv"
	"padelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewSelect = `
	SELECT r.id, r.court_id, c.name, cl.name, r.player_id,
	       r.start_at, r.end_at, r.status, r.note, r.created_at, r.updated_at
	FROM reservations r
	JOIN courts c ON c.id = r.court_id
	JOIN clubs cl ON cl.id = c.club_id
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := scanReservationView(s.pool.QueryRow(ctx, reservationViewSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindByPlayerID(ctx context.Context, playerID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + `
		WHERE r.player_id = $1
		ORDER BY r.start_at DESC
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return views, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view                                 queries.ReservationView
		startAt, endAt, createdAt, updatedAt pgtype.Timestamptz
		note                                 pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.CourtID, &view.CourtName, &view.ClubName, &view.PlayerID,
		&startAt, &endAt, &view.Status, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.StartAt = startAt.Time
	view.EndAt = endAt.Time
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
