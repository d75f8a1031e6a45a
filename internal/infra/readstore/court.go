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

type CourtReadStore struct {
	pool *pgxpool.Pool
}

func NewCourtReadStore(pool *pgxpool.Pool) *CourtReadStore {
	return &CourtReadStore{pool: pool}
}

func (s *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	query := `
		SELECT c.id, c.club_id, cl.name, c.name, c.surface, c.indoor, c.is_active,
		       c.created_at, c.updated_at
		FROM courts c
		JOIN clubs cl ON cl.id = c.club_id
		WHERE c.id = $1
	`

	view, err := scanCourtView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return view, nil
}

func (s *CourtReadStore) FindByClubID(ctx context.Context, clubID uuid.UUID) ([]*queries.CourtView, error) {
	query := `
		SELECT c.id, c.club_id, cl.name, c.name, c.surface, c.indoor, c.is_active,
		       c.created_at, c.updated_at
		FROM courts c
		JOIN clubs cl ON cl.id = c.club_id
		WHERE c.club_id = $1
		ORDER BY c.name
	`

	rows, err := s.pool.Query(ctx, query, clubID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var views []*queries.CourtView
	for rows.Next() {
		view, err := scanCourtView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan court", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	return views, nil
}

func scanCourtView(row rowScanner) (*queries.CourtView, error) {
	var (
		view                 queries.CourtView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ClubID, &view.ClubName, &view.Name, &view.Surface,
		&view.Indoor, &view.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
