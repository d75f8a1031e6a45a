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

type ClubReadStore struct {
	pool *pgxpool.Pool
}

func NewClubReadStore(pool *pgxpool.Pool) *ClubReadStore {
	return &ClubReadStore{pool: pool}
}

func (s *ClubReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClubView, error) {
	query := `
		SELECT id, owner_id, name, timezone, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`

	view, err := scanClubView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("club not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find club", err)
	}
	return view, nil
}

func (s *ClubReadStore) FindAll(ctx context.Context) ([]*queries.ClubView, error) {
	query := `
		SELECT id, owner_id, name, timezone, created_at, updated_at
		FROM clubs
		ORDER BY name
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clubs", err)
	}
	defer rows.Close()

	var views []*queries.ClubView
	for rows.Next() {
		view, err := scanClubView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan club", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list clubs", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClubView(row rowScanner) (*queries.ClubView, error) {
	var (
		view                 queries.ClubView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Timezone, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
