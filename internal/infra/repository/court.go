package repository

import (
	"context"

	"padelhub/internal/domain/court"
	"padelhub/internal/infra"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CourtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) *CourtRepository {
	return &CourtRepository{pool: pool}
}

func (r *CourtRepository) Create(ctx context.Context, tx db.DBTX, c *court.Court) (uuid.UUID, error) {
	query := `
		INSERT INTO courts (id, club_id, name, surface, indoor, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.ClubID(), c.Name(), string(c.Surface()), c.Indoor(), c.IsActive(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("club does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create court", err)
	}
	return id, nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	query := `
		SELECT id, club_id, name, surface, indoor, is_active, created_at, updated_at
		FROM courts
		WHERE id = $1
	`

	var (
		courtID, clubID      uuid.UUID
		name, surface        string
		indoor, isActive     bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&courtID, &clubID, &name, &surface, &indoor, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}

	return court.ReconstructCourt(
		courtID, clubID, name, court.Surface(surface), indoor, isActive,
		createdAt.Time, updatedAt.Time,
	), nil
}
