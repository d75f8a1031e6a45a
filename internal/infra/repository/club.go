package repository

import (
	"context"

	"padelhub/internal/domain/club"
	"padelhub/internal/infra"
	"padelhub/internal/infra/db"
	"padelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClubRepository struct {
	pool *pgxpool.Pool
}

func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

func (r *ClubRepository) Create(ctx context.Context, tx db.DBTX, c *club.Club) (uuid.UUID, error) {
	query := `
		INSERT INTO clubs (id, owner_id, name, timezone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, c.ID(), c.OwnerID(), c.Name(), c.Timezone()).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("club owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create club", err)
	}
	return id, nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*club.Club, error) {
	query := `
		SELECT id, owner_id, name, timezone, created_at, updated_at
		FROM clubs
		WHERE id = $1
	`

	var (
		clubID, ownerID      uuid.UUID
		name, timezone       string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&clubID, &ownerID, &name, &timezone, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("club not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find club", err)
	}

	return club.ReconstructClub(clubID, ownerID, name, timezone, createdAt.Time, updatedAt.Time), nil
}
