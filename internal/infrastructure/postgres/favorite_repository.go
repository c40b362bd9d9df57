package postgres

import (
	"context"

	birddomain "avesnavarre/backend/internal/domain/bird"
	domain "avesnavarre/backend/internal/domain/favorite"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoriteRepository persists user favorites in PostgreSQL.
type FavoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository constructs a repository.
func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

var _ domain.Repository = (*FavoriteRepository)(nil)

// Add records the pair; favoriting twice is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, fav *domain.Favorite) error {
	const query = `
INSERT INTO favorites (user_id, bird_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, bird_id) DO NOTHING
`
	_, err := r.pool.Exec(ctx, query, fav.UserID, fav.BirdID, fav.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return birddomain.ErrNotFound
		}
		return err
	}
	return nil
}

// Remove drops the favorite pair.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, birdID int64) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND bird_id = $2`
	ct, err := r.pool.Exec(ctx, query, userID, birdID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser returns the user's favorited birds, most recent first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*birddomain.Bird, error) {
	const query = `
SELECT b.id, b.name, b.scientific_name, b.family, b.description, b.habitat, b.image_url, b.created_at, b.updated_at
FROM favorites f
JOIN birds b ON b.id = f.bird_id
WHERE f.user_id = $1
ORDER BY f.created_at DESC
`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var birds []*birddomain.Bird
	for rows.Next() {
		b, err := scanBird(rows)
		if err != nil {
			return nil, err
		}
		birds = append(birds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return birds, nil
}
