package postgres

import (
	"context"
	"errors"

	domain "avesnavarre/backend/internal/domain/bird"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BirdRepository persists the species catalog in PostgreSQL.
type BirdRepository struct {
	pool *pgxpool.Pool
}

// NewBirdRepository constructs a repository.
func NewBirdRepository(pool *pgxpool.Pool) *BirdRepository {
	return &BirdRepository{pool: pool}
}

var _ domain.Repository = (*BirdRepository)(nil)

const birdColumns = `id, name, scientific_name, family, description, habitat, image_url, created_at, updated_at`

// Create inserts a new species, filling in the generated id.
func (r *BirdRepository) Create(ctx context.Context, bird *domain.Bird) error {
	const query = `
INSERT INTO birds (name, scientific_name, family, description, habitat, image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`
	err := r.pool.QueryRow(ctx, query,
		bird.Name,
		bird.ScientificName,
		bird.Family,
		bird.Description,
		bird.Habitat,
		bird.ImageURL,
		bird.CreatedAt,
		bird.UpdatedAt,
	).Scan(&bird.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSpecies
		}
		return err
	}
	return nil
}

// GetByID fetches a species by id.
func (r *BirdRepository) GetByID(ctx context.Context, id int64) (*domain.Bird, error) {
	const query = `
SELECT ` + birdColumns + `
FROM birds WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	b, err := scanBird(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns the catalog ordered by common name.
func (r *BirdRepository) List(ctx context.Context) ([]*domain.Bird, error) {
	const query = `
SELECT ` + birdColumns + `
FROM birds ORDER BY name
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var birds []*domain.Bird
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

// Update modifies an existing species record.
func (r *BirdRepository) Update(ctx context.Context, bird *domain.Bird) error {
	const query = `
UPDATE birds
SET name = $2, scientific_name = $3, family = $4, description = $5, habitat = $6, image_url = $7, updated_at = $8
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query,
		bird.ID,
		bird.Name,
		bird.ScientificName,
		bird.Family,
		bird.Description,
		bird.Habitat,
		bird.ImageURL,
		bird.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSpecies
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a species by id.
func (r *BirdRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM birds WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBird(row pgx.Row) (*domain.Bird, error) {
	var b domain.Bird
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.ScientificName,
		&b.Family,
		&b.Description,
		&b.Habitat,
		&b.ImageURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
