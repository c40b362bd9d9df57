package postgres

import (
	"context"
	"errors"
	"time"

	domain "avesnavarre/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a repository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ domain.UserRepository = (*UserRepository)(nil)

const userColumns = `id, email, name, surname, role, password_hash, google_id, avatar_url, created_at, updated_at`

// Create inserts a new user record, filling in the generated id.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
INSERT INTO users (email, name, surname, role, password_hash, google_id, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`
	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.Surname,
		user.Role,
		user.PasswordHash,
		user.GoogleID,
		user.AvatarURL,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users WHERE email = $1
`
	row := r.pool.QueryRow(ctx, query, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns users filtered by the provided criteria.
func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	query := `
SELECT ` + userColumns + `
FROM users
`
	var args []any
	if filter.Role != "" {
		query += "WHERE role = $1 "
		args = append(args, filter.Role)
	}
	query += "ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole reassigns the user's role.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role domain.Role, updatedAt time.Time) error {
	const query = `
UPDATE users
SET role = $2, updated_at = $3
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query, id, role, updatedAt)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// LinkGoogleID backfills the Google linkage for an existing account.
func (r *UserRepository) LinkGoogleID(ctx context.Context, id int64, googleID string, updatedAt time.Time) error {
	const query = `
UPDATE users
SET google_id = $2, updated_at = $3
WHERE id = $1
`
	ct, err := r.pool.Exec(ctx, query, id, googleID, updatedAt)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ReconcileOAuth inserts the candidate or converges on the existing row with
// the same email. An empty google_id on the existing row is backfilled in
// the same statement; a linked row comes back unchanged. Single statement so
// concurrent first logins cannot create duplicates.
func (r *UserRepository) ReconcileOAuth(ctx context.Context, candidate *domain.User) (*domain.User, error) {
	const query = `
INSERT INTO users (email, name, surname, role, password_hash, google_id, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (email) DO UPDATE
SET google_id = CASE WHEN users.google_id = '' THEN EXCLUDED.google_id ELSE users.google_id END,
    updated_at = CASE WHEN users.google_id = '' THEN EXCLUDED.updated_at ELSE users.updated_at END
RETURNING ` + userColumns + `
`
	row := r.pool.QueryRow(ctx, query,
		candidate.Email,
		candidate.Name,
		candidate.Surname,
		candidate.Role,
		candidate.PasswordHash,
		candidate.GoogleID,
		candidate.AvatarURL,
		candidate.CreatedAt,
		candidate.UpdatedAt,
	)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Surname,
		&u.Role,
		&u.PasswordHash,
		&u.GoogleID,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
