package auth

import (
	"context"
	"time"
)

// UserRepository defines persistence operations for portal users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, error)
	UpdateRole(ctx context.Context, id int64, role Role, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	// LinkGoogleID backfills the Google linkage for an existing account.
	LinkGoogleID(ctx context.Context, id int64, googleID string, updatedAt time.Time) error
	// ReconcileOAuth inserts the candidate, or when its email already exists,
	// backfills an empty linkage and leaves a linked record untouched. Keyed
	// on the unique email constraint so concurrent first logins converge on a
	// single row. Returns the winning record.
	ReconcileOAuth(ctx context.Context, candidate *User) (*User, error)
}

// UserFilter allows narrowing user queries.
type UserFilter struct {
	Role Role
}
