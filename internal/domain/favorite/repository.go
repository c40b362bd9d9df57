package favorite

import (
	"context"

	"avesnavarre/backend/internal/domain/bird"
)

// Repository defines persistence behaviours for user favorites.
type Repository interface {
	// Add records the pair. Adding an already-favorited bird is a no-op.
	Add(ctx context.Context, fav *Favorite) error
	Remove(ctx context.Context, userID, birdID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*bird.Bird, error)
}
