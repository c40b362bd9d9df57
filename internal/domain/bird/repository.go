package bird

import "context"

// Repository defines persistence behaviours for the species catalog.
type Repository interface {
	Create(ctx context.Context, bird *Bird) error
	GetByID(ctx context.Context, id int64) (*Bird, error)
	List(ctx context.Context) ([]*Bird, error)
	Update(ctx context.Context, bird *Bird) error
	Delete(ctx context.Context, id int64) error
}
