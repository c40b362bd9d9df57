package favorite

import (
	"context"
	"time"

	birddomain "avesnavarre/backend/internal/domain/bird"
	domain "avesnavarre/backend/internal/domain/favorite"
)

// Service encapsulates favorites use cases.
type Service struct {
	repo    domain.Repository
	birds   birddomain.Repository
	nowFunc func() time.Time
}

// NewService constructs a favorites service.
func NewService(repo domain.Repository, birds birddomain.Repository) *Service {
	return &Service{
		repo:    repo,
		birds:   birds,
		nowFunc: time.Now,
	}
}

// Add marks a bird as a favorite of the user. Favoriting an unknown bird
// fails with the bird not-found error; favoriting twice is a no-op.
func (s *Service) Add(ctx context.Context, userID, birdID int64) error {
	if _, err := s.birds.GetByID(ctx, birdID); err != nil {
		return err
	}
	return s.repo.Add(ctx, &domain.Favorite{
		UserID:    userID,
		BirdID:    birdID,
		CreatedAt: s.nowFunc().UTC(),
	})
}

// Remove drops the favorite pair.
func (s *Service) Remove(ctx context.Context, userID, birdID int64) error {
	return s.repo.Remove(ctx, userID, birdID)
}

// List returns the user's favorited birds.
func (s *Service) List(ctx context.Context, userID int64) ([]*birddomain.Bird, error) {
	return s.repo.ListByUser(ctx, userID)
}
