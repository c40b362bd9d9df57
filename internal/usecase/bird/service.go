package bird

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "avesnavarre/backend/internal/domain/bird"
)

// Service encapsulates species catalog use cases.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a bird catalog service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required to add a species.
type CreateInput struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Family         string `json:"family"`
	Description    string `json:"description"`
	Habitat        string `json:"habitat"`
	ImageURL       string `json:"image_url"`
}

// UpdateInput encapsulates partial species updates.
type UpdateInput struct {
	Name           *string `json:"name"`
	ScientificName *string `json:"scientific_name"`
	Family         *string `json:"family"`
	Description    *string `json:"description"`
	Habitat        *string `json:"habitat"`
	ImageURL       *string `json:"image_url"`
}

// List returns the full catalog ordered by name.
func (s *Service) List(ctx context.Context) ([]*domain.Bird, error) {
	return s.repo.List(ctx)
}

// Get retrieves a single species by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Bird, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new species.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Bird, error) {
	name := strings.TrimSpace(input.Name)
	scientific := strings.TrimSpace(input.ScientificName)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if scientific == "" {
		return nil, errors.New("scientific_name is required")
	}

	now := s.nowFunc().UTC()
	b := &domain.Bird{
		Name:           name,
		ScientificName: scientific,
		Family:         strings.TrimSpace(input.Family),
		Description:    strings.TrimSpace(input.Description),
		Habitat:        strings.TrimSpace(input.Habitat),
		ImageURL:       strings.TrimSpace(input.ImageURL),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies a partial update to an existing species.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Bird, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Update(input.Name, input.ScientificName, input.Family, input.Description, input.Habitat, input.ImageURL)
	b.UpdatedAt = s.nowFunc().UTC()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes a species from the catalog.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
