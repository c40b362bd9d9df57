package user

import (
	"context"
	"strings"
	"time"

	domain "avesnavarre/backend/internal/domain/auth"
)

// Service provides user management use cases for administrative workflows.
type Service struct {
	repo    domain.UserRepository
	nowFunc func() time.Time
}

// NewService constructs a user service around the provided repository.
func NewService(repo domain.UserRepository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// Filter captures supported filters for listing users.
type Filter struct {
	Role string
}

// List returns users matching the supplied filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]*domain.User, error) {
	domainFilter := domain.UserFilter{}
	if trimmed := strings.TrimSpace(filter.Role); trimmed != "" {
		domainFilter.Role = domain.ParseRole(trimmed)
	}

	users, err := s.repo.List(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return sanitizeUsers(users), nil
}

// Get retrieves a single user by its identifier.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// UpdateRole reassigns the user's role; unknown roles coerce to user.
func (s *Service) UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error) {
	parsed := domain.ParseRole(role)
	if err := s.repo.UpdateRole(ctx, id, parsed, s.nowFunc().UTC()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the target user.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}

func sanitizeUsers(items []*domain.User) []*domain.User {
	out := make([]*domain.User, 0, len(items))
	for _, item := range items {
		out = append(out, sanitizeUser(item))
	}
	return out
}
