package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "avesnavarre/backend/internal/domain/auth"

	"golang.org/x/crypto/bcrypt"
)

// TraditionalTokenTTL bounds tokens minted for email+password logins.
const TraditionalTokenTTL = 10 * time.Minute

const minPasswordLength = 6

// Service coordinates authentication workflows between domain and infrastructure.
type Service struct {
	users   domain.UserRepository
	tokens  TokenManager
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, tokens TokenManager) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// Signup creates a new user and returns the persisted entity without a
// password hash, plus a short-lived traditional token. Unknown roles are
// coerced to the standard user role rather than rejected.
func (s *Service) Signup(ctx context.Context, email, password, role, name, surname string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return nil, "", domain.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.nowFunc().UTC()
	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		Surname:      strings.TrimSpace(surname),
		Role:         domain.ParseRole(role),
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// Login validates credentials and returns a token plus the sanitized user.
// A wrong email and a wrong password report the same error so callers learn
// nothing about which accounts exist.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	password := strings.TrimSpace(creds.Password)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, sanitizeUser(user), nil
}

func (s *Service) mintToken(user *domain.User) (string, error) {
	return s.tokens.Issue(Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
		Name:    user.Name,
		Surname: user.Surname,
		Method:  string(domain.MethodTraditional),
	}, TraditionalTokenTTL)
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}
