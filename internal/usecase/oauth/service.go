package oauth

import (
	"context"
	"strings"
	"time"

	domain "avesnavarre/backend/internal/domain/auth"
	authusecase "avesnavarre/backend/internal/usecase/auth"
)

// GoogleTokenTTL bounds tokens minted after a Google login. Longer than the
// traditional TTL because the token travels back through a redirect URL and
// the frontend has no refresh path.
const GoogleTokenTTL = 24 * time.Hour

// Profile is a third-party-verified Google identity.
type Profile struct {
	GoogleID    string
	Email       string
	DisplayName string
	AvatarURL   string
}

// Service reconciles verified Google profiles against the local user store
// and mints identity tokens for them.
type Service struct {
	users   domain.UserRepository
	tokens  authusecase.TokenManager
	nowFunc func() time.Time
}

// NewService constructs a reconciler service.
func NewService(users domain.UserRepository, tokens authusecase.TokenManager) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// Reconcile finds or creates the local user for the profile and returns the
// resolved record plus a Google-method token. A brand new email creates a
// user with role user and no usable password; an existing email with no
// linkage gets the Google id backfilled; an already linked record is left
// untouched. Any persistence failure aborts before a token is minted.
func (s *Service) Reconcile(ctx context.Context, profile Profile) (*domain.User, string, error) {
	name, surname := splitDisplayName(profile.DisplayName)
	now := s.nowFunc().UTC()

	user, err := s.users.ReconcileOAuth(ctx, &domain.User{
		Email:     strings.TrimSpace(strings.ToLower(profile.Email)),
		Name:      name,
		Surname:   surname,
		Role:      domain.RoleUser,
		GoogleID:  profile.GoogleID,
		AvatarURL: profile.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, "", err
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	token, err := s.tokens.Issue(authusecase.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    string(role),
		Name:    user.Name,
		Surname: user.Surname,
		Method:  string(domain.MethodGoogle),
	}, GoogleTokenTTL)
	if err != nil {
		return nil, "", err
	}

	clean := *user
	clean.PasswordHash = ""
	return &clean, token, nil
}

// splitDisplayName derives given name and surname from a display name:
// first whitespace-separated token is the name, the remainder the surname.
func splitDisplayName(display string) (string, string) {
	parts := strings.Fields(display)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
