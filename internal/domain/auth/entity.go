package auth

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailExists signals a duplicate email registration.
	ErrEmailExists = errors.New("email already registered")
	// ErrTokenInvalid means a supplied token cannot be validated.
	ErrTokenInvalid = errors.New("token invalid or expired")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrWeakPassword indicates the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrMissingFields indicates required signup fields were absent.
	ErrMissingFields = errors.New("email and password are required")
)

// Role identifies the privileges assigned to a user.
type Role string

const (
	// RoleUser represents a standard portal visitor.
	RoleUser Role = "user"
	// RoleAdmin represents an administrative user.
	RoleAdmin Role = "admin"
	// RoleClient represents an external client account.
	RoleClient Role = "client"
)

// ParseRole maps a raw string onto one of the three supported roles.
// Anything unrecognised, including the empty string, becomes RoleUser.
func ParseRole(raw string) Role {
	switch Role(strings.TrimSpace(strings.ToLower(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleClient:
		return RoleClient
	default:
		return RoleUser
	}
}

// LoginMethod records how an identity was established.
type LoginMethod string

const (
	// MethodTraditional marks email+password logins.
	MethodTraditional LoginMethod = "traditional"
	// MethodGoogle marks Google OAuth logins.
	MethodGoogle LoginMethod = "google"
)

// User models the identity record persisted in storage. GoogleID is the
// empty string until the account is linked to a Google identity.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	GoogleID     string    `json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Email    string
	Password string
}

// Identity is the per-request view of an authenticated caller, rebuilt from
// token claims on every request and never persisted. A nil *Identity means
// the request is anonymous.
type Identity struct {
	ID      int64       `json:"id"`
	Email   string      `json:"email"`
	Role    Role        `json:"role"`
	Name    string      `json:"name"`
	Surname string      `json:"surname"`
	Method  LoginMethod `json:"login_method"`
}
