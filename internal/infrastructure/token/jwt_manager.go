package token

import (
	"errors"
	"time"

	usecase "avesnavarre/backend/internal/usecase/auth"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates HS256 JWT tokens.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager constructs a manager with the provided secret.
func NewJWTManager(secret, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Ensure JWTManager implements the TokenManager interface.
var _ usecase.TokenManager = (*JWTManager)(nil)

// Claims represents token claims on the wire.
type Claims struct {
	UserID  int64  `json:"uid"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Method  string `json:"login_method,omitempty"`
	jwt.RegisteredClaims
}

// Issue creates a signed JWT carrying the claim set with the given lifetime.
func (m *JWTManager) Issue(claims usecase.Claims, ttl time.Duration) (string, error) {
	if claims.UserID == 0 {
		return "", errors.New("token claims missing user id")
	}

	now := time.Now().UTC()
	wire := Claims{
		UserID:  claims.UserID,
		Email:   claims.Email,
		Role:    claims.Role,
		Name:    claims.Name,
		Surname: claims.Surname,
		Method:  claims.Method,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wire)
	return token.SignedString(m.secret)
}

// Verify parses and validates the token, returning its claims when the
// signature checks out and the token has not expired.
func (m *JWTManager) Verify(tokenString string) (usecase.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return usecase.Claims{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return usecase.Claims{}, errors.New("invalid token claims")
	}
	if claims.UserID == 0 {
		return usecase.Claims{}, errors.New("token claims missing user id")
	}
	return claims.toUsecase(), nil
}

// DecodeUnverified extracts claims without validating the signature or
// expiry. Diagnostics only; never use the result to authorize anything.
func (m *JWTManager) DecodeUnverified(tokenString string) (usecase.Claims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return usecase.Claims{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return usecase.Claims{}, errors.New("invalid token claims")
	}
	return claims.toUsecase(), nil
}

func (c *Claims) toUsecase() usecase.Claims {
	return usecase.Claims{
		UserID:  c.UserID,
		Email:   c.Email,
		Role:    c.Role,
		Name:    c.Name,
		Surname: c.Surname,
		Method:  c.Method,
	}
}
