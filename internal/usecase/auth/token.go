package auth

import "time"

// Claims is the claim set carried inside an identity token. UserID is the
// only mandatory field; a token without it is unusable downstream.
type Claims struct {
	UserID  int64
	Email   string
	Role    string
	Name    string
	Surname string
	Method  string
}

// TokenManager abstracts token issuance and verification.
type TokenManager interface {
	Issue(claims Claims, ttl time.Duration) (string, error)
	Verify(token string) (Claims, error)
	// DecodeUnverified parses claims WITHOUT checking the signature. It is
	// for diagnostics only and must never feed an authorization decision.
	DecodeUnverified(token string) (Claims, error)
}
