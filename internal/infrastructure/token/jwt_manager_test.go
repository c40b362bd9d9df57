package token

import (
	"testing"
	"time"

	usecase "avesnavarre/backend/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() usecase.Claims {
	return usecase.Claims{
		UserID:  42,
		Email:   "ana@example.com",
		Role:    "user",
		Name:    "Ana",
		Surname: "García",
		Method:  "traditional",
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")

	tok, err := mgr.Issue(testClaims(), 10*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := mgr.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testClaims(), claims)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")

	tok, err := mgr.Issue(testClaims(), -time.Minute)
	require.NoError(t, err)

	_, err = mgr.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")
	other := NewJWTManager("different-secret", "avesnavarre")

	tok, err := mgr.Issue(testClaims(), 10*time.Minute)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")

	_, err := mgr.Verify("not-a-token")
	assert.Error(t, err)
}

func TestIssueRequiresUserID(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")

	claims := testClaims()
	claims.UserID = 0
	_, err := mgr.Issue(claims, 10*time.Minute)
	assert.Error(t, err)
}

func TestDecodeUnverifiedIgnoresSignatureAndExpiry(t *testing.T) {
	mgr := NewJWTManager("secret", "avesnavarre")
	other := NewJWTManager("different-secret", "avesnavarre")

	tok, err := mgr.Issue(testClaims(), -time.Minute)
	require.NoError(t, err)

	claims, err := other.DecodeUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, testClaims(), claims)
}
