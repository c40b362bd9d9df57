package google

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSignAndVerifyRoundTrip(t *testing.T) {
	c := New("id", "secret", "https://api.example.com/auth/google/callback", "state-secret")

	state := c.NewState("/birds")
	encoded, err := c.SignState(state)
	require.NoError(t, err)

	decoded, err := c.VerifyState(encoded)
	require.NoError(t, err)
	assert.Equal(t, state.Nonce, decoded.Nonce)
	assert.Equal(t, "/birds", decoded.Redirect)
}

func TestVerifyStateRejectsTampering(t *testing.T) {
	c := New("id", "secret", "https://api.example.com/cb", "state-secret")

	encoded, err := c.SignState(c.NewState(""))
	require.NoError(t, err)

	tampered := []byte(encoded)
	tampered[10] ^= 1
	_, err = c.VerifyState(string(tampered))
	assert.Error(t, err)
}

func TestVerifyStateRejectsForeignSecret(t *testing.T) {
	signer := New("id", "secret", "https://api.example.com/cb", "one-secret")
	verifier := New("id", "secret", "https://api.example.com/cb", "another-secret")

	encoded, err := signer.SignState(signer.NewState(""))
	require.NoError(t, err)

	_, err = verifier.VerifyState(encoded)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestVerifyStateRejectsExpired(t *testing.T) {
	c := New("id", "secret", "https://api.example.com/cb", "state-secret")

	state := c.NewState("")
	state.ExpiresAt = time.Now().UTC().Add(-time.Minute).Unix()
	encoded, err := c.SignState(state)
	require.NoError(t, err)

	_, err = c.VerifyState(encoded)
	assert.ErrorIs(t, err, ErrStateExpired)
}

func TestVerifyStateRejectsGarbage(t *testing.T) {
	c := New("id", "secret", "https://api.example.com/cb", "state-secret")

	_, err := c.VerifyState("not base64 at all!!!")
	assert.ErrorIs(t, err, ErrStateInvalid)

	_, err = c.VerifyState("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestEnabled(t *testing.T) {
	assert.True(t, New("id", "secret", "url", "s").Enabled())
	assert.False(t, New("", "secret", "url", "s").Enabled())
	assert.False(t, New("id", "", "url", "s").Enabled())
	assert.False(t, New("id", "secret", "", "s").Enabled())
}
