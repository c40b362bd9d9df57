package google

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// State carries the anti-CSRF payload round-tripped through the OAuth
// redirect. Signed with HMAC so no server-side storage is needed.
type State struct {
	Nonce     string `json:"nonce"`
	Redirect  string `json:"redirect,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// StateTTL bounds how long an authorization round trip may take.
const StateTTL = 10 * time.Minute

var (
	// ErrStateInvalid means the state failed decoding or signature checks.
	ErrStateInvalid = errors.New("oauth state invalid")
	// ErrStateExpired means the state round trip took too long.
	ErrStateExpired = errors.New("oauth state expired")
)

// NewState builds a fresh state for an authorization redirect.
func (c *Client) NewState(redirect string) State {
	now := time.Now().UTC()
	return State{
		Nonce:     uuid.NewString(),
		Redirect:  redirect,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(StateTTL).Unix(),
	}
}

// SignState serialises and HMAC-signs the state for the state parameter.
func (c *Client) SignState(state State) (string, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, c.stateSecret)
	mac.Write(payload)
	sig := mac.Sum(nil)

	return base64.URLEncoding.EncodeToString(append(payload, sig...)), nil
}

// VerifyState checks signature and expiry and returns the embedded state.
func (c *Client) VerifyState(encoded string) (*State, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrStateInvalid
	}
	if len(raw) < sha256.Size {
		return nil, ErrStateInvalid
	}

	payload := raw[:len(raw)-sha256.Size]
	sig := raw[len(raw)-sha256.Size:]

	mac := hmac.New(sha256.New, c.stateSecret)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, ErrStateInvalid
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, ErrStateInvalid
	}
	if time.Now().UTC().Unix() > state.ExpiresAt {
		return nil, ErrStateExpired
	}
	return &state, nil
}
