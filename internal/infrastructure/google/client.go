package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Client drives the Google OAuth code flow: authorization URL, code
// exchange, and userinfo lookup.
type Client struct {
	oauth       *oauth2.Config
	stateSecret []byte
	httpClient  *http.Client
	enabled     bool
}

// New constructs a client. An empty clientID disables the flow; handlers
// should check Enabled before routing into it.
func New(clientID, clientSecret, redirectURL, stateSecret string) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		stateSecret: []byte(stateSecret),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		enabled:     clientID != "" && clientSecret != "" && redirectURL != "",
	}
}

// Enabled reports whether the OAuth flow is configured.
func (c *Client) Enabled() bool {
	return c.enabled
}

// AuthURL builds the Google authorization URL for the signed state.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauth.Exchange(ctx, code)
}

// UserInfo is the subset of the Google userinfo response the portal needs.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FetchUserInfo loads the profile behind the access token.
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
