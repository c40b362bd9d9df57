package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "avesnavarre/backend/internal/domain/auth"
	"avesnavarre/backend/internal/infrastructure/token"
	authusecase "avesnavarre/backend/internal/usecase/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	mgr := token.NewJWTManager("test-secret", "avesnavarre")
	srv := &Server{tokens: mgr, secretConfigured: true}

	tok, err := mgr.Issue(authusecase.Claims{
		UserID: 7,
		Email:  "ana@example.com",
		Role:   "user",
		Method: "traditional",
	}, 10*time.Minute)
	require.NoError(t, err)
	return srv, tok
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	mgr := token.NewJWTManager("test-secret", "avesnavarre")
	tok, err := mgr.Issue(authusecase.Claims{UserID: 7, Email: "ana@example.com", Role: role}, 10*time.Minute)
	require.NoError(t, err)
	return tok
}

func TestExtractTokenPriorityOrder(t *testing.T) {
	makeRequest := func(query, header, cookie, body bool) *http.Request {
		target := "/x"
		if query {
			target += "?token=from-query"
		}
		var r *http.Request
		if body {
			r = httptest.NewRequest(http.MethodPost, target, strings.NewReader(`{"token":"from-body"}`))
			r.Header.Set("Content-Type", "application/json")
		} else {
			r = httptest.NewRequest(http.MethodGet, target, nil)
		}
		if header {
			r.Header.Set("Authorization", "Bearer from-header")
		}
		if cookie {
			r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "from-cookie"})
		}
		return r
	}

	tests := []struct {
		name                        string
		query, header, cookie, body bool
		wantToken                   string
		wantSource                  tokenSource
	}{
		{"query only", true, false, false, false, "from-query", sourceQuery},
		{"header only", false, true, false, false, "from-header", sourceHeader},
		{"cookie only", false, false, true, false, "from-cookie", sourceCookie},
		{"body only", false, false, false, true, "from-body", sourceBody},
		{"query beats header", true, true, false, false, "from-query", sourceQuery},
		{"header beats cookie", false, true, true, false, "from-header", sourceHeader},
		{"cookie beats body", false, false, true, true, "from-cookie", sourceCookie},
		{"all present", true, true, true, true, "from-query", sourceQuery},
		{"none", false, false, false, false, "", sourceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, source := extractToken(makeRequest(tt.query, tt.header, tt.cookie, tt.body))
			assert.Equal(t, tt.wantToken, tok)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestExtractTokenRejectsStringifiedAbsence(t *testing.T) {
	for _, literal := range []string{"null", "undefined"} {
		r := httptest.NewRequest(http.MethodGet, "/x", nil)
		r.Header.Set("Authorization", "Bearer "+literal)
		r.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: literal})

		tok, source := extractToken(r)
		assert.Empty(t, tok)
		assert.Equal(t, sourceNone, source)
	}
}

func TestExtractTokenLeavesBodyReadable(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"token":"from-body","other":"field"}`))
	r.Header.Set("Content-Type", "application/json")

	tok, _ := extractToken(r)
	require.Equal(t, "from-body", tok)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	assert.Equal(t, "field", payload["other"])
}

func TestWithIdentityAttachesIdentity(t *testing.T) {
	srv, tok := testServer(t)

	var got *authdomain.Identity
	handler := srv.withIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = identityFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, authdomain.RoleUser, got.Role)
	assert.Equal(t, authdomain.MethodTraditional, got.Method)
}

func TestWithIdentityFailsOpenOnInvalidToken(t *testing.T) {
	srv, _ := testServer(t)

	called := false
	handler := srv.withIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := identityFromContext(r.Context())
		assert.False(t, ok)
	}))

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Bearer garbage.token.value")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithIdentityRejectsWhenSecretMissing(t *testing.T) {
	srv := &Server{secretConfigured: false}

	handler := srv.withIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a signing secret")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRoleGates(t *testing.T) {
	srv, _ := testServer(t)

	tests := []struct {
		name       string
		gate       authdomain.Role
		tokenRole  string
		wantStatus int
		wantRole   string
	}{
		{"admin passes admin gate", authdomain.RoleAdmin, "admin", http.StatusOK, ""},
		{"user rejected by admin gate", authdomain.RoleAdmin, "user", http.StatusForbidden, "user"},
		{"user passes user gate", authdomain.RoleUser, "user", http.StatusOK, ""},
		{"admin rejected by user gate", authdomain.RoleUser, "admin", http.StatusForbidden, "admin"},
		{"anonymous rejected by admin gate", authdomain.RoleAdmin, "", http.StatusForbidden, "unauthenticated"},
		{"anonymous rejected by user gate", authdomain.RoleUser, "", http.StatusForbidden, "unauthenticated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := srv.withIdentity(srv.requireRole(tt.gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			r := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.tokenRole != "" {
				r.Header.Set("Authorization", "Bearer "+issueToken(t, tt.tokenRole))
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				var resp forbiddenResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.wantRole, resp.UserRole)
			}
		})
	}
}
