package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	authdomain "avesnavarre/backend/internal/domain/auth"
)

// tokenSource names where in the request a candidate token was found.
type tokenSource string

const (
	sourceNone   tokenSource = ""
	sourceQuery  tokenSource = "query"
	sourceHeader tokenSource = "header"
	sourceCookie tokenSource = "cookie"
	sourceBody   tokenSource = "body"
)

const accessTokenCookie = "access_token"

// Body sniffing is capped so the extractor cannot be used to buffer
// arbitrarily large payloads.
const maxTokenBodyBytes = 1 << 20

// extractToken looks for a bearer token across the four supported carriers,
// in strict priority order: query parameter, Authorization header, cookie,
// JSON body field. First match wins. The literal strings "null" and
// "undefined" count as absent; clients that stringify a missing value send
// those. Absence is not an error.
func extractToken(r *http.Request) (string, tokenSource) {
	if token := cleanToken(r.URL.Query().Get("token")); token != "" {
		return token, sourceQuery
	}
	if token := cleanToken(bearerToken(r.Header.Get("Authorization"))); token != "" {
		return token, sourceHeader
	}
	if cookie, err := r.Cookie(accessTokenCookie); err == nil {
		if token := cleanToken(cookie.Value); token != "" {
			return token, sourceCookie
		}
	}
	if token := cleanToken(bodyToken(r)); token != "" {
		return token, sourceBody
	}
	return "", sourceNone
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// bodyToken reads a `token` field out of a JSON body, restoring the body so
// downstream handlers can decode it again.
func bodyToken(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBodyBytes))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Token)
}

func cleanToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "null" || token == "undefined" {
		return ""
	}
	return token
}

// withIdentity resolves the caller's identity from the extracted token and
// attaches it to the request context. It never blocks a request: no token or
// a bad token both mean anonymous, and restriction is left to the role
// gates. An empty signing secret is the one hard failure, reported as a
// server error rather than an auth failure.
func (s *Server) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.secretConfigured {
			writeError(w, http.StatusInternalServerError, "server authentication misconfigured")
			return
		}

		token, source := extractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			// Invalid is equivalent to absent; the request proceeds
			// anonymous and any role gate downstream does the rejecting.
			log.Printf("discarding invalid token from %s source: %v", source, err)
			next.ServeHTTP(w, r)
			return
		}

		role := authdomain.RoleUser
		if claims.Role != "" {
			role = authdomain.Role(claims.Role)
		}
		method := authdomain.MethodTraditional
		if claims.Method != "" {
			method = authdomain.LoginMethod(claims.Method)
		}

		log.Printf("authenticated user %d via %s token", claims.UserID, source)
		identity := &authdomain.Identity{
			ID:      claims.UserID,
			Email:   claims.Email,
			Role:    role,
			Name:    claims.Name,
			Surname: claims.Surname,
			Method:  method,
		}
		ctx := context.WithValue(r.Context(), ctxKeyIdentity{}, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type ctxKeyIdentity struct{}

func identityFromContext(ctx context.Context) (*authdomain.Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity{}).(*authdomain.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// requireRole builds a gate middleware that rejects any caller whose role is
// not exactly the required one. Anonymous callers are rejected too.
func (s *Server) requireRole(role authdomain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.gateRole(w, r, role) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// gateRole is the inline form of the gate, for handlers that mix public and
// restricted methods on one route.
func (s *Server) gateRole(w http.ResponseWriter, r *http.Request, role authdomain.Role) bool {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeForbidden(w, string(role)+" role required", "unauthenticated")
		return false
	}
	if identity.Role != role {
		writeForbidden(w, string(role)+" role required", string(identity.Role))
		return false
	}
	return true
}
