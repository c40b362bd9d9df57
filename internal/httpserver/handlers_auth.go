package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	authdomain "avesnavarre/backend/internal/domain/auth"
	oauthusecase "avesnavarre/backend/internal/usecase/oauth"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Name     string `json:"name"`
		Surname  string `json:"surname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, token, err := s.authService.Signup(r.Context(), payload.Email, payload.Password, payload.Role, payload.Name, payload.Surname)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrEmailExists):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authdomain.ErrMissingFields), errors.Is(err, authdomain.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	token, user, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    identity,
	})
}

func (s *Server) handleGoogleRedirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if !s.google.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "google login is not configured")
		return
	}

	state, err := s.google.SignState(s.google.NewState(r.URL.Query().Get("redirect")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to prepare login")
		return
	}
	http.Redirect(w, r, s.google.AuthURL(state), http.StatusFound)
}

// handleGoogleCallback finishes the OAuth round trip. The minted token is
// handed back to the frontend through a query parameter; the SPA then
// presents it on the regular Authorization header path.
func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if !s.google.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "google login is not configured")
		return
	}

	fail := func(reason string, err error) {
		log.Printf("google callback failed (%s): %v", reason, err)
		http.Redirect(w, r, s.frontendURL+"/login?error=oauth", http.StatusFound)
	}

	if _, err := s.google.VerifyState(r.URL.Query().Get("state")); err != nil {
		fail("state", err)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		fail("code", errors.New("missing authorization code"))
		return
	}

	tok, err := s.google.Exchange(r.Context(), code)
	if err != nil {
		fail("exchange", err)
		return
	}

	info, err := s.google.FetchUserInfo(r.Context(), tok.AccessToken)
	if err != nil {
		fail("userinfo", err)
		return
	}

	_, token, err := s.oauthService.Reconcile(r.Context(), oauthusecase.Profile{
		GoogleID:    info.ID,
		Email:       info.Email,
		DisplayName: info.Name,
		AvatarURL:   info.Picture,
	})
	if err != nil {
		fail("reconcile", err)
		return
	}

	http.Redirect(w, r, s.frontendURL+"/login?token="+url.QueryEscape(token), http.StatusFound)
}
