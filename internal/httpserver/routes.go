package httpserver

import (
	"net/http"

	authdomain "avesnavarre/backend/internal/domain/auth"
)

func (s *Server) registerRoutes() {
	userOnly := s.requireRole(authdomain.RoleUser)
	adminOnly := s.requireRole(authdomain.RoleAdmin)

	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))

	s.router.Handle("/auth/signup", http.HandlerFunc(s.handleSignup))
	s.router.Handle("/auth/login", http.HandlerFunc(s.handleLogin))
	s.router.Handle("/auth/me", http.HandlerFunc(s.handleMe))
	s.router.Handle("/auth/google", http.HandlerFunc(s.handleGoogleRedirect))
	s.router.Handle("/auth/google/callback", http.HandlerFunc(s.handleGoogleCallback))

	// Catalog reads are public; writes gate on admin inside the handlers.
	s.router.Handle("/api/birds", http.HandlerFunc(s.handleBirds))
	s.router.Handle("/api/birds/", http.HandlerFunc(s.handleBirdByID))

	s.router.Handle("/api/favorites", userOnly(http.HandlerFunc(s.handleFavorites)))
	s.router.Handle("/api/favorites/", userOnly(http.HandlerFunc(s.handleFavoriteByBirdID)))

	s.router.Handle("/api/ebird/recent", http.HandlerFunc(s.handleEBirdRecent))
	s.router.Handle("/api/ebird/notable", http.HandlerFunc(s.handleEBirdNotable))
	s.router.Handle("/api/ebird/hotspots", http.HandlerFunc(s.handleEBirdHotspots))

	s.router.Handle("/admin/users", adminOnly(http.HandlerFunc(s.handleAdminUsers)))
	s.router.Handle("/admin/users/", adminOnly(http.HandlerFunc(s.handleAdminUserByID)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
