package httpserver

import (
	"context"
	"errors"
	"net/http"

	"avesnavarre/backend/internal/infrastructure/ebird"
)

// region picks the requested eBird region, falling back to the configured
// default (the Ávila / Sierra de Gredos province code).
func (s *Server) region(r *http.Request) string {
	if region := r.URL.Query().Get("region"); region != "" {
		return region
	}
	return s.ebirdRegion
}

func (s *Server) handleEBirdRecent(w http.ResponseWriter, r *http.Request) {
	s.proxyEBird(w, r, func(ctx context.Context) (any, error) {
		return s.ebird.RecentObservations(ctx, s.region(r))
	})
}

func (s *Server) handleEBirdNotable(w http.ResponseWriter, r *http.Request) {
	s.proxyEBird(w, r, func(ctx context.Context) (any, error) {
		return s.ebird.NotableObservations(ctx, s.region(r))
	})
}

func (s *Server) handleEBirdHotspots(w http.ResponseWriter, r *http.Request) {
	s.proxyEBird(w, r, func(ctx context.Context) (any, error) {
		return s.ebird.Hotspots(ctx, s.region(r))
	})
}

func (s *Server) proxyEBird(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) (any, error)) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if !s.ebird.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "ebird proxy is not configured")
		return
	}

	data, err := fetch(r.Context())
	if err != nil {
		if errors.Is(err, ebird.ErrUpstream) {
			writeError(w, http.StatusBadGateway, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}
