package httpserver

import (
	"errors"
	"net/http"
	"strings"

	birddomain "avesnavarre/backend/internal/domain/bird"
	favoritedomain "avesnavarre/backend/internal/domain/favorite"
)

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	identity, _ := identityFromContext(r.Context())
	items, err := s.favoriteService.List(r.Context(), identity.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "favorites": items})
}

func (s *Server) handleFavoriteByBirdID(w http.ResponseWriter, r *http.Request) {
	birdID, err := parseID(strings.TrimPrefix(r.URL.Path, "/api/favorites/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bird id must be numeric")
		return
	}

	identity, _ := identityFromContext(r.Context())
	switch r.Method {
	case http.MethodPost:
		if err := s.favoriteService.Add(r.Context(), identity.ID, birdID); err != nil {
			if errors.Is(err, birddomain.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	case http.MethodDelete:
		if err := s.favoriteService.Remove(r.Context(), identity.ID, birdID); err != nil {
			if errors.Is(err, favoritedomain.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodPost, http.MethodDelete)
	}
}
