package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	authdomain "avesnavarre/backend/internal/domain/auth"
	birddomain "avesnavarre/backend/internal/domain/bird"
	birdusecase "avesnavarre/backend/internal/usecase/bird"
)

func (s *Server) handleBirds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		items, err := s.birdService.List(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "birds": items})
	case http.MethodPost:
		if !s.gateRole(w, r, authdomain.RoleAdmin) {
			return
		}
		var payload birdusecase.CreateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		item, err := s.birdService.Create(ctx, payload)
		if err != nil {
			if errors.Is(err, birddomain.ErrDuplicateSpecies) {
				writeError(w, http.StatusConflict, err.Error())
			} else {
				writeError(w, http.StatusBadRequest, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusCreated, item)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleBirdByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(strings.TrimPrefix(r.URL.Path, "/api/birds/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bird id must be numeric")
		return
	}

	ctx := r.Context()
	switch r.Method {
	case http.MethodGet:
		item, err := s.birdService.Get(ctx, id)
		if err != nil {
			if errors.Is(err, birddomain.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodPut, http.MethodPatch:
		if !s.gateRole(w, r, authdomain.RoleAdmin) {
			return
		}
		var payload birdusecase.UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		item, err := s.birdService.Update(ctx, id, payload)
		if err != nil {
			switch {
			case errors.Is(err, birddomain.ErrNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, birddomain.ErrDuplicateSpecies):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeError(w, http.StatusBadRequest, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		if !s.gateRole(w, r, authdomain.RoleAdmin) {
			return
		}
		if err := s.birdService.Delete(ctx, id); err != nil {
			if errors.Is(err, birddomain.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}

func parseID(raw string) (int64, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "/")
	if raw == "" {
		return 0, errors.New("id required")
	}
	return strconv.ParseInt(raw, 10, 64)
}
