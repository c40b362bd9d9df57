package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	authdomain "avesnavarre/backend/internal/domain/auth"
	userusecase "avesnavarre/backend/internal/usecase/user"
)

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	users, err := s.userService.List(r.Context(), userusecase.Filter{
		Role: r.URL.Query().Get("role"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "users": users})
}

func (s *Server) handleAdminUserByID(w http.ResponseWriter, r *http.Request) {
	remainder := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/users/"), "/")
	segments := strings.Split(remainder, "/")

	id, err := parseID(segments[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "user id must be numeric")
		return
	}

	if len(segments) > 1 {
		if segments[1] == "role" {
			s.handleAdminUserRole(w, r, id)
			return
		}
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := s.userService.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, authdomain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	case http.MethodDelete:
		if err := s.userService.Delete(r.Context(), id); err != nil {
			if errors.Is(err, authdomain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodDelete)
	}
}

func (s *Server) handleAdminUserRole(w http.ResponseWriter, r *http.Request, userID int64) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		writeMethodNotAllowed(w, http.MethodPut, http.MethodPatch)
		return
	}

	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "role is required")
		} else {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
		}
		return
	}
	if strings.TrimSpace(payload.Role) == "" {
		writeError(w, http.StatusBadRequest, "role is required")
		return
	}

	user, err := s.userService.UpdateRole(r.Context(), userID, payload.Role)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}
