package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type forbiddenResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message"`
	UserRole string `json:"user_role"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeForbidden(w http.ResponseWriter, message, userRole string) {
	writeJSON(w, http.StatusForbidden, forbiddenResponse{
		Success:  false,
		Error:    "forbidden",
		Message:  message,
		UserRole: userRole,
	})
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
