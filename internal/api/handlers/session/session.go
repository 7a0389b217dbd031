package session

import (
	"encoding/json"
	"log"
	"net/http"

	"Atelier/internal/core/sessions"
)

// Handler serves the interactive admin session endpoints: login, logout and
// a status probe the UI hydrates its admin flag from.
type Handler struct {
	manager *sessions.Manager
}

// NewHandler creates the session handler around the session manager.
func NewHandler(manager *sessions.Manager) *Handler {
	return &Handler{manager: manager}
}

type loginBody struct {
	Token string `json:"token"`
}

type statusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// HandleLogin handles POST /api/session
// A wrong secret is a plain user-visible rejection: no lockout, no audit log.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(nil, r.Body, 4*1024)

	var body loginBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := h.manager.Login(w, r, body.Token)
	if err != nil {
		log.Printf("Failed to establish session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Wrong password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStatus handles GET /api/session
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{Authenticated: h.manager.IsAuthenticated(r)}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode session status: %v", err)
	}
}

// HandleLogout handles DELETE /api/session
// Unconditionally clears the session flag, nothing else.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Logout(w, r); err != nil {
		log.Printf("Failed to clear session: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
