package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	sessionHandlers "Atelier/internal/api/handlers/session"
	"Atelier/internal/core/sessions"
)

// RegisterSessionRoutes registers the interactive admin session endpoints.
func RegisterSessionRoutes(r chi.Router, manager *sessions.Manager) {
	handler := sessionHandlers.NewHandler(manager)

	r.Route("/api/session", func(r chi.Router) {
		r.Post("/", handler.HandleLogin)
		r.Get("/", handler.HandleStatus)
		r.Delete("/", handler.HandleLogout)

		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", "GET, POST, DELETE")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		})
	})
}
