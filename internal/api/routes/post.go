package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Atelier/internal/api/handlers/post"
	"Atelier/internal/api/middleware"
	"Atelier/internal/core/posts"
)

// RegisterPostRoutes registers the /api/posts collection endpoints.
// Listing is public; every mutating method goes through the admin token
// middleware first.
func RegisterPostRoutes(r chi.Router, service posts.Service, adminAuth *middleware.AdminAuthMiddleware) {
	handler := post.NewHandler(service)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", handler.HandleList)
		r.With(adminAuth.RequireAdmin).Post("/", handler.HandleCreate)
		r.With(adminAuth.RequireAdmin).Put("/", handler.HandleUpdate)
		r.With(adminAuth.RequireAdmin).Delete("/", handler.HandleDelete)

		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", "GET, POST, PUT, DELETE")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		})
	})
}
