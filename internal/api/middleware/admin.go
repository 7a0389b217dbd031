package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"Atelier/internal/core/sessions"
)

// Context keys for storing request information
type contextKey string

const adminTokenKey contextKey = "admin_token"

// AdminHeader is the header mutating calls present their token in.
const AdminHeader = "x-admin-token"

// AdminAuthMiddleware guards mutating routes with the shared admin secret.
// The check here fails fast at the boundary; the post service re-validates
// the same token before touching storage, so a handler bypass still cannot
// mutate anything.
type AdminAuthMiddleware struct {
	gate *sessions.Gate
}

// NewAdminAuthMiddleware creates middleware around the process-wide gate.
func NewAdminAuthMiddleware(gate *sessions.Gate) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{gate: gate}
}

// RequireAdmin rejects requests whose x-admin-token header does not match
// the configured secret, and injects the presented token into the request
// context for the service-layer re-check.
func (m *AdminAuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AdminHeader)
		if !m.gate.AuthorizeMutation(token) {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s", r.RemoteAddr, r.Method, r.URL.Path)
			writeAuthError(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), adminTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminToken returns the token the request presented, or "" if the
// request never passed RequireAdmin.
func GetAdminToken(r *http.Request) string {
	token, _ := r.Context().Value(adminTokenKey).(string)
	return token
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
