package post

import (
	"encoding/json"
	"log"
	"net/http"
)

// HandleList handles GET /api/posts
// Public: listing never requires authorization. Returns an empty array, not
// null, when no posts exist.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(all); err != nil {
		log.Printf("Failed to encode posts response: %v", err)
	}
}
