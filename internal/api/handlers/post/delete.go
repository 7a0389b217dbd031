package post

import (
	"encoding/json"
	"net/http"

	"Atelier/internal/api/middleware"
)

// deleteBody is the JSON request shape for DELETE.
type deleteBody struct {
	ID int64 `json:"id"`
}

// HandleDelete handles DELETE /api/posts
// Deleting an unknown id is 404, not silent success, so caller mistakes
// surface.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxJSONBody)

	var body deleteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), body.ID, middleware.GetAdminToken(r)); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
