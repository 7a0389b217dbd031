package post

import (
	"net/http"

	"Atelier/internal/api/middleware"
)

// HandleUpdate handles PUT /api/posts
// Body is the create shape plus the id of the post to replace. Caption,
// mediaUrl and type are replaced in place; id and insertedAt survive.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	draft, id, err := parseDraft(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	if id == nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id is required")
		return
	}

	updated, err := h.service.Update(r.Context(), *id, draft, middleware.GetAdminToken(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if updated == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusOK)
}
