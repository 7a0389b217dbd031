package post

import (
	"net/http"

	"Atelier/internal/api/middleware"
)

// HandleCreate handles POST /api/posts
// Accepts either a JSON body ({caption, mediaUrl, type}) or a multipart form
// (caption + media file). The media file path uploads through the object
// store before the record is written.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	draft, _, err := parseDraft(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), draft, middleware.GetAdminToken(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// An empty draft is ignored rather than rejected; 204 says "accepted,
	// nothing created" without pretending a record exists.
	if created == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
