package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Atelier/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses. Store and upload
// failures carry the upstream message verbatim; the caller is the trusted
// admin UI, not a multi-tenant API.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsUnauthorized(err):
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid admin token")

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case posts.IsUploadFailed(err):
		writeError(w, http.StatusInternalServerError, "UploadFailed", err.Error())

	case posts.IsStoreUnavailable(err):
		writeError(w, http.StatusInternalServerError, "StoreUnavailable", err.Error())

	default:
		log.Printf("Unexpected post service error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalError", err.Error())
	}
}
