package post

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"Atelier/internal/core/media"
	"Atelier/internal/core/posts"
)

// maxJSONBody caps JSON request bodies. Captions are short; 1MB is generous.
const maxJSONBody = 1 * 1024 * 1024

// Handler serves the /api/posts collection.
type Handler struct {
	service posts.Service
}

// NewHandler creates the posts handler around the post service.
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// postBody is the JSON request shape for POST and PUT. MediaURL references
// an already-uploaded object (the pre-uploaded path); Type is only consulted
// alongside it, since the server cannot classify a bare URL.
type postBody struct {
	ID       *int64  `json:"id,omitempty"`
	Caption  string  `json:"caption"`
	MediaURL *string `json:"mediaUrl,omitempty"`
	Type     string  `json:"type,omitempty"`
}

// parseDraft reads a draft from the request. JSON bodies carry a caption and
// optionally a pre-uploaded mediaUrl; multipart bodies carry the caption and
// the raw media file, which the service uploads itself.
func parseDraft(r *http.Request) (posts.Draft, *int64, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if strings.HasPrefix(contentType, "multipart/") {
		return parseMultipartDraft(r)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxJSONBody)

	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return posts.Draft{}, nil, fmt.Errorf("invalid request body: %w", err)
	}

	draft := posts.Draft{
		Caption:      body.Caption,
		MediaURL:     body.MediaURL,
		DeclaredType: body.Type,
	}
	return draft, body.ID, nil
}

// parseMultipartDraft reads caption and media file from a multipart form.
func parseMultipartDraft(r *http.Request) (posts.Draft, *int64, error) {
	// Leave headroom above the attachment cap for the caption and part
	// boundaries; the service enforces the exact media size limit.
	r.Body = http.MaxBytesReader(nil, r.Body, media.MaxAttachmentSize+maxJSONBody)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return posts.Draft{}, nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	draft := posts.Draft{Caption: r.FormValue("caption")}

	var id *int64
	if rawID := r.FormValue("id"); rawID != "" {
		parsed, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return posts.Draft{}, nil, fmt.Errorf("invalid id: %q", rawID)
		}
		id = &parsed
	}

	file, header, err := r.FormFile("media")
	if err == http.ErrMissingFile {
		return draft, id, nil
	}
	if err != nil {
		return posts.Draft{}, nil, fmt.Errorf("invalid media part: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return posts.Draft{}, nil, fmt.Errorf("failed to read media part: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	draft.Attachment = &posts.Attachment{
		Filename: header.Filename,
		MimeType: mimeType,
		Data:     data,
	}
	return draft, id, nil
}
