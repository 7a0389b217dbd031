package posts

import (
	"strings"
	"time"
)

// Post type values, derived from the attached media's MIME family.
const (
	TypeText  = "text"
	TypeImage = "image"
	TypeVideo = "video"
)

// Post represents a single blog entry: a caption, an optional media
// attachment, or both. Type is consistent with MediaURL by construction:
// text iff no media. InsertedAt is set once at creation and survives edits.
type Post struct {
	InsertedAt time.Time `json:"insertedAt" db:"inserted_at"`
	Caption    string    `json:"caption" db:"caption"`
	MediaURL   *string   `json:"mediaUrl,omitempty" db:"media_url"`
	Type       string    `json:"type" db:"type"`
	ID         int64     `json:"id" db:"id"`
}

// Attachment is a raw media file handed to Create/Update before upload.
// MimeType is the declared type from the submitting form; video/image
// classification follows from it.
type Attachment struct {
	Filename string
	MimeType string
	Data     []byte
}

// Draft is the caller's input for Create and Update. At least one of Caption
// (after trimming), Attachment, or MediaURL must be present; a draft with
// none of them is silently ignored rather than rejected. Attachment and
// MediaURL are alternatives: Attachment is the upload-orchestration path,
// MediaURL the pre-uploaded one.
type Draft struct {
	MediaURL   *string
	Attachment *Attachment
	Caption    string

	// DeclaredType is only consulted on the pre-uploaded MediaURL path,
	// where the server never sees the file and cannot classify it itself.
	// Ignored unless it is "image" or "video".
	DeclaredType string
}

// IsEmpty reports whether the draft carries neither text nor media.
func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.Caption) == "" &&
		d.Attachment == nil &&
		(d.MediaURL == nil || *d.MediaURL == "")
}

// ClassifyMIME maps a declared MIME type to a media post type: video/* is
// video, everything else attached is an image.
func ClassifyMIME(mimeType string) string {
	if strings.HasPrefix(mimeType, "video/") {
		return TypeVideo
	}
	return TypeImage
}
