package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the object-store collaborator: it durably keeps uploaded
// attachment bytes and hands back a retrievable URL. Upload happens before
// the post record is written; Remove releases the object once no post
// references it anymore.
type Store interface {
	// Upload stores data under key and returns a public URL for it
	Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error)

	// Remove deletes the object stored under key. Removing a key that was
	// never stored is not an error.
	Remove(ctx context.Context, key string) error
}

// MaxAttachmentSize caps uploaded media at 50MB, enough for short videos.
const MaxAttachmentSize = 50 * 1024 * 1024

// ObjectKey builds a collision-resistant storage key for an uploaded file:
// creation-timestamp prefix, a short random component, and the sanitized
// original filename so objects stay recognizable in the bucket.
func ObjectKey(filename string) string {
	base := sanitizeFilename(path.Base(filename))
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UTC().UnixMilli(), uuid.NewString()[:8], base)
}

// sanitizeFilename keeps letters, digits, dots, dashes and underscores;
// everything else becomes an underscore so keys stay URL- and path-safe.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
