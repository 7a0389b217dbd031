package media

import (
	"context"
	"fmt"
)

// Config selects and configures a media store backend.
type Config struct {
	Type string // "s3", "filesystem", "memory"

	S3 S3Config

	// Filesystem backend
	FSRoot        string
	PublicBaseURL string
}

// NewStoreFromConfig creates a Store implementation based on the config type.
func NewStoreFromConfig(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(cfg.PublicBaseURL), nil
	case "s3":
		return NewS3Store(ctx, cfg.S3)
	case "filesystem":
		return NewFileSystemStore(cfg.FSRoot, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown media store type: %s", cfg.Type)
	}
}
