package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystemStore keeps media objects as files under a root directory and
// serves them under a public base URL (the server mounts the root at
// /media/). Meant for local/dev deployments where no bucket is available.
type FileSystemStore struct {
	root          string
	publicBaseURL string
}

// NewFileSystemStore creates the root directory if needed.
func NewFileSystemStore(root, publicBaseURL string) (*FileSystemStore, error) {
	if root == "" {
		return nil, fmt.Errorf("filesystem media store requires a root directory")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &FileSystemStore{
		root:          root,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Root returns the directory objects are written to.
func (s *FileSystemStore) Root() string { return s.root }

// Upload writes the object to disk and returns its public URL.
func (s *FileSystemStore) Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	// Keys are generated by ObjectKey and never contain separators, but an
	// explicit check keeps a bad caller from escaping the root.
	if strings.ContainsAny(key, "/\\") || key == "" {
		return "", fmt.Errorf("invalid object key: %q", key)
	}

	destPath := filepath.Join(s.root, key)
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes the object file. A missing file is not an error.
func (s *FileSystemStore) Remove(ctx context.Context, key string) error {
	if strings.ContainsAny(key, "/\\") || key == "" {
		return fmt.Errorf("invalid object key: %q", key)
	}

	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}
