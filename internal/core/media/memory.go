package media

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store, useful for tests and
// for fully local runs. Safe for concurrent use.
type MemoryStore struct {
	objects       map[string][]byte
	mimeTypes     map[string]string
	publicBaseURL string
	mu            sync.RWMutex
}

// NewMemoryStore creates an empty in-memory media store. URLs are built from
// publicBaseURL, which may be empty for tests.
func NewMemoryStore(publicBaseURL string) *MemoryStore {
	return &MemoryStore{
		objects:       make(map[string][]byte),
		mimeTypes:     make(map[string]string),
		publicBaseURL: publicBaseURL,
	}
}

// Upload keeps a copy of data and returns the object's URL.
func (s *MemoryStore) Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	s.mimeTypes[key] = mimeType

	return s.publicBaseURL + "/" + key, nil
}

// Remove forgets the object. Unknown keys are ignored.
func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)
	delete(s.mimeTypes, key)
	return nil
}

// Get returns the stored bytes for key, for test verification.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}
