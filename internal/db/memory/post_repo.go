package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"Atelier/internal/core/posts"
)

// PostRepository is an in-memory implementation of posts.Repository, used in
// tests and for ephemeral local runs. Ids are derived from the creation
// timestamp in milliseconds, matching the client-assigned ids of the
// browser-local persistence mode. Safe for concurrent use.
type PostRepository struct {
	byID   map[int64]*posts.Post
	lastID int64
	mu     sync.RWMutex
}

// NewPostRepository creates an empty in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		byID: make(map[int64]*posts.Post),
	}
}

func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*posts.Post, 0, len(r.byID))
	for _, p := range r.byID {
		result = append(result, clone(p))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].InsertedAt.Equal(result[j].InsertedAt) {
			return result[i].InsertedAt.After(result[j].InsertedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, posts.ErrNotFound
	}
	return clone(p), nil
}

func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Timestamp-derived id, bumped past the previous one so two creates in
	// the same millisecond stay unique.
	id := post.InsertedAt.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	post.ID = id
	r.byID[id] = clone(post)
	return nil
}

func (r *PostRepository) Update(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[post.ID]; !ok {
		return posts.ErrNotFound
	}
	r.byID[post.ID] = clone(post)
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return posts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// clone keeps callers from mutating the repository's canonical copy.
func clone(p *posts.Post) *posts.Post {
	c := *p
	if p.MediaURL != nil {
		u := *p.MediaURL
		c.MediaURL = &u
	}
	c.InsertedAt = p.InsertedAt.In(time.UTC)
	return &c
}
