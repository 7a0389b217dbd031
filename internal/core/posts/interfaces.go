package posts

import "context"

// Service is the post store façade: a uniform CRUD surface over posts that
// hides the backing store and orchestrates attachment upload. Every mutating
// call re-validates the caller's admin token before touching storage.
type Service interface {
	// List returns all posts, newest first. Never requires authorization;
	// returns an empty slice, not an error, when there are no posts.
	List(ctx context.Context) ([]*Post, error)

	// Create validates the token and draft, uploads the attachment if one is
	// present, persists the record and returns it. An empty draft is a
	// silent no-op: (nil, nil), nothing persisted.
	Create(ctx context.Context, draft Draft, token string) (*Post, error)

	// Update replaces caption/mediaUrl/type of an existing post in place,
	// preserving id and insertedAt. Same authorization and validation rules
	// as Create; ErrNotFound for an unknown id.
	Update(ctx context.Context, id int64, draft Draft, token string) (*Post, error)

	// Delete removes a post and releases its media object. ErrNotFound for
	// an unknown id rather than silent success.
	Delete(ctx context.Context, id int64, token string) error
}

// Repository is the data access interface for posts. Implementations decide
// id assignment: SQL backends use the table's serial key, the in-memory
// backend derives ids from the creation timestamp.
type Repository interface {
	// List returns all posts ordered by inserted_at descending
	List(ctx context.Context) ([]*Post, error)

	// GetByID returns ErrNotFound when no post has that id
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create persists the post and fills in its assigned ID
	Create(ctx context.Context, post *Post) error

	// Update replaces the stored record matching post.ID; ErrNotFound if absent
	Update(ctx context.Context, post *Post) error

	// Delete removes the record; ErrNotFound if absent
	Delete(ctx context.Context, id int64) error
}
