package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Atelier/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// List returns all posts ordered by inserted_at descending (newest first)
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, caption, media_url, type, inserted_at
		FROM posts
		ORDER BY inserted_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, nil
}

// GetByID retrieves a single post by its id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, caption, media_url, type, inserted_at
		FROM posts
		WHERE id = $1
	`

	post := &posts.Post{}
	var mediaURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Caption, &mediaURL, &post.Type, &post.InsertedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	if mediaURL.Valid {
		post.MediaURL = &mediaURL.String
	}
	return post, nil
}

// Create inserts a new post and fills in the assigned id
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (caption, media_url, type, inserted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Caption, nullableString(post.MediaURL), post.Type, post.InsertedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Update replaces caption, media_url and type for an existing post.
// inserted_at is deliberately not in the SET list.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET caption = $1, media_url = $2, type = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(
		ctx, query,
		post.Caption, nullableString(post.MediaURL), post.Type, post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// Delete removes a post by id
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

func scanPost(rows *sql.Rows) (*posts.Post, error) {
	post := &posts.Post{}
	var mediaURL sql.NullString

	if err := rows.Scan(&post.ID, &post.Caption, &mediaURL, &post.Type, &post.InsertedAt); err != nil {
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	if mediaURL.Valid {
		post.MediaURL = &mediaURL.String
	}
	return post, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
