package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Atelier/internal/core/posts"
)

// sqlitePostRepo is the local-mode post repository. It mirrors the Postgres
// repository but speaks SQLite's dialect: ? placeholders, LastInsertId
// instead of RETURNING, and timestamps stored as RFC3339 text.
type sqlitePostRepo struct {
	db *sql.DB
}

// timestampLayout is a fixed-width RFC3339 form. The fraction keeps its
// trailing zeros so the TEXT column sorts lexicographically by time;
// RFC3339Nano trims them, which puts "…00.5Z" after "…00.52Z".
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// NewPostRepository creates a new SQLite post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &sqlitePostRepo{db: db}
}

func (r *sqlitePostRepo) List(ctx context.Context) ([]*posts.Post, error) {
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
		post := &posts.Post{}
		var mediaURL sql.NullString
		var insertedAt string

		if err := rows.Scan(&post.ID, &post.Caption, &mediaURL, &post.Type, &insertedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		if mediaURL.Valid {
			post.MediaURL = &mediaURL.String
		}
		post.InsertedAt, err = parseTimestamp(insertedAt)
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

func (r *sqlitePostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, caption, media_url, type, inserted_at
		FROM posts
		WHERE id = ?
	`

	post := &posts.Post{}
	var mediaURL sql.NullString
	var insertedAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Caption, &mediaURL, &post.Type, &insertedAt,
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
	post.InsertedAt, err = parseTimestamp(insertedAt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *sqlitePostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (caption, media_url, type, inserted_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(
		ctx, query,
		post.Caption, nullableString(post.MediaURL), post.Type,
		post.InsertedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	post.ID = id

	return nil
}

func (r *sqlitePostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET caption = ?, media_url = ?, type = ?
		WHERE id = ?
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

func (r *sqlitePostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
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

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
