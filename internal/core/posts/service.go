package posts

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"Atelier/internal/core/media"
	"Atelier/internal/core/sessions"
)

type postService struct {
	repo  Repository
	gate  *sessions.Gate
	store media.Store
}

// NewPostService creates the post store façade over a repository, the admin
// gate, and a media store.
func NewPostService(repo Repository, gate *sessions.Gate, store media.Store) Service {
	return &postService{
		repo:  repo,
		gate:  gate,
		store: store,
	}
}

// List returns all posts, newest first.
func (s *postService) List(ctx context.Context) ([]*Post, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, NewStoreError("list", err)
	}
	if all == nil {
		all = []*Post{}
	}
	return all, nil
}

// Create creates a new post.
// Flow:
// 1. Re-validate the admin token (stateless, per mutating call)
// 2. Drop empty drafts silently
// 3. Upload the attachment first, if any; abort on upload failure
// 4. Persist the record; on store failure release the fresh upload so no
//    orphaned object outlives the aborted call
func (s *postService) Create(ctx context.Context, draft Draft, token string) (*Post, error) {
	if !s.gate.AuthorizeMutation(token) {
		return nil, ErrUnauthorized
	}

	if draft.IsEmpty() {
		// Matches the observed behavior: an empty submit is ignored, not
		// rejected.
		return nil, nil
	}

	mediaURL, postType, uploadedKey, err := s.resolveMedia(ctx, draft)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Caption:    strings.TrimSpace(draft.Caption),
		MediaURL:   mediaURL,
		Type:       postType,
		InsertedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.releaseKey(ctx, uploadedKey)
		return nil, NewStoreError("create", err)
	}

	return post, nil
}

// Update replaces caption/mediaUrl/type of an existing post, preserving id
// and insertedAt. The previous media object is released once the new record
// is committed.
func (s *postService) Update(ctx context.Context, id int64, draft Draft, token string) (*Post, error) {
	if !s.gate.AuthorizeMutation(token) {
		return nil, ErrUnauthorized
	}

	if draft.IsEmpty() {
		return nil, nil
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, NewStoreError("update", err)
	}

	mediaURL, postType, uploadedKey, err := s.resolveMedia(ctx, draft)
	if err != nil {
		return nil, err
	}

	updated := &Post{
		ID:         existing.ID,
		InsertedAt: existing.InsertedAt,
		Caption:    strings.TrimSpace(draft.Caption),
		MediaURL:   mediaURL,
		Type:       postType,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.releaseKey(ctx, uploadedKey)
		if IsNotFound(err) {
			return nil, err
		}
		return nil, NewStoreError("update", err)
	}

	// Release the replaced media object, if the URL actually changed.
	if existing.MediaURL != nil && (updated.MediaURL == nil || *updated.MediaURL != *existing.MediaURL) {
		s.releaseURL(ctx, *existing.MediaURL)
	}

	return updated, nil
}

// Delete removes a post and releases its media object.
func (s *postService) Delete(ctx context.Context, id int64, token string) error {
	if !s.gate.AuthorizeMutation(token) {
		return ErrUnauthorized
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return NewStoreError("delete", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if IsNotFound(err) {
			return err
		}
		return NewStoreError("delete", err)
	}

	if existing.MediaURL != nil {
		s.releaseURL(ctx, *existing.MediaURL)
	}

	return nil
}

// resolveMedia turns the draft's media input into a stored URL and a post
// type. Returns the uploaded object key (empty when nothing was uploaded) so
// callers can release it if the record write fails afterwards.
func (s *postService) resolveMedia(ctx context.Context, draft Draft) (*string, string, string, error) {
	if att := draft.Attachment; att != nil {
		if len(att.Data) == 0 {
			return nil, "", "", NewUploadError(att.Filename, fmt.Errorf("attachment is empty"))
		}
		if len(att.Data) > media.MaxAttachmentSize {
			return nil, "", "", NewUploadError(att.Filename,
				fmt.Errorf("attachment size %d exceeds maximum of %d bytes", len(att.Data), media.MaxAttachmentSize))
		}

		key := media.ObjectKey(att.Filename)
		publicURL, err := s.store.Upload(ctx, key, att.Data, att.MimeType)
		if err != nil {
			return nil, "", "", NewUploadError(key, err)
		}
		return &publicURL, ClassifyMIME(att.MimeType), key, nil
	}

	if draft.MediaURL != nil && *draft.MediaURL != "" {
		postType := TypeImage
		if draft.DeclaredType == TypeVideo {
			postType = TypeVideo
		}
		return draft.MediaURL, postType, "", nil
	}

	return nil, TypeText, "", nil
}

// releaseKey removes a just-uploaded object after a failed record write.
func (s *postService) releaseKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		log.Printf("[MEDIA] failed to release object %s after aborted write: %v", key, err)
	}
}

// releaseURL removes the object a media URL points at. Best effort: the post
// mutation already committed, so a failure here only leaks an object.
func (s *postService) releaseURL(ctx context.Context, mediaURL string) {
	key := objectKeyFromURL(mediaURL)
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		log.Printf("[MEDIA] failed to release object %s: %v", key, err)
	}
}

// objectKeyFromURL extracts the object key (the last path segment) from a
// media URL produced by the store.
func objectKeyFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(raw)
}
