package memory

import (
	"context"
	"testing"
	"time"

	"Atelier/internal/core/posts"
)

func newPost(caption string, at time.Time) *posts.Post {
	return &posts.Post{Caption: caption, Type: posts.TypeText, InsertedAt: at}
}

func TestCreateAssignsTimestampDerivedIDs(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	first := newPost("a", now)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != now.UnixMilli() {
		t.Errorf("expected id %d, got %d", now.UnixMilli(), first.ID)
	}

	// Same millisecond: the id must still be unique.
	second := newPost("b", now)
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("expected distinct ids, both got %d", first.ID)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, caption := range []string{"oldest", "middle", "newest"} {
		if err := repo.Create(ctx, newPost(caption, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if all[i].Caption != want {
			t.Errorf("position %d: expected %q, got %q", i, want, all[i].Caption)
		}
	}
}

func TestGetUpdateDeleteUnknownID(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !posts.IsNotFound(err) {
		t.Errorf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &posts.Post{ID: 42}); !posts.IsNotFound(err) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !posts.IsNotFound(err) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestStoredCopiesAreIsolated(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()

	url := "http://media.test/k1"
	post := &posts.Post{Caption: "original", Type: posts.TypeImage, MediaURL: &url, InsertedAt: time.Now().UTC()}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating the caller's copy must not leak into the repository.
	post.Caption = "mutated"
	*post.MediaURL = "http://media.test/other"

	stored, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Caption != "original" {
		t.Errorf("expected stored caption untouched, got %q", stored.Caption)
	}
	if *stored.MediaURL != "http://media.test/k1" {
		t.Errorf("expected stored media URL untouched, got %q", *stored.MediaURL)
	}
}

func TestUpdateReplacesRecord(t *testing.T) {
	repo := NewPostRepository()
	ctx := context.Background()

	post := newPost("before", time.Now().UTC())
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated := &posts.Post{ID: post.ID, Caption: "after", Type: posts.TypeText, InsertedAt: post.InsertedAt}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, _ := repo.GetByID(ctx, post.ID)
	if stored.Caption != "after" {
		t.Errorf("expected replaced caption, got %q", stored.Caption)
	}
	if !stored.InsertedAt.Equal(post.InsertedAt) {
		t.Errorf("expected insertedAt preserved, got %v", stored.InsertedAt)
	}
}
