package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

func TestPostRepository_InsertListDelete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Posts()
	ctx := context.Background()

	likes := []int{15, 23, 8}
	for i, l := range likes {
		p := &domain.Post{
			ID:        int64(i + 1),
			Title:     "Post",
			Author:    "user1",
			Content:   "content",
			CreatedAt: "2024-01-20",
			Likes:     l,
		}
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	posts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[1].Likes != 23 {
		t.Fatalf("expected likes 23, got %d", posts[1].Likes)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	posts, _ = repo.List(ctx)
	if len(posts) != 2 || posts[0].ID != 2 {
		t.Fatalf("unexpected posts after delete: %+v", posts)
	}
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Posts().Delete(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_DeleteUserDoesNotCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Users().Insert(ctx, &domain.User{ID: 1, Username: "user1"}); err != nil {
		t.Fatalf("Insert user: %v", err)
	}
	if err := db.Posts().Insert(ctx, &domain.Post{ID: 1, Author: "user1"}); err != nil {
		t.Fatalf("Insert post: %v", err)
	}

	if err := db.Users().Delete(ctx, 1); err != nil {
		t.Fatalf("Delete user: %v", err)
	}
	posts, _ := db.Posts().List(ctx)
	if len(posts) != 1 {
		t.Fatalf("expected post to survive user delete, got %d posts", len(posts))
	}
}
