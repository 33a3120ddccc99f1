package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// PostService handles post moderation.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns every post in insertion order.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Delete removes the post with the given id.
// Returns domain.ErrNotFound if no post has that id.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
