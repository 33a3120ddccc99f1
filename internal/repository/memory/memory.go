// Package memory implements the storage backend on plain Go slices.
package memory

import (
	"context"
	"sync"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// DB holds the user and post collections in insertion order. Each
// operation is atomic on its own; nothing is isolated across operations.
type DB struct {
	mu    sync.RWMutex
	users []domain.User
	posts []domain.Post
}

// New returns an empty in-memory database.
func New() *DB {
	return &DB{}
}

// Migrate is a no-op; slices need no schema.
func (db *DB) Migrate(ctx context.Context) error { return nil }

// Close is a no-op.
func (db *DB) Close() error { return nil }

// Users returns the user repository backed by this database.
func (db *DB) Users() domain.UserRepository { return &UserRepository{db: db} }

// Posts returns the post repository backed by this database.
func (db *DB) Posts() domain.PostRepository { return &PostRepository{db: db} }

// UserRepository implements domain.UserRepository over the shared DB.
type UserRepository struct {
	db *DB
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]domain.User(nil), r.db.users...), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, u := range r.db.users {
		if u.ID == id {
			r.db.users = append(r.db.users[:i], r.db.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.ID == user.ID {
			return domain.ErrDuplicateID
		}
	}
	r.db.users = append(r.db.users, *user)
	return nil
}

// PostRepository implements domain.PostRepository over the shared DB.
type PostRepository struct {
	db *DB
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]domain.Post(nil), r.db.posts...), nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, p := range r.db.posts {
		if p.ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.posts {
		if p.ID == post.ID {
			return domain.ErrDuplicateID
		}
	}
	r.db.posts = append(r.db.posts, *post)
	return nil
}
