package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, author, content, created_at, likes FROM posts ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.Content, &p.CreatedAt, &p.Likes); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "posts", id)
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, author, content, created_at, likes) VALUES (?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Author, post.Content, post.CreatedAt, post.Likes,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}
