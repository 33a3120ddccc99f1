package domain

import "context"

// Post represents a piece of user content. Author holds the username of the
// writer; it is not checked against the user collection.
type Post struct {
	ID        int64
	Title     string
	Author    string
	Content   string
	CreatedAt string
	Likes     int
}

// PostRepository defines storage operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]Post, error)
	Delete(ctx context.Context, id int64) error
	Insert(ctx context.Context, post *Post) error
}
