package domain

import "context"

// User represents a registered account shown in the admin dashboard.
type User struct {
	ID           int64
	Username     string
	Email        string
	RegisteredAt string
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) error
	// Insert is used for seeding only; the API never creates users.
	Insert(ctx context.Context, user *User) error
}
