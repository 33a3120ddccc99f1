package domain

import "context"

// Database defines lifecycle operations for a storage backend and exposes
// its repositories. Each implementation (in-memory, SQLite) owns its own
// schema setup, so the backend is swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
	Users() UserRepository
	Posts() PostRepository
}
