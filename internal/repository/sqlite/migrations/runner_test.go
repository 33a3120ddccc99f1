package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/msomdec/admin-dashboard/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, registered_at) VALUES (?, ?, ?, ?)",
		1, "user1", "user1@example.com", "2024-01-15",
	); err != nil {
		t.Fatalf("insert into users: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO posts (id, title, author, content, created_at, likes) VALUES (?, ?, ?, ?, ?, ?)",
		1, "First Post", "user1", "body", "2024-01-20", 15,
	); err != nil {
		t.Fatalf("insert into posts: %v", err)
	}
}

func TestRunIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	files, err := migrations.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != len(files) {
		t.Fatalf("expected %d migration records, got %d", len(files), count)
	}
}

func TestFilesSorted(t *testing.T) {
	files, err := migrations.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 migrations, got %v", files)
	}
	if files[0] != "001_create_users.sql" || files[1] != "002_create_posts.sql" {
		t.Fatalf("unexpected order: %v", files)
	}
}
