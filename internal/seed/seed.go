// Package seed loads the startup users and posts into a storage backend.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/msomdec/admin-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Fixtures is the on-disk shape of a seed file.
type Fixtures struct {
	Users []UserFixture `yaml:"users"`
	Posts []PostFixture `yaml:"posts"`
}

// UserFixture is one seeded user.
type UserFixture struct {
	ID           int64  `yaml:"id"`
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	RegisteredAt string `yaml:"registeredAt"`
}

// PostFixture is one seeded post.
type PostFixture struct {
	ID        int64  `yaml:"id"`
	Title     string `yaml:"title"`
	Author    string `yaml:"author"`
	Content   string `yaml:"content"`
	CreatedAt string `yaml:"createdAt"`
	Likes     int    `yaml:"likes"`
}

// Default returns the built-in fixtures: five users and five posts.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// LoadFile reads fixtures from a YAML file.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks fixtures. Ids must be positive and unique
// within their collection.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode seed yaml: %v", domain.ErrInvalidInput, err)
	}

	seen := make(map[int64]bool, len(f.Users))
	for _, u := range f.Users {
		if err := checkID("user", u.ID, seen); err != nil {
			return nil, err
		}
	}
	seen = make(map[int64]bool, len(f.Posts))
	for _, p := range f.Posts {
		if err := checkID("post", p.ID, seen); err != nil {
			return nil, err
		}
		if p.Likes < 0 {
			return nil, fmt.Errorf("%w: post %d has negative likes", domain.ErrInvalidInput, p.ID)
		}
	}
	return &f, nil
}

func checkID(kind string, id int64, seen map[int64]bool) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be positive, got %d", domain.ErrInvalidInput, kind, id)
	}
	if seen[id] {
		return fmt.Errorf("%w: %s %d", domain.ErrDuplicateID, kind, id)
	}
	seen[id] = true
	return nil
}

// Apply inserts the fixtures into db in file order.
func Apply(ctx context.Context, db domain.Database, f *Fixtures) error {
	users := db.Users()
	for _, u := range f.Users {
		user := domain.User{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			RegisteredAt: u.RegisteredAt,
		}
		if err := users.Insert(ctx, &user); err != nil {
			return fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}

	posts := db.Posts()
	for _, p := range f.Posts {
		post := domain.Post{
			ID:        p.ID,
			Title:     p.Title,
			Author:    p.Author,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
			Likes:     p.Likes,
		}
		if err := posts.Insert(ctx, &post); err != nil {
			return fmt.Errorf("seed post %d: %w", p.ID, err)
		}
	}
	return nil
}
