package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/admin-dashboard/internal/domain"
)

// UserService handles user administration.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every user in insertion order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes the user with the given id. Posts written by the user are
// left untouched. Returns domain.ErrNotFound if no user has that id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
