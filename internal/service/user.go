package service

import (
	"context"
	"database/sql"
	"errors"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// UserService lists and resolves user accounts. Used to populate the
// responsible-user pickers.
type UserService interface {
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
