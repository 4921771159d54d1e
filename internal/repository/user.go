package repository

import (
	"context"

	"expedientes/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}
