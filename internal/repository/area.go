package repository

import (
	"context"

	"expedientes/internal/model"
)

// AreaRepository defines data access for areas.
type AreaRepository interface {
	Create(ctx context.Context, name string) (*model.Area, error)
	FindByID(ctx context.Context, id string) (*model.Area, error)
	FindByName(ctx context.Context, name string) (*model.Area, error)
	List(ctx context.Context) ([]model.Area, error)
	Delete(ctx context.Context, id string) error

	// CountExpedientes counts expedientes referencing the area. Used by the
	// area deletion guard.
	CountExpedientes(ctx context.Context, areaID string) (int, error)
}
