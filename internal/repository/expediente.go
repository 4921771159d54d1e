package repository

import (
	"context"
	"time"

	"expedientes/internal/model"
)

// ExpedienteRepository defines data access for expedientes.
type ExpedienteRepository interface {
	Create(ctx context.Context, exp *model.Expediente) (*model.Expediente, error)
	Update(ctx context.Context, exp *model.Expediente) (*model.Expediente, error)
	FindByID(ctx context.Context, id string) (*model.Expediente, error)

	// List returns a paginated list with joined display fields, newest first.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Expediente], error)

	Delete(ctx context.Context, id string) error

	// TouchUpdatedAt sets updated_at without changing any other column.
	// Returns sql.ErrNoRows when the expediente no longer exists.
	TouchUpdatedAt(ctx context.Context, id string, at time.Time) error
}
