package repository

import (
	"context"
	"time"

	"expedientes/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations. Operations that
// target a specific row return sql.ErrNoRows when the row (in the required
// soft-delete state) does not exist, so callers can translate to a domain
// not-found error.
type DocumentRepository interface {
	// Create inserts a new active document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Update rewrites the mutable columns of an existing document by ID.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID regardless of soft-delete state.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListActive returns a paginated list of non-deleted documents with
	// joined display fields, newest business date first.
	ListActive(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// ListByExpediente returns all non-deleted documents of one expediente,
	// newest business date first, without pagination.
	ListByExpediente(ctx context.Context, expedienteID string) ([]model.Document, error)

	// ListTrashed returns a paginated list of soft-deleted documents,
	// most recently deleted first.
	ListTrashed(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// SoftDelete stamps deleted_at on an active document.
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// Restore clears deleted_at on a trashed document.
	Restore(ctx context.Context, id string) error

	// Purge permanently removes a document row.
	Purge(ctx context.Context, id string) error

	// CountByExpediente counts ALL documents of an expediente, trashed
	// included. Used by the expediente deletion guard.
	CountByExpediente(ctx context.Context, expedienteID string) (int, error)
}
