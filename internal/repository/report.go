package repository

import (
	"context"

	"expedientes/internal/model"
)

// ReportRepository aggregates dashboard statistics. Trashed documents are
// excluded from every figure.
type ReportRepository interface {
	Stats(ctx context.Context) (*model.ReportStats, error)
}
