package repository

import (
	"context"

	"expedientes/internal/model"
	"expedientes/internal/search"
)

// SearchRepository executes the queries produced by the filter-predicate
// builder and maps rows into the uniform result shape. Each call runs the
// paged query plus an unlimited COUNT with the same predicates.
type SearchRepository interface {
	Documents(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error)
	Expedientes(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error)

	// DocumentYears returns the distinct years of non-deleted document dates,
	// descending. Used to populate the search filter dropdowns.
	DocumentYears(ctx context.Context) ([]int, error)
}
