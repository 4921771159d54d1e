package service

import (
	"context"
	"errors"
	"time"

	"expedientes/internal/model"
	"expedientes/internal/repository"
	"expedientes/internal/search"
	"expedientes/internal/timeutil"
)

// Search scopes accepted by the unified search endpoint.
const (
	SearchDocuments   = "documents"
	SearchExpedientes = "expedientes"
	SearchAll         = "all"
)

// filterYearsSpan is how many years the filter dropdown offers when no
// documents exist yet.
const filterYearsSpan = 10

var ErrInvalidSearchType = errors.New("invalid search type")

// SearchPage is one page of unified search results.
type SearchPage struct {
	Results    []model.SearchResult `json:"results"`
	Total      int                  `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"total_pages"`
}

// SearchFilters is the payload backing the search filter dropdowns.
type SearchFilters struct {
	Areas []model.Area `json:"areas"`
	Years []int        `json:"years"`
}

// SearchService runs unified searches over documents and expedientes.
type SearchService interface {
	// Search runs a search in the given scope. The "all" scope queries both
	// collections and merges the pages by date.
	Search(ctx context.Context, scope string, opts search.Options) (*SearchPage, error)

	// Filters returns the areas and document years available for filtering.
	Filters(ctx context.Context) (*SearchFilters, error)
}

type searchService struct {
	repo  repository.SearchRepository
	areas repository.AreaRepository
}

// NewSearchService constructs a new SearchService.
func NewSearchService(repo repository.SearchRepository, areas repository.AreaRepository) SearchService {
	return &searchService{repo: repo, areas: areas}
}

func (s *searchService) Search(ctx context.Context, scope string, opts search.Options) (*SearchPage, error) {
	opts.Normalize()
	switch scope {
	case SearchDocuments:
		results, total, err := s.repo.Documents(ctx, opts)
		if err != nil {
			return nil, err
		}
		return page(results, total, opts), nil
	case SearchExpedientes:
		results, total, err := s.repo.Expedientes(ctx, opts)
		if err != nil {
			return nil, err
		}
		return page(results, total, opts), nil
	case SearchAll, "":
		docs, docTotal, err := s.repo.Documents(ctx, opts)
		if err != nil {
			return nil, err
		}
		exps, expTotal, err := s.repo.Expedientes(ctx, opts)
		if err != nil {
			return nil, err
		}
		merged := search.MergeByDate(docs, exps, func(r model.SearchResult) time.Time { return r.Date }, opts.SortOrder)
		return page(merged, docTotal+expTotal, opts), nil
	default:
		return nil, ErrInvalidSearchType
	}
}

func (s *searchService) Filters(ctx context.Context) (*SearchFilters, error) {
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, err
	}
	years, err := s.repo.DocumentYears(ctx)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		current := timeutil.Now().Year()
		for y := current; y > current-filterYearsSpan; y-- {
			years = append(years, y)
		}
	}
	return &SearchFilters{Areas: areas, Years: years}, nil
}

func page(results []model.SearchResult, total int, opts search.Options) *SearchPage {
	return &SearchPage{
		Results:    results,
		Total:      total,
		Page:       opts.Page,
		TotalPages: opts.TotalPages(total),
	}
}
