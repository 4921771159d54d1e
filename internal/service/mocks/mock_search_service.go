package mocks

import (
	"context"

	"expedientes/internal/search"
	"expedientes/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, scope string, opts search.Options) (*service.SearchPage, error) {
	args := m.Called(ctx, scope, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchPage), args.Error(1)
}

func (m *MockSearchService) Filters(ctx context.Context) (*service.SearchFilters, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchFilters), args.Error(1)
}
