package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expedientes/internal/model"
	"expedientes/internal/search"
)

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) Documents(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.SearchResult), args.Int(1), args.Error(2)
}

func (m *MockSearchRepository) Expedientes(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.SearchResult), args.Int(1), args.Error(2)
}

func (m *MockSearchRepository) DocumentYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
