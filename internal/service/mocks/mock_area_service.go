package mocks

import (
	"context"

	"expedientes/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAreaService struct {
	mock.Mock
}

func (m *MockAreaService) Create(ctx context.Context, name string) (*model.Area, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockAreaService) Get(ctx context.Context, id string) (*model.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockAreaService) List(ctx context.Context) ([]model.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Area), args.Error(1)
}

func (m *MockAreaService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
