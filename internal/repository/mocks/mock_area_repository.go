package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expedientes/internal/model"
)

type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) Create(ctx context.Context, name string) (*model.Area, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockAreaRepository) FindByID(ctx context.Context, id string) (*model.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockAreaRepository) FindByName(ctx context.Context, name string) (*model.Area, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockAreaRepository) List(ctx context.Context) ([]model.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Area), args.Error(1)
}

func (m *MockAreaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAreaRepository) CountExpedientes(ctx context.Context, areaID string) (int, error) {
	args := m.Called(ctx, areaID)
	return args.Int(0), args.Error(1)
}
