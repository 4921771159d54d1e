package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

type MockExpedienteRepository struct {
	mock.Mock
}

func (m *MockExpedienteRepository) Create(ctx context.Context, exp *model.Expediente) (*model.Expediente, error) {
	args := m.Called(ctx, exp)
	if f, ok := args.Get(0).(func(context.Context, *model.Expediente) *model.Expediente); ok {
		return f(ctx, exp), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteRepository) Update(ctx context.Context, exp *model.Expediente) (*model.Expediente, error) {
	args := m.Called(ctx, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteRepository) FindByID(ctx context.Context, id string) (*model.Expediente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Expediente], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Expediente]), args.Error(1)
}

func (m *MockExpedienteRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpedienteRepository) TouchUpdatedAt(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}
