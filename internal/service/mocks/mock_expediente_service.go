package mocks

import (
	"context"

	"expedientes/internal/model"
	"expedientes/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockExpedienteService struct {
	mock.Mock
}

func (m *MockExpedienteService) Create(ctx context.Context, in service.ExpedienteInput) (*model.Expediente, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteService) Update(ctx context.Context, id string, in service.ExpedienteInput) (*model.Expediente, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteService) Get(ctx context.Context, id string) (*model.Expediente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expediente), args.Error(1)
}

func (m *MockExpedienteService) List(ctx context.Context, page, limit int) (*service.ExpedienteListResult, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExpedienteListResult), args.Error(1)
}

func (m *MockExpedienteService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
