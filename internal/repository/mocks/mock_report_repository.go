package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"expedientes/internal/model"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Stats(ctx context.Context) (*model.ReportStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportStats), args.Error(1)
}
