package service

import (
	"context"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// ReportService exposes the dashboard aggregates.
type ReportService interface {
	Stats(ctx context.Context) (*model.ReportStats, error)
}

type reportService struct {
	repo repository.ReportRepository
}

// NewReportService constructs a new ReportService.
func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Stats(ctx context.Context) (*model.ReportStats, error) {
	return s.repo.Stats(ctx)
}
