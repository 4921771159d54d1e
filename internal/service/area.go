package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

var (
	ErrAreaNotFound       = errors.New("area not found")
	ErrAreaExists         = errors.New("area already exists")
	ErrAreaHasExpedientes = errors.New("area has expedientes")
)

// AreaService defines the use cases for handling areas.
type AreaService interface {
	Create(ctx context.Context, name string) (*model.Area, error)
	Get(ctx context.Context, id string) (*model.Area, error)
	List(ctx context.Context) ([]model.Area, error)

	// Delete removes an area. It is blocked while any expediente still
	// references it.
	Delete(ctx context.Context, id string) error
}

type areaService struct {
	areas repository.AreaRepository
}

// NewAreaService constructs a new AreaService.
func NewAreaService(areas repository.AreaRepository) AreaService {
	return &areaService{areas: areas}
}

func (s *areaService) Create(ctx context.Context, name string) (*model.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAreaNameRequired
	}
	if _, err := s.areas.FindByName(ctx, name); err == nil {
		return nil, ErrAreaExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find area: %w", err)
	}
	area, err := s.areas.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create area: %w", err)
	}
	return area, nil
}

func (s *areaService) Get(ctx context.Context, id string) (*model.Area, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	area, err := s.areas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	return area, nil
}

func (s *areaService) List(ctx context.Context) ([]model.Area, error) {
	return s.areas.List(ctx)
}

func (s *areaService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.areas.CountExpedientes(ctx, id)
	if err != nil {
		return fmt.Errorf("count expedientes: %w", err)
	}
	if count > 0 {
		return ErrAreaHasExpedientes
	}
	if err := s.areas.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAreaNotFound
		}
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}
