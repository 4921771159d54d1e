package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"expedientes/internal/model"
	"expedientes/internal/repository"
	"expedientes/internal/timeutil"
)

var (
	ErrNumberRequired         = errors.New("number is required")
	ErrAreaNameRequired       = errors.New("area name is required")
	ErrInvalidState           = errors.New("invalid expediente state")
	ErrUserNotFound           = errors.New("user not found")
	ErrExpedienteHasDocuments = errors.New("expediente has documents")
)

// ExpedienteInput carries the writable fields of an expediente. The area is
// referenced by name and resolved (or created) during the write.
type ExpedienteInput struct {
	Number            string `json:"number"`
	State             string `json:"state"`
	AreaName          string `json:"area_name"`
	ResponsibleUserID string `json:"responsible_user_id"`
}

// ExpedienteListResult is the service-level DTO for paginated expedientes.
type ExpedienteListResult struct {
	Items      []model.Expediente `json:"data"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

// ExpedienteService defines the use cases for handling expedientes.
type ExpedienteService interface {
	Create(ctx context.Context, in ExpedienteInput) (*model.Expediente, error)
	Update(ctx context.Context, id string, in ExpedienteInput) (*model.Expediente, error)
	Get(ctx context.Context, id string) (*model.Expediente, error)
	List(ctx context.Context, page, limit int) (*ExpedienteListResult, error)

	// Delete removes an expediente. It is blocked while any document,
	// trashed included, still references it.
	Delete(ctx context.Context, id string) error
}

type expedienteService struct {
	exps  repository.ExpedienteRepository
	docs  repository.DocumentRepository
	areas repository.AreaRepository
	users repository.UserRepository
}

// NewExpedienteService constructs a new ExpedienteService.
func NewExpedienteService(exps repository.ExpedienteRepository, docs repository.DocumentRepository, areas repository.AreaRepository, users repository.UserRepository) ExpedienteService {
	return &expedienteService{exps: exps, docs: docs, areas: areas, users: users}
}

func (s *expedienteService) Create(ctx context.Context, in ExpedienteInput) (*model.Expediente, error) {
	if in.State == "" {
		in.State = model.StateEnTramite
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	area, err := s.resolveArea(ctx, in.AreaName)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	exp := &model.Expediente{
		ID:                uuid.New().String(),
		Number:            in.Number,
		State:             in.State,
		CreatedAt:         now,
		UpdatedAt:         now,
		ResponsibleUserID: in.ResponsibleUserID,
		AreaID:            area.ID,
	}
	stored, err := s.exps.Create(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("create expediente: %w", err)
	}
	return stored, nil
}

func (s *expedienteService) Update(ctx context.Context, id string, in ExpedienteInput) (*model.Expediente, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}
	existing, err := s.findExpediente(ctx, id)
	if err != nil {
		return nil, err
	}
	area, err := s.resolveArea(ctx, in.AreaName)
	if err != nil {
		return nil, err
	}

	existing.Number = in.Number
	existing.State = in.State
	existing.ResponsibleUserID = in.ResponsibleUserID
	existing.AreaID = area.ID
	existing.UpdatedAt = timeutil.Now()
	stored, err := s.exps.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpedienteNotFound
		}
		return nil, fmt.Errorf("update expediente: %w", err)
	}
	return stored, nil
}

func (s *expedienteService) Get(ctx context.Context, id string) (*model.Expediente, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.findExpediente(ctx, id)
}

func (s *expedienteService) List(ctx context.Context, page, limit int) (*ExpedienteListResult, error) {
	page, limit = normalizePage(page, limit)
	res, err := s.exps.List(ctx, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	pages := res.Total / limit
	if res.Total%limit != 0 {
		pages++
	}
	return &ExpedienteListResult{Items: res.Items, Total: res.Total, Page: page, TotalPages: pages}, nil
}

func (s *expedienteService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := s.findExpediente(ctx, id); err != nil {
		return err
	}
	// The guard counts trashed documents too: a trashed document still
	// belongs to its expediente and can be restored.
	count, err := s.docs.CountByExpediente(ctx, id)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if count > 0 {
		return ErrExpedienteHasDocuments
	}
	if err := s.exps.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrExpedienteNotFound
		}
		return fmt.Errorf("delete expediente: %w", err)
	}
	return nil
}

func (s *expedienteService) findExpediente(ctx context.Context, id string) (*model.Expediente, error) {
	exp, err := s.exps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpedienteNotFound
		}
		return nil, err
	}
	return exp, nil
}

// resolveArea finds an area by name, creating it when absent.
func (s *expedienteService) resolveArea(ctx context.Context, name string) (*model.Area, error) {
	area, err := s.areas.FindByName(ctx, name)
	if err == nil {
		return area, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find area: %w", err)
	}
	area, err = s.areas.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create area: %w", err)
	}
	return area, nil
}

func (s *expedienteService) validateInput(ctx context.Context, in ExpedienteInput) error {
	if in.Number == "" {
		return ErrNumberRequired
	}
	if !model.ValidState(in.State) {
		return ErrInvalidState
	}
	if in.AreaName == "" {
		return ErrAreaNameRequired
	}
	if in.ResponsibleUserID == "" {
		return ErrUserNotFound
	}
	if _, err := s.users.FindByID(ctx, in.ResponsibleUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
