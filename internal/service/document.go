package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"expedientes/internal/model"
	"expedientes/internal/repository"
	"expedientes/internal/timeutil"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("document not found")
	ErrExpedienteNotFound = errors.New("expediente not found")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidDocType     = errors.New("invalid document type")
	ErrDocumentNotTrashed = errors.New("document is not in the trash")
	ErrDocumentTrashed    = errors.New("document is in the trash")
)

// DocumentInput carries the writable fields of a document. Area and
// responsible user are never taken from the caller; they are snapshotted
// from the owning expediente.
type DocumentInput struct {
	ExpedienteID string    `json:"expediente_id"`
	Name         string    `json:"name"`
	DocType      string    `json:"doc_type"`
	Date         time.Time `json:"date"`
	FilePath     string    `json:"file_path"`
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items      []model.Document `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// DocumentService defines the use cases for handling documents, including
// the trash lifecycle. Every mutation refreshes the owning expediente's
// updated_at: create and update stamp it with the document's business date,
// trash operations stamp it with the current time.
type DocumentService interface {
	Create(ctx context.Context, in DocumentInput) (*model.Document, error)
	Update(ctx context.Context, id string, in DocumentInput) (*model.Document, error)
	Get(ctx context.Context, id string) (*model.Document, error)

	// List returns active documents, newest business date first.
	List(ctx context.Context, page, limit int) (*DocumentListResult, error)
	// ListByExpediente returns all active documents of one expediente.
	ListByExpediente(ctx context.Context, expedienteID string) ([]model.Document, error)
	// ListTrashed returns trashed documents, most recently deleted first.
	ListTrashed(ctx context.Context, page, limit int) (*DocumentListResult, error)

	// SoftDelete moves an active document to the trash.
	SoftDelete(ctx context.Context, id string) error
	// Restore moves a trashed document back to active.
	Restore(ctx context.Context, id string) error
	// Purge permanently removes a trashed document.
	Purge(ctx context.Context, id string) error
}

type documentService struct {
	docs repository.DocumentRepository
	exps repository.ExpedienteRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(docs repository.DocumentRepository, exps repository.ExpedienteRepository) DocumentService {
	return &documentService{docs: docs, exps: exps}
}

func (s *documentService) Create(ctx context.Context, in DocumentInput) (*model.Document, error) {
	if err := validateDocumentInput(in); err != nil {
		return nil, err
	}
	exp, err := s.exps.FindByID(ctx, in.ExpedienteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpedienteNotFound
		}
		return nil, err
	}

	doc := &model.Document{
		ID:                uuid.New().String(),
		ExpedienteID:      exp.ID,
		Name:              in.Name,
		DocType:           in.DocType,
		Date:              in.Date,
		ResponsibleUserID: exp.ResponsibleUserID,
		AreaID:            exp.AreaID,
		FilePath:          in.FilePath,
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	s.touchParent(ctx, exp.ID, stored.Date)
	return stored, nil
}

func (s *documentService) Update(ctx context.Context, id string, in DocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateDocumentInput(in); err != nil {
		return nil, err
	}
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Trashed() {
		return nil, ErrDocumentTrashed
	}
	exp, err := s.exps.FindByID(ctx, in.ExpedienteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpedienteNotFound
		}
		return nil, err
	}

	existing.ExpedienteID = exp.ID
	existing.Name = in.Name
	existing.DocType = in.DocType
	existing.Date = in.Date
	existing.ResponsibleUserID = exp.ResponsibleUserID
	existing.AreaID = exp.AreaID
	if in.FilePath != "" {
		existing.FilePath = in.FilePath
	}
	stored, err := s.docs.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	s.touchParent(ctx, exp.ID, stored.Date)
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.find(ctx, id)
}

func (s *documentService) List(ctx context.Context, page, limit int) (*DocumentListResult, error) {
	page, limit = normalizePage(page, limit)
	res, err := s.docs.ListActive(ctx, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	return listResult(res, page, limit), nil
}

func (s *documentService) ListByExpediente(ctx context.Context, expedienteID string) ([]model.Document, error) {
	if expedienteID == "" {
		return nil, ErrIDRequired
	}
	return s.docs.ListByExpediente(ctx, expedienteID)
}

func (s *documentService) ListTrashed(ctx context.Context, page, limit int) (*DocumentListResult, error) {
	page, limit = normalizePage(page, limit)
	res, err := s.docs.ListTrashed(ctx, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	return listResult(res, page, limit), nil
}

func (s *documentService) SoftDelete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if doc.Trashed() {
		return ErrDocumentTrashed
	}
	now := timeutil.Now()
	if err := s.docs.SoftDelete(ctx, id, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("trash document: %w", err)
	}
	s.touchParent(ctx, doc.ExpedienteID, now)
	return nil
}

func (s *documentService) Restore(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !doc.Trashed() {
		return ErrDocumentNotTrashed
	}
	if err := s.docs.Restore(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("restore document: %w", err)
	}
	s.touchParent(ctx, doc.ExpedienteID, timeutil.Now())
	return nil
}

func (s *documentService) Purge(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !doc.Trashed() {
		return ErrDocumentNotTrashed
	}
	if err := s.docs.Purge(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("purge document: %w", err)
	}
	s.touchParent(ctx, doc.ExpedienteID, timeutil.Now())
	return nil
}

func (s *documentService) find(ctx context.Context, id string) (*model.Document, error) {
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// touchParent refreshes the owning expediente's updated_at. The document
// mutation already happened, so a vanished expediente or a failed touch is
// not surfaced to the caller.
func (s *documentService) touchParent(ctx context.Context, expedienteID string, at time.Time) {
	_ = s.exps.TouchUpdatedAt(ctx, expedienteID, at)
}

func validateDocumentInput(in DocumentInput) error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.ExpedienteID == "" {
		return ErrExpedienteNotFound
	}
	if !model.ValidDocType(in.DocType) {
		return ErrInvalidDocType
	}
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func listResult(res *repository.PageResult[model.Document], page, limit int) *DocumentListResult {
	pages := res.Total / limit
	if res.Total%limit != 0 {
		pages++
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total, Page: page, TotalPages: pages}
}
