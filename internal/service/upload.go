package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"expedientes/internal/storage"
)

var (
	ErrReaderNil          = errors.New("reader is nil")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
)

// allowedUploadTypes maps accepted extensions to their declared MIME types.
// Both the extension and the declared content type must match.
var allowedUploadTypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	".xls":  {"application/vnd.ms-excel"},
	".xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
}

// UploadResult describes a stored file.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadService relays document files to object storage. Files are never
// written to local disk.
type UploadService interface {
	// Upload validates the file type and streams the content to storage
	// under expedientes/<expedienteID>/ (or expedientes/general/ when no
	// expediente is given). The stored name is a fresh UUID plus the
	// original extension.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, expedienteID string) (*UploadResult, error)
}

type uploadService struct {
	store    storage.Storage
	maxBytes int64
}

// NewUploadService constructs a new UploadService. maxSizeMB bounds the
// accepted file size when the size is known up front.
func NewUploadService(store storage.Storage, maxSizeMB int) UploadService {
	return &uploadService{store: store, maxBytes: int64(maxSizeMB) * 1024 * 1024}
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, expedienteID string) (*UploadResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	ext := strings.ToLower(filepath.Ext(originalFilename))
	mimes, ok := allowedUploadTypes[ext]
	if !ok {
		return nil, ErrFileTypeNotAllowed
	}
	if !mimeAllowed(contentType, mimes) {
		return nil, ErrFileTypeNotAllowed
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	folder := expedienteID
	if folder == "" {
		folder = "general"
	}
	key := filepath.ToSlash(filepath.Join("expedientes", folder, uuid.New().String()+ext))

	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	return &UploadResult{URL: s.store.PublicURL(key), Key: key}, nil
}

func mimeAllowed(contentType string, mimes []string) bool {
	// Some clients append charset or boundary parameters.
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	for _, m := range mimes {
		if contentType == m {
			return true
		}
	}
	return false
}
