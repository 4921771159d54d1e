package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"expedientes/internal/http/middleware"
	"expedientes/internal/service"
)

// errorPayload defines the standardized error response body. Error is a
// machine-readable code; Message is safe for display.
type errorPayload struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal details.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     code,
		Message:   message,
		RequestID: requestIDFromCtx(c),
	})
}

// serviceError maps service-layer errors onto HTTP responses. Unrecognized
// errors become opaque 500s; the concrete cause stays in the server log.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "document_not_found", "document not found")
	case errors.Is(err, service.ErrExpedienteNotFound):
		return writeError(c, fiber.StatusNotFound, "expediente_not_found", "expediente not found")
	case errors.Is(err, service.ErrAreaNotFound):
		return writeError(c, fiber.StatusNotFound, "area_not_found", "area not found")
	case errors.Is(err, service.ErrUserNotFound):
		return writeError(c, fiber.StatusNotFound, "user_not_found", "user not found")
	case errors.Is(err, service.ErrExpedienteHasDocuments):
		return writeError(c, fiber.StatusConflict, "expediente_has_documents", "el expediente tiene documentos asociados")
	case errors.Is(err, service.ErrAreaHasExpedientes):
		return writeError(c, fiber.StatusConflict, "area_has_expedientes", "el área tiene expedientes asociados")
	case errors.Is(err, service.ErrAreaExists):
		return writeError(c, fiber.StatusConflict, "area_exists", "area already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, fiber.StatusUnauthorized, "invalid_credentials", "invalid username or password")
	case errors.Is(err, service.ErrDocumentTrashed):
		return writeError(c, fiber.StatusConflict, "document_trashed", "document is in the trash")
	case errors.Is(err, service.ErrDocumentNotTrashed):
		return writeError(c, fiber.StatusConflict, "document_not_trashed", "document is not in the trash")
	case errors.Is(err, service.ErrFileTypeNotAllowed):
		return writeError(c, fiber.StatusBadRequest, "file_type_not_allowed", "file type not allowed")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusBadRequest, "file_too_large", "file exceeds the size limit")
	case errors.Is(err, service.ErrIDRequired),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNumberRequired),
		errors.Is(err, service.ErrAreaNameRequired),
		errors.Is(err, service.ErrInvalidDocType),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrInvalidSearchType),
		errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "validation_error", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for paths no handler claimed.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad_request", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "not_found", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method_not_allowed", "method not allowed")
		default:
			return writeError(c, status, "internal_error", "internal server error")
		}
	}
}
