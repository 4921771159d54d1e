package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"expedientes/internal/service"
	"expedientes/internal/timeutil"
)

// documentRequest is the wire shape for document writes. The date accepts
// RFC3339 or a bare YYYY-MM-DD, interpreted in the business timezone.
type documentRequest struct {
	ID           string `json:"id"`
	ExpedienteID string `json:"expediente_id"`
	Name         string `json:"name"`
	DocType      string `json:"doc_type"`
	Date         string `json:"date"`
	FilePath     string `json:"file_path"`
}

func (r documentRequest) input() (service.DocumentInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return service.DocumentInput{}, err
	}
	return service.DocumentInput{
		ExpedienteID: r.ExpedienteID,
		Name:         r.Name,
		DocType:      r.DocType,
		Date:         date,
		FilePath:     r.FilePath,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, timeutil.Location())
}

// listDocuments serves three listing modes: the default paginated active
// list, the full list of one expediente (?expedienteId=), and the paginated
// trash (?deleted=true).
func (h *Handler) listDocuments(c *fiber.Ctx) error {
	if expID := c.Query("expedienteId"); expID != "" {
		docs, err := h.Documents.ListByExpediente(c.UserContext(), expID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"data": docs, "total": len(docs)})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if c.QueryBool("deleted") {
		res, err := h.Documents.ListTrashed(c.UserContext(), page, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}

	res, err := h.Documents.List(c.UserContext(), page, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) getDocument(c *fiber.Ctx) error {
	doc, err := h.Documents.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) createDocument(c *fiber.Ctx) error {
	var req documentRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	in, err := req.input()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_date", "date must be RFC3339 or YYYY-MM-DD")
	}
	doc, err := h.Documents.Create(c.UserContext(), in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *Handler) updateDocument(c *fiber.Ctx) error {
	var req documentRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	in, err := req.input()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_date", "date must be RFC3339 or YYYY-MM-DD")
	}
	doc, err := h.Documents.Update(c.UserContext(), req.ID, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) softDeleteDocument(c *fiber.Ctx) error {
	if err := h.Documents.SoftDelete(c.UserContext(), c.Query("id")); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// idRequest is the body shape of trash lifecycle actions.
type idRequest struct {
	ID string `json:"id"`
}

func (h *Handler) restoreDocument(c *fiber.Ctx) error {
	var req idRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	if err := h.Documents.Restore(c.UserContext(), req.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) purgeDocument(c *fiber.Ctx) error {
	var req idRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	if err := h.Documents.Purge(c.UserContext(), req.ID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// uploadDocument relays a multipart file (field name: file) to object
// storage and returns its public URL.
func (h *Handler) uploadDocument(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "file_required", "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "file_open_error", "cannot open uploaded file")
	}
	defer f.Close()

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	res, err := h.Uploads.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size, c.FormValue("expedienteId"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
