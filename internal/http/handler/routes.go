package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"expedientes/internal/auth"
	"expedientes/internal/http/middleware"
	"expedientes/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	DB          *sql.DB
	TokenIssuer *auth.TokenIssuer

	Auth        service.AuthService
	Documents   service.DocumentService
	Expedientes service.ExpedienteService
	Areas       service.AreaService
	Search      service.SearchService
	Reports     service.ReportService
	Uploads     service.UploadService
	Users       service.UserService
}

// Register attaches all routes to the Fiber app. Health probes and login are
// public; everything else sits behind the bearer-token guard, so ordering
// here matters.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/auth/login", h.login)

	// Health endpoint: checks DB connectivity.
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "service_unavailable", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Use(middleware.Auth(h.TokenIssuer))

	app.Get("/documents", h.listDocuments)
	app.Get("/documents/:id", h.getDocument)
	app.Post("/documents", h.createDocument)
	app.Put("/documents", h.updateDocument)
	app.Delete("/documents", h.softDeleteDocument)
	app.Post("/documents/restore", h.restoreDocument)
	app.Post("/documents/purge", h.purgeDocument)
	app.Post("/documents/upload", h.uploadDocument)

	app.Get("/expedientes", h.listExpedientes)
	app.Get("/expedientes/:id", h.getExpediente)
	app.Post("/expedientes", h.createExpediente)
	app.Put("/expedientes/:id", h.updateExpediente)
	app.Delete("/expedientes/:id", h.deleteExpediente)

	app.Get("/areas", h.listAreas)
	app.Post("/areas", h.createArea)
	app.Delete("/areas/:id", h.deleteArea)

	app.Get("/search", h.search)
	app.Post("/search", h.searchPost)

	app.Get("/users", h.listUsers)
	app.Get("/reports", h.reportStats)
}
