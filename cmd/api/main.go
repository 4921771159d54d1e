package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"expedientes/internal/auth"
	"expedientes/internal/config"
	"expedientes/internal/database"
	"expedientes/internal/database/migration"
	handlers "expedientes/internal/http/handler"
	"expedientes/internal/http/middleware"
	"expedientes/internal/otel"
	"expedientes/internal/repository/postgres"
	"expedientes/internal/service"
	"expedientes/internal/storage"
	"expedientes/internal/timeutil"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := timeutil.Location()

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()

	// Tracing (noop when OTEL_SDK_DISABLED=true or the exporter is unreachable)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// PostgreSQL connection (pooled via database/sql, traced via otelsql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage for uploaded files
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)

	// Repositories
	docRepo := postgres.NewDocumentPostgres(db)
	expRepo := postgres.NewExpedientePostgres(db)
	areaRepo := postgres.NewAreaPostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	searchRepo := postgres.NewSearchPostgres(db)
	reportRepo := postgres.NewReportPostgres(db)

	h := &handlers.Handler{
		DB:          db,
		TokenIssuer: issuer,
		Auth:        service.NewAuthService(userRepo, issuer),
		Documents:   service.NewDocumentService(docRepo, expRepo),
		Expedientes: service.NewExpedienteService(expRepo, docRepo, areaRepo, userRepo),
		Areas:       service.NewAreaService(areaRepo),
		Search:      service.NewSearchService(searchRepo, areaRepo),
		Reports:     service.NewReportService(reportRepo),
		Uploads:     service.NewUploadService(objStore, cfg.Upload.MaxSizeMB),
		Users:       service.NewUserService(userRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request IDs, JSON request logs, traces, request metrics
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	h.Register(app)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
