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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	handlers "jobboard/internal/http/handler"
	"jobboard/internal/http/middleware"
	"jobboard/internal/hub"
	otelinit "jobboard/internal/otel"
	"jobboard/internal/ratelimit"
	repoMongo "jobboard/internal/repository/mongo"
	"jobboard/internal/service"
	"jobboard/internal/session"
	"jobboard/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	shutdownTracing, err := otelinit.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx)

	// MongoDB
	db, closeMongo, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer closeMongo(ctx)

	// Best-effort index and validator setup; failures surface in /health.
	setup := migration.EnsureSetup(ctx, db, logger)

	// Redis-backed sessions
	sessions, err := session.NewRedis(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// S3-compatible object storage (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	notifyHub := hub.New(cfg.Admin.MaxWSConnections, logger)
	limiter := ratelimit.New()

	// Repositories
	jobRepo := repoMongo.NewJobMongo(db)
	appRepo := repoMongo.NewApplicationMongo(db)
	mediaRepo := repoMongo.NewMediaMongo(db)
	userRepo := repoMongo.NewUserMongo(db)
	auditRepo := repoMongo.NewAuditMongo(db)
	contentRepo := repoMongo.NewContentMongo(db)
	adminRepo := repoMongo.NewAdminMongo(db)

	sessionTTL := time.Duration(cfg.Admin.SessionTTLSec) * time.Second

	// Services
	jobSvc := service.NewJobService(jobRepo)
	appSvc := service.NewApplicationService(jobRepo, appRepo, auditRepo, limiter, notifyHub, logger)
	mediaSvc := service.NewMediaService(mediaRepo, objStore, limiter)
	contentSvc := service.NewContentService(contentRepo)
	authSvc := service.NewAuthService(userRepo, sessions, auditRepo, sessionTTL, logger)
	adminSvc := service.NewAdminService(adminRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	promReg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}
	err = middleware.RegisterAppMetrics(promReg,
		func() float64 { return float64(notifyHub.Len()) },
		func() float64 { return float64(notifyHub.Broadcasts()) },
		func() float64 { return float64(limiter.Rejected()) },
	)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:           db,
		Setup:        setup,
		Jobs:         jobSvc,
		Applications: appSvc,
		Media:        mediaSvc,
		Content:      contentSvc,
		Auth:         authSvc,
		Admin:        adminSvc,
		Hub:          notifyHub,
		Sessions:     sessions,
		CookieName:   cfg.Admin.SessionCookieName,
		SessionTTL:   sessionTTL,
		AdminSecret:  cfg.Admin.SecretKey,
		Log:          logger,
	})

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
