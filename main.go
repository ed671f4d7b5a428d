package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/edusight/retain-engine/pkg/config"
	"github.com/edusight/retain-engine/pkg/database"
	"github.com/edusight/retain-engine/pkg/handlers"
	"github.com/edusight/retain-engine/pkg/llm"
	"github.com/edusight/retain-engine/pkg/middleware"
	"github.com/edusight/retain-engine/pkg/repositories"
	"github.com/edusight/retain-engine/pkg/retry"
	"github.com/edusight/retain-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", cfg.Database.Database),
		zap.String("oracle_provider", cfg.Oracle.Provider),
		zap.String("oracle_model", cfg.Oracle.Model))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Migrations run over database/sql; the pool below serves requests.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	oracle, err := llm.NewOracleClient(&llm.Config{
		Provider: cfg.Oracle.Provider,
		Endpoint: cfg.Oracle.Endpoint,
		Model:    cfg.Oracle.Model,
		APIKey:   cfg.Oracle.APIKey,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create oracle client", zap.Error(err))
	}

	// Repositories
	studentRepo := repositories.NewStudentRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	feeRepo := repositories.NewFeeRepository(db)
	riskRepo := repositories.NewRiskAssessmentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Services
	aggregator := services.NewStudentAggregator(studentRepo, attendanceRepo, assessmentRepo, feeRepo, logger)
	alertPolicy := services.NewAlertPolicy(notificationRepo, logger)
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Oracle.MaxRetries
	analysisService := services.NewRiskAnalysisService(
		aggregator, oracle, riskRepo, alertPolicy, retryCfg, cfg.Oracle.Timeout(), logger)
	ingestService := services.NewIngestService(studentRepo, attendanceRepo, assessmentRepo, feeRepo, logger)
	dashboardService := services.NewDashboardService(studentRepo, riskRepo, notificationRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)

	// Handlers
	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewUploadHandler(ingestService, logger).RegisterRoutes(mux)
	handlers.NewAnalysisHandler(analysisService, logger).RegisterRoutes(mux)
	handlers.NewDashboardHandler(dashboardService, logger).RegisterRoutes(mux)
	handlers.NewNotificationHandler(notificationService, logger).RegisterRoutes(mux)
	handlers.NewRecordsHandler(studentRepo, attendanceRepo, assessmentRepo, feeRepo, logger).RegisterRoutes(mux)

	// WriteTimeout must cover a full analysis: oracle timeout across all
	// retry attempts plus backoff.
	server := &http.Server{
		Addr:              cfg.BindAddr + ":" + cfg.Port,
		Handler:           middleware.RequestLogger(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      cfg.Oracle.Timeout()*time.Duration(cfg.Oracle.MaxRetries+1) + time.Minute,
	}

	go func() {
		logger.Info("Starting retain-engine",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
