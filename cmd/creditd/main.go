package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/usecase"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/infrastructure/config"
	infrakafka "github.com/luisfernandobanegasro/entidad-financiera/internal/infrastructure/kafka"
	pgRepo "github.com/luisfernandobanegasro/entidad-financiera/internal/infrastructure/postgres"
	grpcPresentation "github.com/luisfernandobanegasro/entidad-financiera/internal/presentation/grpc"
	"github.com/luisfernandobanegasro/entidad-financiera/internal/presentation/rest"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/auth"
	pkgkafka "github.com/luisfernandobanegasro/entidad-financiera/pkg/kafka"
	"github.com/luisfernandobanegasro/entidad-financiera/pkg/observability"
	pkgpostgres "github.com/luisfernandobanegasro/entidad-financiera/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	logger.Info("starting credit-engine",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://"+cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	requestRepo := pgRepo.NewCreditRequestRepo(pool)
	scheduleRepo := pgRepo.NewScheduleRepo(pool)
	customerRepo := pgRepo.NewCustomerRepo(pool)
	officerRepo := pgRepo.NewOfficerRepo(pool)
	productRepo := pgRepo.NewProductRepo(pool)
	documentRepo := pgRepo.NewDocumentRepo(pool)
	auditRepo := pgRepo.NewAuditLogRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer kafkaProducer.Close()
	publisher := infrakafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Use cases.
	registerCustomerUC := usecase.NewRegisterCustomerUseCase(customerRepo)
	submitRequestUC := usecase.NewSubmitRequestUseCase(customerRepo, productRepo, requestRepo, auditRepo, publisher)
	evaluateRequestUC := usecase.NewEvaluateRequestUseCase(requestRepo, officerRepo, auditRepo, publisher)
	decideRequestUC := usecase.NewDecideRequestUseCase(requestRepo, officerRepo, auditRepo, publisher)
	generateScheduleUC := usecase.NewGenerateScheduleUseCase(requestRepo, scheduleRepo, auditRepo, publisher)
	previewUC := usecase.NewPreviewScheduleUseCase()
	simulateUC := usecase.NewSimulateScheduleUseCase(previewUC)
	attachDocumentUC := usecase.NewAttachDocumentUseCase(requestRepo, documentRepo)
	getRequestUC := usecase.NewGetRequestUseCase(requestRepo)
	getScheduleUC := usecase.NewGetScheduleUseCase(scheduleRepo)
	getChecklistUC := usecase.NewGetChecklistUseCase(requestRepo, documentRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{Issuer: cfg.JWT.Issuer}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.JWT.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(
		registerCustomerUC, submitRequestUC, evaluateRequestUC, decideRequestUC,
		generateScheduleUC, simulateUC, attachDocumentUC,
		getRequestUC, getScheduleUC, getChecklistUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("credit-engine stopped")
}
