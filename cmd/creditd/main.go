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

	"github.com/joho/godotenv"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/usecase"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/service"
	"github.com/Nalwa-Jayesh/credit-system/internal/infrastructure/config"
	infrakafka "github.com/Nalwa-Jayesh/credit-system/internal/infrastructure/kafka"
	pgRepo "github.com/Nalwa-Jayesh/credit-system/internal/infrastructure/persistence/postgres"
	"github.com/Nalwa-Jayesh/credit-system/internal/presentation/rest"
	pkgkafka "github.com/Nalwa-Jayesh/credit-system/pkg/kafka"
	"github.com/Nalwa-Jayesh/credit-system/pkg/observability"
	pkgpostgres "github.com/Nalwa-Jayesh/credit-system/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting credit-system", "http_port", cfg.HTTPPort)

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

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

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Infrastructure adapters.
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	transactor := pgRepo.NewTransactor(pool)

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := infrakafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)

	// Domain engines.
	scorer := service.NewScoringEngine()
	decider := service.NewDecisionEngine()

	// Use cases.
	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, publisher, logger)
	eligibilityUC := usecase.NewCheckEligibilityUseCase(customerRepo, loanRepo, scorer, decider)
	createLoanUC := usecase.NewCreateLoanUseCase(transactor, publisher, scorer, decider, logger)
	viewLoanUC := usecase.NewViewLoanUseCase(loanRepo, customerRepo)
	viewLoansUC := usecase.NewViewCustomerLoansUseCase(loanRepo)

	// HTTP server.
	handler := rest.NewHandler(registerUC, eligibilityUC, createLoanUC, viewLoanUC, viewLoansUC, logger)
	health := rest.NewHealthHandler(logger, func(ctx context.Context) error {
		return pkgpostgres.HealthCheck(ctx, pool)
	})
	router := rest.NewRouter(handler, health, metricsHandler, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-system stopped")
}
