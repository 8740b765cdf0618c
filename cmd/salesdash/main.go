package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/salesdash/salesdash/internal/pkg/config"
	"github.com/salesdash/salesdash/internal/pkg/database"
	"github.com/salesdash/salesdash/internal/pkg/health"
	"github.com/salesdash/salesdash/internal/pkg/logger"
	"github.com/salesdash/salesdash/internal/pkg/middleware"
	"github.com/salesdash/salesdash/internal/pkg/server"
	"github.com/salesdash/salesdash/services/transactions/gateway"
	"github.com/salesdash/salesdash/services/transactions/handler"
	"github.com/salesdash/salesdash/services/transactions/repository"
	"github.com/salesdash/salesdash/services/transactions/usecase"
	"go.uber.org/zap"
)

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Log startup with Zap
	zapLogger.Info("Starting application",
		zap.String("app", configs.App.Name),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := transactionRepo.EnsureSchema(ctx); err != nil {
		zapLogger.Fatal("Failed to ensure transactions schema", zap.Error(err))
	}

	// Initialize gateway
	datasetGW := gateway.NewDatasetGW(configs.Dataset)

	// Initialize use case
	transactionUC := usecase.NewTransactionUC(transactionRepo, datasetGW, zapLogger.Logger)

	// Seed the store once if it is empty. Failure here is non-fatal: the
	// server still comes up and an empty store serves empty results.
	if err := transactionUC.BootstrapIfEmpty(ctx); err != nil {
		zapLogger.Warn("Bootstrap seed failed, starting with empty store", zap.Error(err))
	}

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(transactionUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, configs.App.Name, health.NewPostgresHealthChecker(postgresClient))

	// Register service routes
	transactionHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.Error(err))
	}
}
