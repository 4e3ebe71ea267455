package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/caching"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/config"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/handlers"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/jobs/background"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/middleware"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/services"
	"github.com/Thur2312/remix-of-finance-manager-sub000/pkg/database"
	"github.com/Thur2312/remix-of-finance-manager-sub000/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	if err := run(cfg, log); err != nil {
		mainLog := logger.Component(log, "main")
		mainLog.Fatal().Err(err).Msg("Server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	mainLog := logger.Component(log, "main")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	// Repositories
	bankRepo := repositories.NewBankTransactionRepo(pool)
	settlementRepo := repositories.NewSettlementRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	feeRepo := repositories.NewFeeSettingsRepo(pool)

	// Cache and object storage
	redisClient := caching.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()
	cacheSvc := caching.NewRedisCacheService(redisClient, cfg.DiagnosticsTTL, log)

	storage, err := services.NewStorageService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket, log)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		mainLog.Warn().Err(err).Str("bucket", cfg.MinioBucket).Msg("Storage bucket unavailable, uploads will not be archived")
	}

	profiles, err := config.LoadBankProfiles(cfg.BankProfilesFile)
	if err != nil {
		return err
	}

	// Services
	importSvc := services.NewImportService(bankRepo, settlementRepo, orderRepo, feeRepo, cacheSvc, storage, profiles, log)
	profitSvc := services.NewProfitService(orderRepo, feeRepo, log)
	transactionSvc := services.NewTransactionService(bankRepo, settlementRepo, log)
	feeSvc := services.NewFeeSettingsService(feeRepo, cacheSvc, log)

	// Background jobs
	scheduler, err := background.NewJobScheduler(importSvc, storage, cfg.InboxPollInterval, log)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			mainLog.Error().Err(err).Msg("Failed to stop scheduler")
		}
	}()

	auth, err := middleware.NewOwnerAuth(cfg.JWTSecret, cfg.JWKSURL, log)
	if err != nil {
		return err
	}
	defer auth.Close()

	// Handlers
	importHandlers := handlers.NewImportHandlers(importSvc, log)
	transactionHandlers := handlers.NewTransactionHandlers(transactionSvc, log)
	profitHandlers := handlers.NewProfitHandlers(profitSvc, log)
	feeHandlers := handlers.NewFeeSettingsHandlers(feeSvc, log)
	healthHandlers := handlers.NewHealthHandlers(version, map[string]handlers.Pinger{
		"database": pool,
		"redis":    cacheSvc,
		"storage": handlers.PingFunc(func(ctx context.Context) error {
			_, err := storage.List(ctx, services.InboxPrefix)
			return err
		}),
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.BodyLimit(fmt.Sprintf("%dM", handlers.MaxUploadSize>>20+1)))

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	// Protected routes
	v1 := e.Group("/v1")
	v1.Use(auth.Middleware())

	v1.POST("/imports/bank", importHandlers.ImportBank)
	v1.POST("/imports/settlements", importHandlers.ImportSettlements)
	v1.POST("/imports/orders", importHandlers.ImportOrders)
	v1.GET("/imports/diagnostics/latest", importHandlers.LatestDiagnostics)

	v1.GET("/transactions", transactionHandlers.ListTransactions)
	v1.GET("/transactions/summary", transactionHandlers.Summary)
	v1.PATCH("/transactions/:id/category", transactionHandlers.SetCategory)
	v1.GET("/settlements", transactionHandlers.ListSettlements)

	v1.GET("/profit", profitHandlers.Report)
	v1.PATCH("/orders/unit-cost", profitHandlers.UpdateUnitCost)

	v1.GET("/fee-settings", feeHandlers.ListFeeSettings)
	v1.POST("/fee-settings", feeHandlers.CreateFeeSettings)
	v1.GET("/fee-settings/:id", feeHandlers.GetFeeSettings)
	v1.PUT("/fee-settings/:id", feeHandlers.UpdateFeeSettings)
	v1.DELETE("/fee-settings/:id", feeHandlers.DeleteFeeSettings)
	v1.POST("/fee-settings/:id/default", feeHandlers.SetDefaultFeeSettings)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		mainLog.Info().Str("addr", addr).Str("version", version).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	mainLog.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
