package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transfer-workflow-service/config"
	"transfer-workflow-service/internal/adapter/bank"
	httpHandler "transfer-workflow-service/internal/adapter/http/handler"
	pgStorage "transfer-workflow-service/internal/adapter/storage/postgres"
	redisStorage "transfer-workflow-service/internal/adapter/storage/redis"
	"transfer-workflow-service/internal/core/ports"
	"transfer-workflow-service/internal/service"
	"transfer-workflow-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Transfer Workflow Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Upstream banking backend client
	bankClient := bank.NewClient(cfg.Bank.BaseURL, cfg.Bank.Timeout, cfg.Bank.RetryCount, log)

	// Stores
	hintStore := redisStorage.NewPinHintStore(rdb)
	attemptRepo := pgStorage.NewAttemptRepository(pool)

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	policy := service.NewFeePolicy(
		cfg.Workflow.InternalFeeRate,
		cfg.Workflow.ExternalFeeRate,
		cfg.Workflow.InternalTiming,
		cfg.Workflow.ExternalTiming,
	)

	mgr := service.NewSessionManager(
		service.Dependencies{
			Accounts:  bankClient,
			Directory: bankClient,
			Verifier:  bankClient,
			Transfers: bankClient,
			Hints:     hintStore,
			Attempts:  attemptRepo,
		},
		service.Options{
			RoutingDebounce:  cfg.Workflow.RoutingDebounce,
			VerifyDebounce:   cfg.Workflow.VerifyDebounce,
			MinAccountNumber: cfg.Workflow.MinAccountNumber,
			SessionTTL:       cfg.Workflow.SessionTTL,
			PinHintTTL:       cfg.Workflow.PinHintTTL,
			Policy:           policy,
		},
		log,
	)
	defer mgr.Stop()

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WorkflowMgr:    mgr,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
