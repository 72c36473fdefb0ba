package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/cartera/internal/adapter/http"
	"github.com/iho/cartera/internal/adapter/http/handler"
	"github.com/iho/cartera/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/cartera/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/cartera/internal/adapter/repository/redis"
	"github.com/iho/cartera/internal/infrastructure/config"
	"github.com/iho/cartera/internal/infrastructure/metrics"
	"github.com/iho/cartera/internal/infrastructure/postgres"
	"github.com/iho/cartera/internal/infrastructure/redis"
	"github.com/iho/cartera/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Apply migrations when a path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	documentRepo := postgresRepo.NewDocumentRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	configRepo := postgresRepo.NewClassifierConfigRepository(pool)
	allocationRepo := postgresRepo.NewAllocationRepository(pool)
	locker := postgresRepo.NewAdvisoryLocker()
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases. Rebuilds retry through the backoff retrier
	// so brief lock contention does not surface to callers.
	recalcUC := usecase.NewRecalculationUseCase(
		txManager, documentRepo, accountRepo, configRepo, allocationRepo, locker, idGen)
	retryingRecalc := usecase.NewRetryingRecalculation(recalcUC, postgresRepo.NewRetrier())
	pendingUC := usecase.NewPendingBalanceUseCase(documentRepo, accountRepo, configRepo, allocationRepo)

	// Initialize handlers
	m := metrics.New()
	reconciliationHandler := handler.NewReconciliationHandler(retryingRecalc, pendingUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Rate limiter with a background sweep of idle clients
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiterStop := make(chan struct{})
	defer close(limiterStop)
	go rateLimiter.Janitor(limiterStop, time.Hour, time.Hour)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReconciliationHandler: reconciliationHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		RateLimiter:           rateLimiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
