package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/buckpal/internal/adapter/http"
	"github.com/iho/buckpal/internal/adapter/http/handler"
	"github.com/iho/buckpal/internal/adapter/http/middleware"
	"github.com/iho/buckpal/internal/adapter/lock"
	postgresRepo "github.com/iho/buckpal/internal/adapter/repository/postgres"
	"github.com/iho/buckpal/internal/infrastructure/clock"
	"github.com/iho/buckpal/internal/infrastructure/config"
	"github.com/iho/buckpal/internal/infrastructure/logger"
	"github.com/iho/buckpal/internal/infrastructure/metrics"
	"github.com/iho/buckpal/internal/infrastructure/postgres"
	"github.com/iho/buckpal/internal/infrastructure/redis"
	"github.com/iho/buckpal/internal/usecase"
)

const rateLimiterIdleTimeout = time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	lockKind, err := lock.ParseKind(cfg.AccountLock)
	if err != nil {
		return err
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Redis is only needed by the distributed lock.
	var redisClient *goredis.Client
	if lockKind == lock.KindRedis {
		redisClient, err = redis.NewClient(ctx, redis.Config{
			URL:         cfg.RedisURL,
			PoolSize:    cfg.RedisPoolSize,
			DialTimeout: cfg.RedisDialTimeout,
		})
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")
	}

	accountLock, err := newAccountLock(lockKind, redisClient, cfg.AccountLockTTL, appLogger)
	if err != nil {
		return err
	}
	appLogger.Info().Str("account_lock", string(lockKind)).Msg("account lock configured")

	appMetrics := metrics.New()

	// Initialize adapters
	retryPolicy := postgresRepo.DefaultRetryPolicy()
	retryPolicy.MaxRetries = cfg.PersistenceMaxRetries
	persistence := postgresRepo.NewAccountPersistenceAdapter(pool, retryPolicy, appLogger)
	systemClock := clock.New()

	// Initialize use cases
	sendMoneyUC := usecase.NewSendMoneyUseCase(
		persistence,
		accountLock,
		persistence,
		usecase.NewMoneyTransferProperties(&cfg.MaximumTransferThreshold),
		systemClock,
		appMetrics,
		appLogger,
	)
	balanceUC := usecase.NewAccountBalanceUseCase(persistence, systemClock)

	// Initialize handlers
	var redisPinger handler.RedisPinger
	if redisClient != nil {
		redisPinger = redisClient
	}

	routerCfg := httpAdapter.RouterConfig{
		SendMoneyHandler: handler.NewSendMoneyHandler(sendMoneyUC),
		BalanceHandler:   handler.NewBalanceHandler(balanceUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisPinger),
		Logger:           appLogger,
		Metrics:          appMetrics,
		MetricsHandler:   promhttp.Handler(),
	}

	if cfg.RateLimitRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).WithHitCounter(appMetrics.RateLimitHits)
		routerCfg.RateLimiter = rl
		go cleanupRateLimiter(ctx, rl)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info().Msg("server stopped")

	return nil
}

// newAccountLock builds the configured usecase.AccountLock.
func newAccountLock(kind lock.Kind, redisClient *goredis.Client, ttl time.Duration, logger zerolog.Logger) (usecase.AccountLock, error) {
	switch kind {
	case lock.KindRedis:
		if redisClient == nil {
			return nil, errors.New("redis account lock requires a redis client")
		}
		return lock.NewRedis(redisClient, ttl, logger), nil
	case lock.KindNoOp:
		logger.Warn().Msg("account lock disabled; concurrent transfers are not serialized")
		return lock.NewNoOp(), nil
	case lock.KindMemory:
		return lock.NewInProcess(ttl, logger), nil
	default:
		return nil, fmt.Errorf("unknown account lock %q", kind)
	}
}

func cleanupRateLimiter(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(rateLimiterIdleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters(rateLimiterIdleTimeout)
		}
	}
}
