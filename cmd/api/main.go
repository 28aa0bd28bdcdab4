package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/antibot"
	"github.com/creatorchain/creatorchain/internal/api/middleware"
	"github.com/creatorchain/creatorchain/internal/api/server"
	"github.com/creatorchain/creatorchain/internal/api/shared/executor"
	"github.com/creatorchain/creatorchain/internal/config"
	"github.com/creatorchain/creatorchain/internal/ledger"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/jetstream"
	temporal "github.com/creatorchain/creatorchain/internal/providers/temporal"
	"github.com/creatorchain/creatorchain/internal/ratelimit"
	"github.com/creatorchain/creatorchain/internal/referral"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/stream"
	"github.com/creatorchain/creatorchain/internal/tracking"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting CreatorChain API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, store.PoolSettings{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	natsDialer := adapter.NewNatsDialer()

	// Redis backs the distributed rate limits and, optionally, click velocity
	var redisClient adapter.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}()
		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis unreachable at startup, rate limits fall back to local buckets", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "Redis not configured, rate limits are per instance")
	}

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Notification events out to the stream
	jsConfig := jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}
	publisher, err := jetstream.NewPublisher(ctx, jsConfig, natsDialer)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notification publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Ephemeral consumer feeding the live notification streams of this instance
	subscriber, err := jetstream.NewSubscriber(ctx, jsConfig, natsDialer)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notification subscriber", zap.Error(err))
	}
	defer subscriber.Close()

	hub := stream.NewHub()
	go func() {
		if err := hub.Run(ctx, subscriber); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "notification-hub"))
		}
	}()

	// Anti-bot scoring and click tracking
	var velocity antibot.VelocityCounter
	if cfg.AntiBot.UseRedisVelocity && redisClient != nil {
		velocity = antibot.NewRedisVelocityCounter(redisClient, cfg.AntiBot.ClickWindow)
	} else {
		velocity = antibot.NewStoreVelocityCounter(dataStore)
	}
	scorer := antibot.NewScorer(antibot.Config{
		ClickThreshold:  int64(cfg.AntiBot.ClickThreshold),
		ClickWindow:     cfg.AntiBot.ClickWindow,
		RejectThreshold: cfg.AntiBot.RejectThreshold,
		ShareRateLimit:  int64(cfg.AntiBot.ShareRateLimit),
		ShareRateWindow: cfg.AntiBot.ShareRateWindow,
	}, dataStore, velocity, clock)
	tracker := tracking.NewTracker(dataStore, velocity, clock)
	notifier := ledger.NewNotifier(dataStore, publisher, clock)

	exec := executor.NewExecutor(
		executor.Config{
			ReferralBaseURL:       cfg.Referral.BaseURL,
			VerificationTaskQueue: cfg.Temporal.VerificationTaskQueue,
		},
		dataStore,
		temporalClient,
		referral.NewGenerator(cfg.Referral.CodeLength),
		tracker,
		scorer,
		notifier,
		clock,
	)

	limiter := ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)

	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTSecret:    cfg.Auth.JWTSecret,
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec, hub, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Ends open notification streams before the HTTP shutdown waits on them
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
