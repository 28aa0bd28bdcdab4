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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/config"
	"github.com/creatorchain/creatorchain/internal/ledger"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/jetstream"
	temporal "github.com/creatorchain/creatorchain/internal/providers/temporal"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/workflows"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerVerifierConfig(*configFile, *envPath)
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
			"service": "worker-verifier",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting share verification worker")

	if cfg.YouTube.APIKey == "" {
		logger.WarnCtx(ctx, "YouTube API key not configured, share verifications will fail permanently")
	}

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
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.YouTube.HTTPTimeout)

	// Notification events published by the activities
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsDialer())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notification publisher", zap.Error(err))
	}
	defer publisher.Close()

	notifier := ledger.NewNotifier(dataStore, publisher, clock)
	rewardLedger := ledger.NewLedger(dataStore, notifier, clock)
	youtubeClient := youtube.NewClient(httpClient, cfg.YouTube.BaseURL, cfg.YouTube.APIKey)

	executor := workflows.NewExecutor(dataStore, youtubeClient, notifier, rewardLedger, clock, adapter.NewActivity())

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()

	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with Sentry interceptor
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.VerificationTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		VerificationDelay: cfg.Verification.Delay,
		MaxAttempts:       cfg.Verification.MaxAttempts,
		InitialInterval:   cfg.Verification.InitialInterval,
		MaxInterval:       cfg.Verification.MaxInterval,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.VerifyShareWorkflow)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.FetchVideoStats)
	temporalWorker.RegisterActivity(executor.MarkShareFailed)
	temporalWorker.RegisterActivity(executor.CompleteShareVerification)
	temporalWorker.RegisterActivity(executor.NotifyShareVerified)
	temporalWorker.RegisterActivity(executor.GrantEarnedRewards)
	temporalWorker.RegisterActivity(executor.CheckMilestones)
	logger.InfoCtx(ctx, "Registered activities")

	// Start the worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started", zap.String("task_queue", cfg.Temporal.VerificationTaskQueue))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
