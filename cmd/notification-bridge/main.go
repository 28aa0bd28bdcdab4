package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/bridge"
	"github.com/creatorchain/creatorchain/internal/config"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/jetstream"
	"github.com/creatorchain/creatorchain/internal/providers/rabbitmq"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadNotificationBridgeConfig(*configFile, *envPath)
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
			"service": "notification-bridge",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting notification bridge")

	// Durable consumer on the notification stream
	subscriber, err := jetstream.NewSubscriber(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWait:        cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, adapter.NewNatsDialer())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create notification subscriber", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL), zap.String("consumer", cfg.NATS.ConsumerName))

	// Delivery queue
	publisher, err := rabbitmq.NewPublisher(ctx, rabbitmq.Config{
		URL:           cfg.RabbitMQ.URL,
		Queue:         cfg.RabbitMQ.Queue,
		ReconnectWait: cfg.RabbitMQ.ReconnectWait,
	}, adapter.NewAMQPDialer())
	if err != nil {
		subscriber.Close()
		logger.FatalCtx(ctx, "Failed to create delivery queue publisher", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to RabbitMQ", zap.String("queue", cfg.RabbitMQ.Queue))

	notificationBridge := bridge.NewBridge(subscriber, publisher)
	defer notificationBridge.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- notificationBridge.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		select {
		case <-errCh:
		case <-time.After(5 * time.Second):
			logger.Warn("Notification bridge did not stop in time")
		}
	case err := <-errCh:
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "bridge"))
		}
	}

	logger.Info("Notification bridge stopped")
}
