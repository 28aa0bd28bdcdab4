package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string // empty for an ephemeral consumer that only receives new events
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
	MaxDeliver     int
	MaxAge         time.Duration // retention of the stream
}

// connect opens a JetStream session and makes sure the notification stream exists
func connect(ctx context.Context, cfg Config, dialer adapter.NatsDialer) (adapter.JetStreamSession, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	session, err := dialer.Dial(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 72 * time.Hour
	}
	err = session.EnsureStream(ctx, jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{messaging.NotificationSubjectWildcard},
		Retention:  jetstream.LimitsPolicy,
		Storage:    jetstream.FileStorage,
		MaxAge:     maxAge,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to create/update stream: %w", err)
	}

	return session, nil
}
