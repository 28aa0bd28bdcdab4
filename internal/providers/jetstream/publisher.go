package jetstream

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

type publisher struct {
	session adapter.JetStreamSession
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, dialer adapter.NatsDialer) (messaging.Publisher, error) {
	session, err := connect(ctx, cfg, dialer)
	if err != nil {
		return nil, err
	}

	return &publisher{session: session}, nil
}

// PublishNotification publishes a notification event to NATS JetStream.
// The event id doubles as the message id so redelivered publishes are dropped by the stream.
func (p *publisher) PublishNotification(ctx context.Context, event *domain.NotificationEvent) error {
	logger.DebugCtx(ctx, "Publishing notification event",
		zap.String("eventID", event.EventID),
		zap.String("userID", event.UserID),
		zap.String("type", string(event.Type)))

	data, err := messaging.EncodeNotification(event)
	if err != nil {
		return err
	}

	subject := messaging.NotificationSubject(event.UserID, event.Type)
	if _, err := p.session.Publish(ctx, subject, data, jetstream.WithMsgID(event.EventID)); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	p.session.Close()
}
