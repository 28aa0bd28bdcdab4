package bridge

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

// Bridge relays persisted notification events from the event stream into the delivery queue
type Bridge interface {
	// Run relays events until the context is cancelled
	Run(ctx context.Context) error
	// Close closes both broker connections
	Close()
}

type bridge struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
}

// NewBridge creates a new notification bridge
func NewBridge(subscriber messaging.Subscriber, publisher messaging.Publisher) Bridge {
	return &bridge{
		subscriber: subscriber,
		publisher:  publisher,
	}
}

// Run starts relaying notification events
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting notification bridge")

	err := b.subscriber.Subscribe(ctx, b.relay)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("notification subscription ended: %w", err)
	}

	logger.InfoCtx(ctx, "Notification bridge stopped")
	return nil
}

// relay forwards a single event. A returned error leaves the event unacknowledged on the stream.
func (b *bridge) relay(ctx context.Context, event *domain.NotificationEvent) error {
	if event.UserID == "" {
		// Nothing downstream can route it
		logger.WarnCtx(ctx, "Dropping notification event without recipient", zap.String("eventID", event.EventID))
		return nil
	}

	if err := b.publisher.PublishNotification(ctx, event); err != nil {
		return fmt.Errorf("failed to relay notification %s: %w", event.EventID, err)
	}

	logger.DebugCtx(ctx, "Notification relayed",
		zap.String("eventID", event.EventID),
		zap.String("userID", event.UserID),
		zap.String("type", string(event.Type)),
	)
	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	b.subscriber.Close()
	b.publisher.Close()
}
