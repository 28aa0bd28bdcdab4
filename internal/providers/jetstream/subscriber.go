package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

type subscriber struct {
	session adapter.JetStreamSession
	config  Config
}

// NewSubscriber creates a new NATS JetStream notification subscriber
func NewSubscriber(ctx context.Context, cfg Config, dialer adapter.NatsDialer) (messaging.Subscriber, error) {
	session, err := connect(ctx, cfg, dialer)
	if err != nil {
		return nil, err
	}

	return &subscriber{session: session, config: cfg}, nil
}

func (s *subscriber) durable() bool {
	return s.config.ConsumerName != ""
}

func (s *subscriber) consumerConfig() jetstream.ConsumerConfig {
	if !s.durable() {
		return jetstream.ConsumerConfig{
			AckPolicy:         jetstream.AckNonePolicy,
			DeliverPolicy:     jetstream.DeliverNewPolicy,
			FilterSubject:     messaging.NotificationSubjectWildcard,
			InactiveThreshold: 5 * time.Minute,
		}
	}

	return jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWait,
		MaxDeliver:    s.config.MaxDeliver,
		FilterSubject: messaging.NotificationSubjectWildcard,
	}
}

// Subscribe consumes notification events until the context is cancelled
func (s *subscriber) Subscribe(ctx context.Context, handler messaging.NotificationHandler) error {
	logger.InfoCtx(ctx, "Starting notification subscriber",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName))

	consumer, err := s.session.Consumer(ctx, s.config.StreamName, s.consumerConfig())
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down notification subscriber")
			return ctx.Err()
		case <-sub.Closed():
			return fmt.Errorf("consumer closed")
		case msg := <-msgChan:
			s.handleMessage(ctx, msg, handler)
		}
	}
}

// handleMessage decodes and dispatches a single message.
// Undecodable messages are terminated, handler failures are redelivered.
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.NotificationHandler) {
	event, err := messaging.DecodeNotification(msg.Data())
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to decode notification event"), zap.String("subject", msg.Subject()))
		if s.durable() {
			if err := msg.Term(); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
			}
		}
		return
	}

	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}
	logger.DebugCtx(ctx, "Received notification event",
		zap.String("eventID", event.EventID),
		zap.String("userID", event.UserID),
		zap.Uint64("deliveryCount", deliveries))

	if err := handler(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to handle notification event"), zap.String("eventID", event.EventID))
		if s.durable() {
			if err := msg.Nak(); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
			}
		}
		return
	}

	if s.durable() {
		if err := msg.Ack(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
		}
	}
}

// Close drains and closes the NATS connection
func (s *subscriber) Close() {
	s.session.Close()
}
