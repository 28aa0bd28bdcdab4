package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

// ErrNacked is returned when the broker refuses a published message
var ErrNacked = errors.New("message nacked by broker")

// Config holds the configuration for the RabbitMQ delivery queue
type Config struct {
	URL               string
	Queue             string
	ReconnectWait     time.Duration
	MaxReconnectDelay time.Duration
}

type publisher struct {
	config Config
	dialer adapter.AMQPDialer

	mu     sync.Mutex
	conn   adapter.AMQPConnection
	ch     adapter.AMQPChannel
	closed bool
}

// NewPublisher creates a publisher that delivers notification events to a durable queue
func NewPublisher(ctx context.Context, cfg Config, dialer adapter.AMQPDialer) (messaging.Publisher, error) {
	if cfg.ReconnectWait <= 0 {
		cfg.ReconnectWait = 2 * time.Second
	}
	if cfg.MaxReconnectDelay <= 0 {
		cfg.MaxReconnectDelay = 30 * time.Second
	}

	p := &publisher{config: cfg, dialer: dialer}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(ctx); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Connected to RabbitMQ", zap.String("queue", cfg.Queue))
	return p, nil
}

// connect dials the broker with exponential backoff. Caller holds p.mu.
func (p *publisher) connect(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.config.ReconnectWait
	b.MaxInterval = p.config.MaxReconnectDelay
	b.MaxElapsedTime = 2 * p.config.MaxReconnectDelay

	operation := func() error {
		conn, err := p.dialer.Dial(p.config.URL)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to dial RabbitMQ, retrying", zap.Error(err))
			return err
		}

		ch, err := p.openChannel(conn)
		if err != nil {
			_ = conn.Close()
			return err
		}

		p.conn = conn
		p.ch = ch
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return nil
}

func (p *publisher) openChannel(conn adapter.AMQPConnection) (adapter.AMQPChannel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, backoff.Permanent(fmt.Errorf("failed to enable publisher confirms: %w", err))
	}

	if _, err := ch.QueueDeclare(p.config.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, backoff.Permanent(fmt.Errorf("failed to declare queue: %w", err))
	}

	return ch, nil
}

// reset drops the current connection so the next publish reconnects. Caller holds p.mu.
func (p *publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// PublishNotification publishes a persistent message and waits for the broker confirm
func (p *publisher) PublishNotification(ctx context.Context, event *domain.NotificationEvent) error {
	body, err := messaging.EncodeNotification(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return amqp.ErrClosed
	}

	if p.conn == nil || p.conn.IsClosed() {
		p.reset()
		if err := p.connect(ctx); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Reconnected to RabbitMQ", zap.String("queue", p.config.Queue))
	}

	confirmation, err := p.ch.PublishWithConfirm(ctx, "", p.config.Queue, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         string(event.Type),
		Timestamp:    event.CreatedAt,
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to wait for publisher confirm: %w", err)
	}
	if !acked {
		return ErrNacked
	}

	return nil
}

// Close closes the channel and connection
func (p *publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.reset()
}
