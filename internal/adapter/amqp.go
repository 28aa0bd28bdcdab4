package adapter

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPChannel defines the subset of channel operations used for publishing to enable mocking
//
//go:generate mockgen -source=amqp.go -destination=../mocks/amqp.go -package=mocks -mock_names=AMQPChannel=MockAMQPChannel
type AMQPChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Confirm(noWait bool) error
	// PublishWithConfirm publishes on a channel in confirm mode and returns the pending broker confirmation
	PublishWithConfirm(ctx context.Context, exchange, key string, msg amqp.Publishing) (AMQPConfirmation, error)
	Close() error
}

// AMQPConfirmation is a pending publisher confirmation
//
//go:generate mockgen -source=amqp.go -destination=../mocks/amqp.go -package=mocks -mock_names=AMQPConfirmation=MockAMQPConfirmation
type AMQPConfirmation interface {
	// WaitContext blocks until the broker acks (true) or nacks (false) the message
	WaitContext(ctx context.Context) (bool, error)
}

// AMQPConnection defines the connection operations used by publishers to enable mocking
//
//go:generate mockgen -source=amqp.go -destination=../mocks/amqp.go -package=mocks -mock_names=AMQPConnection=MockAMQPConnection
type AMQPConnection interface {
	Channel() (AMQPChannel, error)
	IsClosed() bool
	Close() error
}

// AMQPDialer creates AMQP connections
//
//go:generate mockgen -source=amqp.go -destination=../mocks/amqp.go -package=mocks -mock_names=AMQPDialer=MockAMQPDialer
type AMQPDialer interface {
	Dial(url string) (AMQPConnection, error)
}

// RealAMQPDialer implements AMQPDialer using amqp091-go
type RealAMQPDialer struct{}

// NewAMQPDialer creates a new real AMQP dialer
func NewAMQPDialer() AMQPDialer {
	return &RealAMQPDialer{}
}

func (d *RealAMQPDialer) Dial(url string) (AMQPConnection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &amqpConnectionAdapter{conn: conn}, nil
}

// amqpConnectionAdapter adapts *amqp.Connection so Channel returns our interface
type amqpConnectionAdapter struct {
	conn *amqp.Connection
}

func (a *amqpConnectionAdapter) Channel() (AMQPChannel, error) {
	ch, err := a.conn.Channel()
	if err != nil {
		return nil, err
	}
	return &amqpChannelAdapter{ch: ch}, nil
}

func (a *amqpConnectionAdapter) IsClosed() bool {
	return a.conn.IsClosed()
}

func (a *amqpConnectionAdapter) Close() error {
	return a.conn.Close()
}

// amqpChannelAdapter adapts *amqp.Channel to our AMQPChannel interface
type amqpChannelAdapter struct {
	ch *amqp.Channel
}

func (a *amqpChannelAdapter) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	return a.ch.QueueDeclare(name, durable, autoDelete, exclusive, noWait, args)
}

func (a *amqpChannelAdapter) Confirm(noWait bool) error {
	return a.ch.Confirm(noWait)
}

func (a *amqpChannelAdapter) PublishWithConfirm(ctx context.Context, exchange, key string, msg amqp.Publishing) (AMQPConfirmation, error) {
	dc, err := a.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, amqp.ErrClosed
	}
	return dc, nil
}

func (a *amqpChannelAdapter) Close() error {
	return a.ch.Close()
}
