package adapter

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsDialer opens JetStream sessions
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsDialer=MockNatsDialer
type NatsDialer interface {
	Dial(url string, options ...nats.Option) (JetStreamSession, error)
}

// JetStreamSession is a NATS connection together with its JetStream context.
// Close tears down both.
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=JetStreamSession=MockJetStreamSession
type JetStreamSession interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) error
	Consumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error)
	Close()
}

// MessageHandler handles a single JetStream message
type MessageHandler func(msg Message)

//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=Consumer=MockNatsConsumer
type Consumer interface {
	Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error)
	Info(ctx context.Context) (*jetstream.ConsumerInfo, error)
}

//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=ConsumeContext=MockConsumeContext
type ConsumeContext interface {
	Stop()
	Closed() <-chan struct{}
}

// Message is the subset of jetstream.Msg the notification subscriber needs
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=Message=MockJetStreamMessage
type Message interface {
	Subject() string
	Data() []byte
	Metadata() (*jetstream.MsgMetadata, error)
	Ack() error
	Nak() error
	Term() error
}

type natsDialer struct{}

func NewNatsDialer() NatsDialer {
	return natsDialer{}
}

func (natsDialer) Dial(url string, options ...nats.Option) (JetStreamSession, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, err
	}
	return &jetStreamSession{nc: nc, js: js}, nil
}

type jetStreamSession struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func (s *jetStreamSession) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return s.js.Publish(ctx, subject, data, opts...)
}

func (s *jetStreamSession) EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) error {
	_, err := s.js.CreateOrUpdateStream(ctx, cfg)
	return err
}

func (s *jetStreamSession) Consumer(ctx context.Context, stream string, cfg jetstream.ConsumerConfig) (Consumer, error) {
	c, err := s.js.CreateOrUpdateConsumer(ctx, stream, cfg)
	if err != nil {
		return nil, err
	}
	return pullConsumer{c}, nil
}

func (s *jetStreamSession) Close() {
	// Drain flushes pending publishes before closing; fall back to a hard close
	if err := s.nc.Drain(); err != nil {
		s.nc.Close()
	}
}

type pullConsumer struct {
	jetstream.Consumer
}

func (c pullConsumer) Consume(handler MessageHandler, opts ...jetstream.PullConsumeOpt) (ConsumeContext, error) {
	return c.Consumer.Consume(func(msg jetstream.Msg) { handler(msg) }, opts...)
}
