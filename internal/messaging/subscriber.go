package messaging

import (
	"context"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// NotificationHandler is called for every notification event received.
// Returning an error asks the broker to redeliver the event.
type NotificationHandler func(ctx context.Context, event *domain.NotificationEvent) error

// Subscriber defines the interface for consuming notification events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Subscribe consumes events until the context is cancelled
	Subscribe(ctx context.Context, handler NotificationHandler) error
	// Close closes the connection and cleans up resources
	Close()
}
