package messaging

import (
	"context"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// Publisher defines the interface for publishing notification events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes a persisted notification to the message broker
	PublishNotification(ctx context.Context, event *domain.NotificationEvent) error
	// Close closes the connection
	Close()
}
