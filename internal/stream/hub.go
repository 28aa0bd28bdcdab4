package stream

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

// subscriberBuffer is the number of undelivered events kept per connection.
// Events beyond it are dropped; clients reconcile through the list endpoint.
const subscriberBuffer = 16

// Hub fans notification events out to the live connections of each user
//
//go:generate mockgen -source=hub.go -destination=../mocks/hub.go -package=mocks -mock_names=Hub=MockHub
type Hub interface {
	// Subscribe registers a connection for the user. The returned func unregisters it.
	Subscribe(userID string) (<-chan *domain.NotificationEvent, func())
	// Broadcast delivers the event to every connection of its user without blocking
	Broadcast(event *domain.NotificationEvent)
	// Run feeds the hub from the subscriber until the context is cancelled
	Run(ctx context.Context, subscriber messaging.Subscriber) error
	// Connections returns the number of open connections
	Connections() int
}

type connection struct {
	events chan *domain.NotificationEvent
}

type hub struct {
	mu          sync.RWMutex
	connections map[string]map[*connection]struct{}
}

// NewHub creates a new notification hub
func NewHub() Hub {
	return &hub{connections: make(map[string]map[*connection]struct{})}
}

func (h *hub) Subscribe(userID string) (<-chan *domain.NotificationEvent, func()) {
	conn := &connection{events: make(chan *domain.NotificationEvent, subscriberBuffer)}

	h.mu.Lock()
	if h.connections[userID] == nil {
		h.connections[userID] = make(map[*connection]struct{})
	}
	h.connections[userID][conn] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.connections[userID], conn)
			if len(h.connections[userID]) == 0 {
				delete(h.connections, userID)
			}
			close(conn.events)
		})
	}

	return conn.events, unsubscribe
}

func (h *hub) Broadcast(event *domain.NotificationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections[event.UserID] {
		select {
		case conn.events <- event:
		default:
			logger.Warn("Dropping notification for slow stream client",
				zap.String("userID", event.UserID),
				zap.String("eventID", event.EventID))
		}
	}
}

func (h *hub) Run(ctx context.Context, subscriber messaging.Subscriber) error {
	return subscriber.Subscribe(ctx, func(_ context.Context, event *domain.NotificationEvent) error {
		h.Broadcast(event)
		return nil
	})
}

func (h *hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, conns := range h.connections {
		n += len(conns)
	}
	return n
}
