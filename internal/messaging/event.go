package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/creatorchain/creatorchain/internal/domain"
)

const (
	// NotificationSubjectPrefix prefixes every notification subject
	NotificationSubjectPrefix = "notifications"
	// NotificationSubjectWildcard matches every notification subject
	NotificationSubjectWildcard = NotificationSubjectPrefix + ".>"
)

// NotificationSubject returns the subject a notification is published on.
// Format: notifications.{user_id}.{type}
func NotificationSubject(userID string, notificationType domain.NotificationType) string {
	return fmt.Sprintf("%s.%s.%s", NotificationSubjectPrefix, userID, notificationType)
}

// EncodeNotification serializes a notification event for the wire
func EncodeNotification(event *domain.NotificationEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification event: %w", err)
	}
	return data, nil
}

// DecodeNotification parses a notification event and checks its identifiers
func DecodeNotification(data []byte) (*domain.NotificationEvent, error) {
	var event domain.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if event.EventID == "" || event.UserID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: notification event missing identifiers", domain.ErrMalformedResponse)
	}
	return &event, nil
}
