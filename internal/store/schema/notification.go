package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// Notification represents the notifications table - per-user typed notifications
type Notification struct {
	// ID is the notification primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// UserID is the recipient profile
	UserID string `gorm:"column:user_id;not null;type:uuid;index:idx_notifications_user_created,priority:1"`
	// Type is the notification kind
	Type domain.NotificationType `gorm:"column:type;not null;type:text"`
	// Title is the short heading
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the rendered body
	Message string `gorm:"column:message;not null;type:text"`
	// Data carries structured context (share id, points, reward id...)
	Data datatypes.JSON `gorm:"column:data;type:jsonb"`
	// Read is the only mutable field
	Read bool `gorm:"column:read;not null;default:false"`
	// DedupeKey makes retried writes of the same event a no-op, e.g. share_verified:<share id>
	DedupeKey *string `gorm:"column:dedupe_key;type:text;uniqueIndex:idx_notifications_dedupe_key"`
	// CreatedAt is the timestamp when the notification was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_notifications_user_created,priority:2"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
