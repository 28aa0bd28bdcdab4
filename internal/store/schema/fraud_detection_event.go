package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// FraudDetectionEvent represents the fraud_detection_events table - append-only anti-bot audit log
type FraudDetectionEvent struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the user the evaluation was for
	UserID string `gorm:"column:user_id;not null;type:uuid;index:idx_fraud_events_user_created,priority:1"`
	// EventType is the action that was evaluated
	EventType domain.FraudEventType `gorm:"column:event_type;not null;type:text"`
	// RiskScore is the cumulative heuristic score
	RiskScore int `gorm:"column:risk_score;not null"`
	// Flags is the list of triggered heuristics as JSON
	Flags datatypes.JSON `gorm:"column:flags;not null;type:jsonb"`
	// IPAddress is the client IP at evaluation time
	IPAddress string `gorm:"column:ip_address;type:text"`
	// UserAgent is the client user agent at evaluation time
	UserAgent string `gorm:"column:user_agent;type:text"`
	// DeviceFingerprint is the optional client device fingerprint
	DeviceFingerprint *string `gorm:"column:device_fingerprint;type:text;index"`
	// CreatedAt is the timestamp of the evaluation
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_fraud_events_user_created,priority:2"`
}

// TableName specifies the table name for the FraudDetectionEvent model
func (FraudDetectionEvent) TableName() string {
	return "fraud_detection_events"
}
