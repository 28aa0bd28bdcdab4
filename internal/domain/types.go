package domain

import (
	"encoding/json"
	"time"
)

// Role represents the account role of a profile
type Role string

const (
	RoleCreator Role = "creator"
	RoleViewer  Role = "viewer"
	RoleAdmin   Role = "admin"
)

// Platform represents a social platform a campaign targets
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Valid checks if the platform is supported
func (p Platform) Valid() bool {
	return p == PlatformYouTube || p == PlatformInstagram || p == PlatformTikTok
}

// ContentStatus represents the lifecycle status of a campaign
type ContentStatus string

const (
	ContentStatusActive    ContentStatus = "active"
	ContentStatusPaused    ContentStatus = "paused"
	ContentStatusCompleted ContentStatus = "completed"
)

// Valid checks if the content status is known
func (s ContentStatus) Valid() bool {
	return s == ContentStatusActive || s == ContentStatusPaused || s == ContentStatusCompleted
}

// RewardType represents the kind of reward a creator offers
type RewardType string

const (
	RewardTypePhysical RewardType = "physical"
	RewardTypeDigital  RewardType = "digital"
	RewardTypeRaffle   RewardType = "raffle"
)

// Valid checks if the reward type is known
func (r RewardType) Valid() bool {
	return r == RewardTypePhysical || r == RewardTypeDigital || r == RewardTypeRaffle
}

// ShareStatus represents the verification state of a social share
type ShareStatus string

const (
	// ShareStatusPending is waiting for external verification
	ShareStatusPending ShareStatus = "pending"
	// ShareStatusVerified has been confirmed by the statistics API
	ShareStatusVerified ShareStatus = "verified"
	// ShareStatusFailed could not be verified; it stays unverified
	ShareStatusFailed ShareStatus = "failed"
	// ShareStatusManualReview has no automated verifier
	ShareStatusManualReview ShareStatus = "manual_review"
)

// ViewerRewardStatus represents fulfilment of an earned reward
type ViewerRewardStatus string

const (
	ViewerRewardStatusPending ViewerRewardStatus = "pending"
	ViewerRewardStatusClaimed ViewerRewardStatus = "claimed"
	ViewerRewardStatusShipped ViewerRewardStatus = "shipped"
)

// NotificationType represents the kind of notification sent to a user
type NotificationType string

const (
	NotificationTypeRewardEarned     NotificationType = "reward_earned"
	NotificationTypeMilestoneReached NotificationType = "milestone_reached"
	NotificationTypeShareVerified    NotificationType = "share_verified"
	NotificationTypeCampaignUpdate   NotificationType = "campaign_update"
)

// DeviceType is derived from the user agent of a click
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

// Browser is the browser family derived from the user agent of a click
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserSafari  Browser = "safari"
	BrowserOther   Browser = "other"
)

// FraudEventType represents the action a fraud detection event was recorded for
type FraudEventType string

const (
	FraudEventTypeUserValidation FraudEventType = "user_validation"
)

// RequestMetadata carries the client request details used by tracking and scoring
type RequestMetadata struct {
	IP                string `json:"ip"`
	UserAgent         string `json:"user_agent"`
	Referer           string `json:"referer,omitempty"`
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`
	Country           string `json:"country,omitempty"`
	City              string `json:"city,omitempty"`
}

// NotificationEvent is published to the message broker after a notification is persisted
type NotificationEvent struct {
	EventID        string           `json:"event_id"`
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Data           json.RawMessage  `json:"data,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
