package dto

import (
	"encoding/json"
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// ProfileResponse represents a synced profile
type ProfileResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	AvatarURL *string     `json:"avatar_url,omitempty"`
	Role      domain.Role `json:"role"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RewardResponse represents a reward offered by a campaign
type RewardResponse struct {
	ID             string            `json:"id"`
	Type           domain.RewardType `json:"type"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	SharesRequired int               `json:"shares_required"`
	Quantity       *int              `json:"quantity,omitempty"`
}

// ContentResponse represents a campaign
type ContentResponse struct {
	ID                   string               `json:"id"`
	CreatorID            string               `json:"creator_id"`
	Title                string               `json:"title"`
	Description          string               `json:"description,omitempty"`
	Platform             domain.Platform      `json:"platform"`
	ContentURL           string               `json:"content_url"`
	Slug                 string               `json:"slug"`
	PointsPerShare       int                  `json:"points_per_share"`
	CampaignDurationDays int                  `json:"campaign_duration_days"`
	EndsAt               time.Time            `json:"ends_at"`
	Status               domain.ContentStatus `json:"status"`
	CreatedAt            time.Time            `json:"created_at"`
	Rewards              []RewardResponse     `json:"rewards"`
}

// ContentListResponse represents a list of campaigns
type ContentListResponse struct {
	Items []ContentResponse `json:"items"`
}

// ReferralLinkResponse represents an issued referral link
type ReferralLinkResponse struct {
	ID           string    `json:"id"`
	ContentID    string    `json:"content_id"`
	ContentTitle string    `json:"content_title,omitempty"`
	ViewerID     string    `json:"viewer_id"`
	Code         string    `json:"code"`
	URL          string    `json:"url"`
	Clicks       int64     `json:"clicks"`
	ShareCount   int       `json:"share_count"`
	PointsEarned int       `json:"points_earned"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShareResponse represents a recorded social share
type ShareResponse struct {
	ID              string             `json:"id"`
	ReferralLinkID  string             `json:"referral_link_id"`
	Platform        domain.Platform    `json:"platform"`
	ShareURL        *string            `json:"share_url,omitempty"`
	ShareID         *string            `json:"share_id,omitempty"`
	VideoID         *string            `json:"video_id,omitempty"`
	Status          domain.ShareStatus `json:"status"`
	Verified        bool               `json:"verified"`
	EngagementScore *int64             `json:"engagement_score,omitempty"`
	VerifiedAt      *time.Time         `json:"verified_at,omitempty"`
	FailureReason   *string            `json:"failure_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	// Duplicate is true when an identical share had already been recorded
	Duplicate bool `json:"duplicate"`
}

// LinkAnalytics represents the per-link row of a campaign report
type LinkAnalytics struct {
	ReferralLinkID  string `json:"referral_link_id"`
	Code            string `json:"code"`
	ViewerID        string `json:"viewer_id"`
	Clicks          int64  `json:"clicks"`
	Shares          int64  `json:"shares"`
	VerifiedShares  int64  `json:"verified_shares"`
	PointsEarned    int    `json:"points_earned"`
	EngagementTotal int64  `json:"engagement_total"`
}

// ContentAnalyticsResponse represents the campaign report of a creator
type ContentAnalyticsResponse struct {
	ContentID       string          `json:"content_id"`
	TotalLinks      int             `json:"total_links"`
	TotalClicks     int64           `json:"total_clicks"`
	TotalShares     int64           `json:"total_shares"`
	VerifiedShares  int64           `json:"verified_shares"`
	TotalEngagement int64           `json:"total_engagement"`
	Links           []LinkAnalytics `json:"links"`
}

// UserStatsResponse represents a point balance
type UserStatsResponse struct {
	TotalPoints int64 `json:"total_points"`
	TotalShares int   `json:"total_shares"`
}

// ViewerRewardResponse represents a reward earned by a viewer
type ViewerRewardResponse struct {
	ID       string                    `json:"id"`
	Status   domain.ViewerRewardStatus `json:"status"`
	EarnedAt time.Time                 `json:"earned_at"`
	Reward   *RewardResponse           `json:"reward,omitempty"`
}

// DashboardResponse represents the viewer dashboard
type DashboardResponse struct {
	Stats   UserStatsResponse      `json:"stats"`
	Links   []ReferralLinkResponse `json:"links"`
	Rewards []ViewerRewardResponse `json:"rewards"`
}

// FraudScoreResponse represents the caller's recent risk score
type FraudScoreResponse struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

// NotificationResponse represents a notification
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Data      json.RawMessage         `json:"data,omitempty"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse represents a page of notifications
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}

// UnreadCountResponse represents the unread notification count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkAllReadResponse represents the result of marking all notifications read
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
