package store

import (
	"context"
	"errors"
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

var (
	// ErrDuplicateKey is returned when an insert violates a unique constraint that is not handled as an idempotent conflict
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by write operations whose target row does not exist
	ErrNotFound = errors.New("record not found")
)

// LinkStats is the per-link aggregate used by content analytics
type LinkStats struct {
	ReferralLinkID  string `gorm:"column:id"`
	Code            string `gorm:"column:code"`
	ViewerID        string `gorm:"column:viewer_id"`
	Clicks          int64  `gorm:"column:clicks"`
	PointsEarned    int    `gorm:"column:points_earned"`
	Shares          int64  `gorm:"column:shares"`
	VerifiedShares  int64  `gorm:"column:verified_shares"`
	EngagementTotal int64  `gorm:"column:engagement_total"`
}

// CompleteShareVerificationInput carries the result of a successful external check
type CompleteShareVerificationInput struct {
	ShareID         string
	EngagementScore int64
	VerifiedAt      time.Time
}

// ShareVerificationResult describes what CompleteShareVerification changed
type ShareVerificationResult struct {
	// Transitioned is true only for the call that flipped verified from false to true
	Transitioned bool
	ViewerID     string
	ContentID    string
	Platform     domain.Platform
	PointsEarned int
	TotalShares  int
	TotalPoints  int64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetProfile retrieves a profile by its identity id
	GetProfile(ctx context.Context, id string) (*schema.Profile, error)
	// UpsertProfile creates or updates a profile
	UpsertProfile(ctx context.Context, profile *schema.Profile) error

	// CreateContent persists a campaign and its rewards in one transaction
	CreateContent(ctx context.Context, content *schema.Content, rewards []schema.Reward) error
	// GetContentByID retrieves a campaign with its rewards
	GetContentByID(ctx context.Context, id string) (*schema.Content, error)
	// GetContentBySlug retrieves a campaign with its rewards by slug
	GetContentBySlug(ctx context.Context, slug string) (*schema.Content, error)
	// ListContentByCreator lists all campaigns of a creator, newest first
	ListContentByCreator(ctx context.Context, creatorID string) ([]schema.Content, error)
	// ListActiveContent lists active campaigns, newest first
	ListActiveContent(ctx context.Context, limit int) ([]schema.Content, error)
	// UpdateContentStatus changes the lifecycle status of a campaign
	UpdateContentStatus(ctx context.Context, id string, status domain.ContentStatus, updatedAt time.Time) error
	// ListViewerIDsByContent lists the viewers holding a referral link for a campaign
	ListViewerIDsByContent(ctx context.Context, contentID string) ([]string, error)

	// GetReferralLink retrieves the link issued for a (content, viewer) pair
	GetReferralLink(ctx context.Context, contentID, viewerID string) (*schema.ReferralLink, error)
	// GetReferralLinkByID retrieves a link with its content
	GetReferralLinkByID(ctx context.Context, id string) (*schema.ReferralLink, error)
	// GetReferralLinkByCode retrieves a link with its content by code
	GetReferralLinkByCode(ctx context.Context, code string) (*schema.ReferralLink, error)
	// CreateReferralLink inserts a link unless the pair already has one.
	// Returns false when the pair already had a link, ErrDuplicateKey when the code is taken.
	CreateReferralLink(ctx context.Context, link *schema.ReferralLink) (bool, error)
	// ListReferralLinksByViewer lists a viewer's links with their content
	ListReferralLinksByViewer(ctx context.Context, viewerID string) ([]schema.ReferralLink, error)
	// IncrementLinkClicks atomically adds one to the click counter
	IncrementLinkClicks(ctx context.Context, linkID string) error
	// RecordLinkClick appends a click log row
	RecordLinkClick(ctx context.Context, click *schema.LinkClick) error
	// CountClicksByIPSince counts clicks from an IP since the given time
	CountClicksByIPSince(ctx context.Context, ip string, since time.Time) (int64, error)

	// CreateSocialShare inserts a share unless an identical one exists.
	// Returns the stored share and whether it was created by this call.
	CreateSocialShare(ctx context.Context, share *schema.SocialShare) (*schema.SocialShare, bool, error)
	// GetSocialShareByID retrieves a share by id
	GetSocialShareByID(ctx context.Context, id string) (*schema.SocialShare, error)
	// GetSocialShareByRef retrieves the share a link already recorded for a platform and share ref
	GetSocialShareByRef(ctx context.Context, referralLinkID string, platform domain.Platform, shareRef string) (*schema.SocialShare, error)
	// CountSharesByViewerSince counts a viewer's shares of any status since the given time
	CountSharesByViewerSince(ctx context.Context, viewerID string, since time.Time) (int64, error)
	// ListPendingShares lists pending shares of a platform created before the given time, oldest first
	ListPendingShares(ctx context.Context, platform domain.Platform, createdBefore time.Time, limit int) ([]schema.SocialShare, error)
	// MarkShareFailed sets an unverified share to failed with a reason
	MarkShareFailed(ctx context.Context, shareID string, reason string, failedAt time.Time) error
	// CompleteShareVerification verifies a share and credits the viewer in one transaction
	CompleteShareVerification(ctx context.Context, input CompleteShareVerificationInput) (*ShareVerificationResult, error)

	// CreateFraudEvent appends an anti-bot audit row
	CreateFraudEvent(ctx context.Context, event *schema.FraudDetectionEvent) error
	// IsFingerprintUsedByOtherUser checks whether another user produced the fingerprint since the given time
	IsFingerprintUsedByOtherUser(ctx context.Context, fingerprint, userID string, since time.Time) (bool, error)
	// GetAverageRiskScoreSince averages a user's risk scores since the given time (0 when none)
	GetAverageRiskScoreSince(ctx context.Context, userID string, since time.Time) (float64, error)

	// GetUserStats retrieves the point balance of a user
	GetUserStats(ctx context.Context, userID string) (*schema.UserStats, error)
	// CountVerifiedSharesForContent counts a viewer's verified shares for a campaign
	CountVerifiedSharesForContent(ctx context.Context, viewerID, contentID string) (int64, error)
	// GrantViewerReward grants a reward unless already granted or exhausted
	GrantViewerReward(ctx context.Context, viewerID string, reward *schema.Reward, earnedAt time.Time) (bool, error)
	// ListViewerRewards lists the rewards a viewer earned with their definitions
	ListViewerRewards(ctx context.Context, viewerID string) ([]schema.ViewerReward, error)

	// CreateNotification persists a notification. When DedupeKey is set and already stored,
	// notification is overwritten with the stored row and false is returned.
	CreateNotification(ctx context.Context, notification *schema.Notification) (bool, error)
	// ListNotifications lists a user's notifications, newest first
	ListNotifications(ctx context.Context, userID string, limit int) ([]schema.Notification, error)
	// MarkNotificationRead flips read for one of the user's notifications; false when not found
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error)
	// MarkAllNotificationsRead flips read for all of a user's notifications and returns the count
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
	// CountUnreadNotifications counts a user's unread notifications
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)

	// GetContentLinkStats aggregates clicks and shares per link of a campaign
	GetContentLinkStats(ctx context.Context, contentID string) ([]LinkStats, error)
}
