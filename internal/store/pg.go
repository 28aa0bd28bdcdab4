package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// pgUniqueViolation is the SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore returns a Store backed by db. db may be a transaction.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// PoolSettings sizes the database/sql pool behind gorm. Zero values fall back
// to 20 open, 5 idle, 5m lifetime and 10m idle time.
type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Normalized fills zero values with defaults. Idle connections never exceed open ones.
func (p PoolSettings) Normalized() PoolSettings {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = 20
	}
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = 5
	}
	p.MaxIdleConns = min(p.MaxIdleConns, p.MaxOpenConns)
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = 5 * time.Minute
	}
	if p.ConnMaxIdleTime <= 0 {
		p.ConnMaxIdleTime = 10 * time.Minute
	}
	return p
}

func ConfigureConnectionPool(db *gorm.DB, settings PoolSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	settings = settings.Normalized()
	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	sqlDB.SetMaxIdleConns(settings.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(settings.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(settings.ConnMaxIdleTime)
	return nil
}

// isUniqueViolation reports whether err is a postgres unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func newID() string {
	return uuid.New().String()
}

func preloadRewards(db *gorm.DB) *gorm.DB {
	return db.Order("shares_required ASC")
}

// =============================================================================
// Profiles
// =============================================================================

// GetProfile retrieves a profile by its identity id
func (s *pgStore) GetProfile(ctx context.Context, id string) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates or updates a profile
func (s *pgStore) UpsertProfile(ctx context.Context, profile *schema.Profile) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "avatar_url", "role", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// =============================================================================
// Content
// =============================================================================

// CreateContent persists a campaign and its rewards in one transaction
func (s *pgStore) CreateContent(ctx context.Context, content *schema.Content, rewards []schema.Reward) error {
	if content.ID == "" {
		content.ID = newID()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Rewards").Create(content).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("failed to create content: %w", ErrDuplicateKey)
			}
			return fmt.Errorf("failed to create content: %w", err)
		}

		if len(rewards) == 0 {
			return nil
		}

		for i := range rewards {
			if rewards[i].ID == "" {
				rewards[i].ID = newID()
			}
			rewards[i].ContentID = content.ID
		}

		if err := tx.Create(&rewards).Error; err != nil {
			return fmt.Errorf("failed to create rewards: %w", err)
		}
		content.Rewards = rewards

		return nil
	})
}

// GetContentByID retrieves a campaign with its rewards
func (s *pgStore) GetContentByID(ctx context.Context, id string) (*schema.Content, error) {
	var content schema.Content
	err := s.db.WithContext(ctx).
		Preload("Rewards", preloadRewards).
		Where("id = ?", id).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return &content, nil
}

// GetContentBySlug retrieves a campaign with its rewards by slug
func (s *pgStore) GetContentBySlug(ctx context.Context, slug string) (*schema.Content, error) {
	var content schema.Content
	err := s.db.WithContext(ctx).
		Preload("Rewards", preloadRewards).
		Where("slug = ?", slug).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content by slug: %w", err)
	}
	return &content, nil
}

// ListContentByCreator lists all campaigns of a creator, newest first
func (s *pgStore) ListContentByCreator(ctx context.Context, creatorID string) ([]schema.Content, error) {
	var contents []schema.Content
	err := s.db.WithContext(ctx).
		Preload("Rewards", preloadRewards).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list creator content: %w", err)
	}
	return contents, nil
}

// ListActiveContent lists active campaigns, newest first
func (s *pgStore) ListActiveContent(ctx context.Context, limit int) ([]schema.Content, error) {
	var contents []schema.Content
	err := s.db.WithContext(ctx).
		Preload("Rewards", preloadRewards).
		Where("status = ?", domain.ContentStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active content: %w", err)
	}
	return contents, nil
}

// UpdateContentStatus changes the lifecycle status of a campaign
func (s *pgStore) UpdateContentStatus(ctx context.Context, id string, status domain.ContentStatus, updatedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Content{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update content status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update content status: %w", ErrNotFound)
	}
	return nil
}

// ListViewerIDsByContent lists the viewers holding a referral link for a campaign
func (s *pgStore) ListViewerIDsByContent(ctx context.Context, contentID string) ([]string, error) {
	var viewerIDs []string
	err := s.db.WithContext(ctx).
		Model(&schema.ReferralLink{}).
		Where("content_id = ?", contentID).
		Distinct().
		Pluck("viewer_id", &viewerIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list content viewers: %w", err)
	}
	return viewerIDs, nil
}

// =============================================================================
// Referral links and clicks
// =============================================================================

// GetReferralLink retrieves the link issued for a (content, viewer) pair
func (s *pgStore) GetReferralLink(ctx context.Context, contentID, viewerID string) (*schema.ReferralLink, error) {
	var link schema.ReferralLink
	err := s.db.WithContext(ctx).
		Where("content_id = ? AND viewer_id = ?", contentID, viewerID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral link: %w", err)
	}
	return &link, nil
}

// GetReferralLinkByID retrieves a link with its content
func (s *pgStore) GetReferralLinkByID(ctx context.Context, id string) (*schema.ReferralLink, error) {
	var link schema.ReferralLink
	err := s.db.WithContext(ctx).
		Preload("Content").
		Where("id = ?", id).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral link by id: %w", err)
	}
	return &link, nil
}

// GetReferralLinkByCode retrieves a link with its content by code
func (s *pgStore) GetReferralLinkByCode(ctx context.Context, code string) (*schema.ReferralLink, error) {
	var link schema.ReferralLink
	err := s.db.WithContext(ctx).
		Preload("Content").
		Where("code = ?", code).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral link by code: %w", err)
	}
	return &link, nil
}

// CreateReferralLink inserts a link unless the (content, viewer) pair already has one
func (s *pgStore) CreateReferralLink(ctx context.Context, link *schema.ReferralLink) (bool, error) {
	if link.ID == "" {
		link.ID = newID()
	}

	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Content").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "content_id"}, {Name: "viewer_id"}},
				DoNothing: true,
			}).
			Create(link)
		if result.Error != nil {
			return result.Error
		}
		created = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("failed to create referral link: %w", ErrDuplicateKey)
		}
		return false, fmt.Errorf("failed to create referral link: %w", err)
	}

	return created, nil
}

// ListReferralLinksByViewer lists a viewer's links with their content
func (s *pgStore) ListReferralLinksByViewer(ctx context.Context, viewerID string) ([]schema.ReferralLink, error) {
	var links []schema.ReferralLink
	err := s.db.WithContext(ctx).
		Preload("Content").
		Where("viewer_id = ?", viewerID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list referral links: %w", err)
	}
	return links, nil
}

// IncrementLinkClicks atomically adds one to the click counter
func (s *pgStore) IncrementLinkClicks(ctx context.Context, linkID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.ReferralLink{}).
		Where("id = ?", linkID).
		UpdateColumn("clicks", gorm.Expr("clicks + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment link clicks: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to increment link clicks: %w", ErrNotFound)
	}
	return nil
}

// RecordLinkClick appends a click log row
func (s *pgStore) RecordLinkClick(ctx context.Context, click *schema.LinkClick) error {
	if err := s.db.WithContext(ctx).Create(click).Error; err != nil {
		return fmt.Errorf("failed to record link click: %w", err)
	}
	return nil
}

// CountClicksByIPSince counts clicks from an IP since the given time
func (s *pgStore) CountClicksByIPSince(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.LinkClick{}).
		Where("ip_address = ? AND clicked_at >= ?", ip, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count clicks by ip: %w", err)
	}
	return count, nil
}

// =============================================================================
// Social shares
// =============================================================================

// CreateSocialShare inserts a share unless an identical one exists
func (s *pgStore) CreateSocialShare(ctx context.Context, share *schema.SocialShare) (*schema.SocialShare, bool, error) {
	if share.ID == "" {
		share.ID = newID()
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "referral_link_id"}, {Name: "platform"}, {Name: "share_ref"}},
			DoNothing: true,
		}).
		Create(share)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create social share: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return share, true, nil
	}

	existing, err := s.GetSocialShareByRef(ctx, share.ReferralLinkID, share.Platform, share.ShareRef)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("failed to get existing social share: %w", ErrNotFound)
	}

	return existing, false, nil
}

// GetSocialShareByRef retrieves the share a link already recorded for a platform and share ref
func (s *pgStore) GetSocialShareByRef(ctx context.Context, referralLinkID string, platform domain.Platform, shareRef string) (*schema.SocialShare, error) {
	var share schema.SocialShare
	err := s.db.WithContext(ctx).
		Where("referral_link_id = ? AND platform = ? AND share_ref = ?", referralLinkID, platform, shareRef).
		First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get social share by ref: %w", err)
	}
	return &share, nil
}

// GetSocialShareByID retrieves a share by id
func (s *pgStore) GetSocialShareByID(ctx context.Context, id string) (*schema.SocialShare, error) {
	var share schema.SocialShare
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get social share: %w", err)
	}
	return &share, nil
}

// CountSharesByViewerSince counts a viewer's shares of any status since the given time
func (s *pgStore) CountSharesByViewerSince(ctx context.Context, viewerID string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.SocialShare{}).
		Where("viewer_id = ? AND created_at >= ?", viewerID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count shares: %w", err)
	}
	return count, nil
}

// ListPendingShares lists pending shares of a platform created before the given time, oldest first
func (s *pgStore) ListPendingShares(ctx context.Context, platform domain.Platform, createdBefore time.Time, limit int) ([]schema.SocialShare, error) {
	var shares []schema.SocialShare
	err := s.db.WithContext(ctx).
		Where("status = ? AND platform = ? AND created_at < ?", domain.ShareStatusPending, platform, createdBefore).
		Order("created_at ASC").
		Limit(limit).
		Find(&shares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending shares: %w", err)
	}
	return shares, nil
}

// MarkShareFailed sets an unverified share to failed with a reason
func (s *pgStore) MarkShareFailed(ctx context.Context, shareID string, reason string, failedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.SocialShare{}).
		Where("id = ? AND verified = false", shareID).
		Updates(map[string]interface{}{
			"status":         domain.ShareStatusFailed,
			"failure_reason": reason,
			"updated_at":     failedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark share failed: %w", err)
	}
	return nil
}

// CompleteShareVerification verifies a share and credits the viewer in one transaction.
// Only the call that flips verified from false to true credits points.
func (s *pgStore) CompleteShareVerification(ctx context.Context, input CompleteShareVerificationInput) (*ShareVerificationResult, error) {
	var result ShareVerificationResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var share schema.SocialShare
		if err := tx.Where("id = ?", input.ShareID).First(&share).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get share: %w", err)
		}
		result.ViewerID = share.ViewerID
		result.Platform = share.Platform

		var link schema.ReferralLink
		if err := tx.Preload("Content").Where("id = ?", share.ReferralLinkID).First(&link).Error; err != nil {
			return fmt.Errorf("failed to get referral link: %w", err)
		}
		if link.Content == nil {
			return fmt.Errorf("referral link %s has no content: %w", link.ID, ErrNotFound)
		}
		result.ContentID = link.ContentID
		result.PointsEarned = link.Content.PointsPerShare

		update := tx.Model(&schema.SocialShare{}).
			Where("id = ? AND verified = false", share.ID).
			Updates(map[string]interface{}{
				"verified":         true,
				"status":           domain.ShareStatusVerified,
				"engagement_score": input.EngagementScore,
				"verified_at":      input.VerifiedAt,
				"failure_reason":   nil,
				"updated_at":       input.VerifiedAt,
			})
		if update.Error != nil {
			return fmt.Errorf("failed to mark share verified: %w", update.Error)
		}
		if update.RowsAffected == 0 {
			// Already verified by an earlier run
			return nil
		}
		result.Transitioned = true

		err := tx.Model(&schema.ReferralLink{}).
			Where("id = ?", link.ID).
			Updates(map[string]interface{}{
				"points_earned": gorm.Expr("points_earned + ?", result.PointsEarned),
				"share_count":   gorm.Expr("share_count + 1"),
				"is_verified":   true,
				"updated_at":    input.VerifiedAt,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to credit referral link: %w", err)
		}

		stats := schema.UserStats{
			UserID:      share.ViewerID,
			TotalPoints: int64(result.PointsEarned),
			TotalShares: 1,
			UpdatedAt:   input.VerifiedAt,
		}
		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_points": gorm.Expr("user_stats.total_points + EXCLUDED.total_points"),
				"total_shares": gorm.Expr("user_stats.total_shares + EXCLUDED.total_shares"),
				"updated_at":   gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).Create(&stats).Error
		if err != nil {
			return fmt.Errorf("failed to credit user stats: %w", err)
		}

		var updated schema.UserStats
		if err := tx.Where("user_id = ?", share.ViewerID).First(&updated).Error; err != nil {
			return fmt.Errorf("failed to read user stats: %w", err)
		}
		result.TotalPoints = updated.TotalPoints
		result.TotalShares = updated.TotalShares

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("failed to complete share verification: %w", err)
		}
		return nil, err
	}

	return &result, nil
}

// =============================================================================
// Fraud detection
// =============================================================================

// CreateFraudEvent appends an anti-bot audit row
func (s *pgStore) CreateFraudEvent(ctx context.Context, event *schema.FraudDetectionEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create fraud event: %w", err)
	}
	return nil
}

// IsFingerprintUsedByOtherUser checks whether another user produced the fingerprint since the given time
func (s *pgStore) IsFingerprintUsedByOtherUser(ctx context.Context, fingerprint, userID string, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.FraudDetectionEvent{}).
		Where("device_fingerprint = ? AND user_id <> ? AND created_at >= ?", fingerprint, userID, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check device fingerprint: %w", err)
	}
	return count > 0, nil
}

// GetAverageRiskScoreSince averages a user's risk scores since the given time (0 when none)
func (s *pgStore) GetAverageRiskScoreSince(ctx context.Context, userID string, since time.Time) (float64, error) {
	var avg float64
	err := s.db.WithContext(ctx).
		Model(&schema.FraudDetectionEvent{}).
		Select("COALESCE(AVG(risk_score), 0)").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to average risk score: %w", err)
	}
	return avg, nil
}

// =============================================================================
// Points and rewards
// =============================================================================

// GetUserStats retrieves the point balance of a user
func (s *pgStore) GetUserStats(ctx context.Context, userID string) (*schema.UserStats, error) {
	var stats schema.UserStats
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}

// CountVerifiedSharesForContent counts a viewer's verified shares for a campaign
func (s *pgStore) CountVerifiedSharesForContent(ctx context.Context, viewerID, contentID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.SocialShare{}).
		Joins("JOIN referral_links ON referral_links.id = social_shares.referral_link_id").
		Where("social_shares.viewer_id = ? AND referral_links.content_id = ? AND social_shares.verified = true", viewerID, contentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count verified shares: %w", err)
	}
	return count, nil
}

// GrantViewerReward grants a reward unless already granted or exhausted
func (s *pgStore) GrantViewerReward(ctx context.Context, viewerID string, reward *schema.Reward, earnedAt time.Time) (bool, error) {
	granted := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize grants of the same reward so the quantity cap holds
		var locked schema.Reward
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", reward.ID).First(&locked).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock reward: %w", err)
		}

		if locked.Quantity != nil {
			var issued int64
			if err := tx.Model(&schema.ViewerReward{}).Where("reward_id = ?", locked.ID).Count(&issued).Error; err != nil {
				return fmt.Errorf("failed to count issued rewards: %w", err)
			}
			if issued >= int64(*locked.Quantity) {
				return nil
			}
		}

		grant := schema.ViewerReward{
			ID:       newID(),
			ViewerID: viewerID,
			RewardID: locked.ID,
			Status:   domain.ViewerRewardStatusPending,
			EarnedAt: earnedAt,
		}
		result := tx.Omit("Reward").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "viewer_id"}, {Name: "reward_id"}},
				DoNothing: true,
			}).
			Create(&grant)
		if result.Error != nil {
			return fmt.Errorf("failed to grant reward: %w", result.Error)
		}
		granted = result.RowsAffected > 0

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, fmt.Errorf("failed to grant reward: %w", err)
		}
		return false, err
	}

	return granted, nil
}

// ListViewerRewards lists the rewards a viewer earned with their definitions
func (s *pgStore) ListViewerRewards(ctx context.Context, viewerID string) ([]schema.ViewerReward, error) {
	var rewards []schema.ViewerReward
	err := s.db.WithContext(ctx).
		Preload("Reward").
		Where("viewer_id = ?", viewerID).
		Order("earned_at DESC").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list viewer rewards: %w", err)
	}
	return rewards, nil
}

// =============================================================================
// Notifications
// =============================================================================

// CreateNotification persists a notification, skipping it when its dedupe key is already stored
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) (bool, error) {
	if notification.ID == "" {
		notification.ID = newID()
	}

	db := s.db.WithContext(ctx)
	if notification.DedupeKey == nil {
		if err := db.Create(notification).Error; err != nil {
			return false, fmt.Errorf("failed to create notification: %w", err)
		}
		return true, nil
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dedupe_key"}},
		DoNothing: true,
	}).Create(notification)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create notification: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var existing schema.Notification
	if err := db.Where("dedupe_key = ?", *notification.DedupeKey).First(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to get existing notification: %w", err)
	}
	*notification = existing
	return false, nil
}

// ListNotifications lists a user's notifications, newest first
func (s *pgStore) ListNotifications(ctx context.Context, userID string, limit int) ([]schema.Notification, error) {
	var notifications []schema.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flips read for one of the user's notifications
func (s *pgStore) MarkNotificationRead(ctx context.Context, userID, notificationID string) (bool, error) {
	var notification schema.Notification
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get notification: %w", err)
	}

	err = s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return true, nil
}

// MarkAllNotificationsRead flips read for all of a user's notifications and returns the count
func (s *pgStore) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountUnreadNotifications counts a user's unread notifications
func (s *pgStore) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// =============================================================================
// Analytics
// =============================================================================

// GetContentLinkStats aggregates clicks and shares per link of a campaign
func (s *pgStore) GetContentLinkStats(ctx context.Context, contentID string) ([]LinkStats, error) {
	var stats []LinkStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT rl.id, rl.code, rl.viewer_id, rl.clicks, rl.points_earned,
			COUNT(ss.id) AS shares,
			COUNT(ss.id) FILTER (WHERE ss.verified) AS verified_shares,
			COALESCE(SUM(ss.engagement_score) FILTER (WHERE ss.verified), 0) AS engagement_total
		FROM referral_links rl
		LEFT JOIN social_shares ss ON ss.referral_link_id = rl.id
		WHERE rl.content_id = ?
		GROUP BY rl.id
		ORDER BY rl.clicks DESC, rl.created_at ASC`, contentID).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get content link stats: %w", err)
	}
	return stats, nil
}
