package schema

import (
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// SocialShare represents the social_shares table - a viewer's claim of having shared content
type SocialShare struct {
	// ID is the share primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ReferralLinkID references the link the share was made for
	ReferralLinkID string `gorm:"column:referral_link_id;not null;type:uuid;uniqueIndex:idx_social_shares_dedupe,priority:1"`
	// ViewerID references the viewer who claimed the share
	ViewerID string `gorm:"column:viewer_id;not null;type:uuid;index:idx_social_shares_viewer_created,priority:1"`
	// Platform is where the share was made
	Platform domain.Platform `gorm:"column:platform;not null;type:text;uniqueIndex:idx_social_shares_dedupe,priority:2"`
	// ShareURL is the optional URL of the shared post
	ShareURL *string `gorm:"column:share_url;type:text"`
	// ShareID is the optional external identifier of the shared post
	ShareID *string `gorm:"column:share_id;type:text"`
	// ShareRef is the share URL or id used for deduplication
	ShareRef string `gorm:"column:share_ref;not null;type:text;uniqueIndex:idx_social_shares_dedupe,priority:3"`
	// VideoID is the extracted YouTube video id, if any
	VideoID *string `gorm:"column:video_id;type:text"`
	// Status is the verification state (pending, verified, failed, manual_review)
	Status domain.ShareStatus `gorm:"column:status;not null;default:pending;type:text;index"`
	// Verified flips from false to true exactly once
	Verified bool `gorm:"column:verified;not null;default:false"`
	// EngagementScore is set only once the share is verified
	EngagementScore *int64 `gorm:"column:engagement_score"`
	// VerifiedAt is the timestamp of the successful verification
	VerifiedAt *time.Time `gorm:"column:verified_at;type:timestamptz"`
	// FailureReason records why verification permanently failed
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// CreatedAt is the timestamp when the share was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_social_shares_viewer_created,priority:2"`
	// UpdatedAt is the timestamp when the share was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SocialShare model
func (SocialShare) TableName() string {
	return "social_shares"
}
