package schema

import "time"

// ReferralLink represents the referral_links table - at most one link per viewer per content
type ReferralLink struct {
	// ID is the link primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ContentID references the campaign being shared
	ContentID string `gorm:"column:content_id;not null;type:uuid;uniqueIndex:idx_referral_links_content_viewer,priority:1"`
	// ViewerID references the viewer who owns the link
	ViewerID string `gorm:"column:viewer_id;not null;type:uuid;uniqueIndex:idx_referral_links_content_viewer,priority:2"`
	// Code is the unguessable, URL-safe link code
	Code string `gorm:"column:code;not null;uniqueIndex;type:text"`
	// URL is the fully-qualified shareable URL
	URL string `gorm:"column:url;not null;type:text"`
	// Clicks is the cumulative click counter, only ever incremented
	Clicks int64 `gorm:"column:clicks;not null;default:0"`
	// ShareCount is the number of verified shares made through this link
	ShareCount int `gorm:"column:share_count;not null;default:0"`
	// PointsEarned is the total points credited through this link
	PointsEarned int `gorm:"column:points_earned;not null;default:0"`
	// IsVerified is set once any share made through this link has been verified
	IsVerified bool `gorm:"column:is_verified;not null;default:false"`
	// CreatedAt is the timestamp when the link was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the link was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Content *Content `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ReferralLink model
func (ReferralLink) TableName() string {
	return "referral_links"
}
