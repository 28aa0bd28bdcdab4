package schema

import (
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// Content represents the content table - a creator-owned sharing campaign
type Content struct {
	// ID is the campaign primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// CreatorID references the owning creator profile
	CreatorID string `gorm:"column:creator_id;not null;type:uuid;index:idx_content_creator_created,priority:1"`
	// Title is the campaign title shown to viewers
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the optional campaign description
	Description string `gorm:"column:description;type:text"`
	// Platform is the social platform the content lives on
	Platform domain.Platform `gorm:"column:platform;not null;type:text"`
	// ContentURL is the target URL referral links redirect to
	ContentURL string `gorm:"column:content_url;not null;type:text"`
	// Slug is the public, human readable identifier
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// PointsPerShare is the number of points credited per verified share
	PointsPerShare int `gorm:"column:points_per_share;not null"`
	// CampaignDurationDays is the configured campaign length
	CampaignDurationDays int `gorm:"column:campaign_duration;not null"`
	// EndsAt is when the campaign is scheduled to end
	EndsAt time.Time `gorm:"column:ends_at;not null;type:timestamptz"`
	// Status is the lifecycle status (active, paused, completed)
	Status domain.ContentStatus `gorm:"column:status;not null;default:active;type:text;index"`
	// CreatedAt is the timestamp when the campaign was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_content_creator_created,priority:2"`
	// UpdatedAt is the timestamp when the campaign was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Rewards []Reward `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Content model
func (Content) TableName() string {
	return "content"
}

// Reward represents the rewards table - a reward a creator offers for a campaign
type Reward struct {
	// ID is the reward primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ContentID references the owning campaign
	ContentID string `gorm:"column:content_id;not null;type:uuid;index"`
	// Type is the reward kind (physical, digital, raffle)
	Type domain.RewardType `gorm:"column:type;not null;type:text"`
	// Title is the reward name
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the optional reward description
	Description string `gorm:"column:description;type:text"`
	// SharesRequired is the verified share threshold that earns the reward
	SharesRequired int `gorm:"column:shares_required;not null"`
	// Quantity caps how many viewers can earn the reward (nil = unlimited)
	Quantity *int `gorm:"column:quantity"`
	// CreatedAt is the timestamp when the reward was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Reward model
func (Reward) TableName() string {
	return "rewards"
}
