package schema

import (
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// ViewerReward represents the viewer_rewards table - a reward earned by a viewer
type ViewerReward struct {
	// ID is the grant primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ViewerID references the viewer who earned the reward
	ViewerID string `gorm:"column:viewer_id;not null;type:uuid;uniqueIndex:idx_viewer_rewards_viewer_reward,priority:1"`
	// RewardID references the earned reward
	RewardID string `gorm:"column:reward_id;not null;type:uuid;uniqueIndex:idx_viewer_rewards_viewer_reward,priority:2;index"`
	// Status is the fulfilment state (pending, claimed, shipped)
	Status domain.ViewerRewardStatus `gorm:"column:status;not null;default:pending;type:text"`
	// EarnedAt is the timestamp the threshold was reached
	EarnedAt time.Time `gorm:"column:earned_at;not null;default:now();type:timestamptz"`

	// Associations
	Reward *Reward `gorm:"foreignKey:RewardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ViewerReward model
func (ViewerReward) TableName() string {
	return "viewer_rewards"
}
