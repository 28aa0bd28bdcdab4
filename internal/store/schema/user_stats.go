package schema

import "time"

// UserStats represents the user_stats table - the point balance of a viewer
type UserStats struct {
	// UserID is the profile the stats belong to
	UserID string `gorm:"column:user_id;primaryKey;type:uuid"`
	// TotalPoints is the cumulative point balance
	TotalPoints int64 `gorm:"column:total_points;not null;default:0"`
	// TotalShares is the number of verified shares
	TotalShares int `gorm:"column:total_shares;not null;default:0"`
	// UpdatedAt is the timestamp of the last credit
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserStats model
func (UserStats) TableName() string {
	return "user_stats"
}
