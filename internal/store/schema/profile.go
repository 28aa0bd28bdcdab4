package schema

import (
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// Profile represents the profiles table - one row per authenticated identity
type Profile struct {
	// ID is the identity id issued by the auth provider
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Email is the contact address of the user
	Email string `gorm:"column:email;not null;type:text"`
	// FullName is the display name of the user
	FullName string `gorm:"column:full_name;type:text"`
	// AvatarURL is an optional profile picture URL
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
	// Role is the account role (creator, viewer, admin)
	Role domain.Role `gorm:"column:role;not null;type:text"`
	// CreatedAt is the timestamp when the profile was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
