package schema

import (
	"time"

	"github.com/creatorchain/creatorchain/internal/domain"
)

// LinkClick represents the link_clicks table - append-only log of referral link visits
type LinkClick struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ReferralLinkID references the visited link
	ReferralLinkID string `gorm:"column:referral_link_id;not null;type:uuid;index"`
	// IPAddress is the client IP of the visitor
	IPAddress string `gorm:"column:ip_address;type:text;index:idx_link_clicks_ip_clicked,priority:1"`
	// UserAgent is the raw user agent header
	UserAgent string `gorm:"column:user_agent;type:text"`
	// Referer is the raw referer header
	Referer string `gorm:"column:referer;type:text"`
	// Country is the optional geo country of the visitor
	Country string `gorm:"column:country;type:text"`
	// City is the optional geo city of the visitor
	City string `gorm:"column:city;type:text"`
	// DeviceType is derived from the user agent (mobile, desktop)
	DeviceType domain.DeviceType `gorm:"column:device_type;not null;type:text"`
	// Browser is the browser family derived from the user agent
	Browser domain.Browser `gorm:"column:browser;not null;type:text"`
	// ClickedAt is the timestamp of the visit
	ClickedAt time.Time `gorm:"column:clicked_at;not null;default:now();type:timestamptz;index:idx_link_clicks_ip_clicked,priority:2"`
}

// TableName specifies the table name for the LinkClick model
func (LinkClick) TableName() string {
	return "link_clicks"
}
