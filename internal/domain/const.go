package domain

import "time"

const (
	// Referral link defaults
	DEFAULT_REFERRAL_BASE_URL = "http://localhost:3000"
	DEFAULT_CODE_LENGTH       = 16
	SHARE_PATH_PREFIX         = "/share/"

	// Anti-bot scoring
	BOT_USER_AGENT_SCORE     = 50
	CLICK_VELOCITY_SCORE     = 40
	PRIVATE_IP_SCORE         = 20
	DUPLICATE_DEVICE_SCORE   = 30
	RISK_REJECTION_THRESHOLD = 70
	CLICK_VELOCITY_THRESHOLD = 10
	CLICK_VELOCITY_WINDOW    = 60 * time.Second
	FINGERPRINT_WINDOW       = 24 * time.Hour
	FRAUD_SCORE_WINDOW       = 24 * time.Hour

	// Share rate limiting
	SHARE_RATE_LIMIT  = 5
	SHARE_RATE_WINDOW = time.Hour

	// Verification
	DEFAULT_VERIFICATION_DELAY = 10 * time.Second

	// Notifications
	DEFAULT_NOTIFICATIONS_LIMIT = 50
	MAX_NOTIFICATIONS_LIMIT     = 100

	// Engagement weights
	LIKE_WEIGHT    = 10
	COMMENT_WEIGHT = 5
)

// BotUserAgentPatterns are user agent substrings associated with automation tools
var BotUserAgentPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"automated",
	"python",
	"curl",
	"wget",
}

// SuspiciousIPPrefixes are private or reserved address prefixes treated as suspicious
var SuspiciousIPPrefixes = []string{
	"10.",
	"192.168.",
	"172.16.",
}

// ShareMilestones are the total verified share counts that trigger a milestone notification
var ShareMilestones = []int{1, 5, 10, 25, 50, 100, 250, 500, 1000}
