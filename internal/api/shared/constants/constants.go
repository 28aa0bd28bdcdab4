package constants

import "time"

const (
	MAX_TITLE_LENGTH           = 200
	MAX_DESCRIPTION_LENGTH     = 2000
	MAX_REWARDS_PER_CONTENT    = 20
	MAX_CAMPAIGN_DURATION_DAYS = 365
	DEFAULT_CONTENT_LIMIT      = 50
	SLUG_SUFFIX_LENGTH         = 6
	MAX_REFERRAL_CODE_ATTEMPTS = 3
	SSE_KEEPALIVE_INTERVAL     = 25 * time.Second
	SERVICE_NAME               = "creatorchain-api"
)
