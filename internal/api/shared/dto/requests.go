package dto

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/creatorchain/creatorchain/internal/api/shared/constants"
	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/domain"
)

// RewardInput represents a reward offered by a new campaign
type RewardInput struct {
	Type           domain.RewardType `json:"type"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	SharesRequired int               `json:"shares_required"`
	Quantity       *int              `json:"quantity"`
}

// CreateContentRequest represents the request body for creating a campaign
type CreateContentRequest struct {
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Platform             domain.Platform `json:"platform"`
	ContentURL           string          `json:"content_url"`
	PointsPerShare       int             `json:"points_per_share"`
	CampaignDurationDays int             `json:"campaign_duration_days"`
	Rewards              []RewardInput   `json:"rewards"`
}

// Validate validates the request body
func (r *CreateContentRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apierrors.NewValidationError("title is required")
	}
	if utf8.RuneCountInString(r.Title) > constants.MAX_TITLE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("title must be at most %d characters", constants.MAX_TITLE_LENGTH))
	}
	if utf8.RuneCountInString(r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	if !r.Platform.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid platform: %s", r.Platform))
	}
	if !isHTTPURL(r.ContentURL) {
		return apierrors.NewValidationError("content_url must be an absolute http(s) URL")
	}
	if r.PointsPerShare < 1 {
		return apierrors.NewValidationError("points_per_share must be at least 1")
	}
	if r.CampaignDurationDays < 1 || r.CampaignDurationDays > constants.MAX_CAMPAIGN_DURATION_DAYS {
		return apierrors.NewValidationError(fmt.Sprintf("campaign_duration_days must be between 1 and %d", constants.MAX_CAMPAIGN_DURATION_DAYS))
	}
	if len(r.Rewards) > constants.MAX_REWARDS_PER_CONTENT {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d rewards allowed", constants.MAX_REWARDS_PER_CONTENT))
	}

	for i := range r.Rewards {
		reward := &r.Rewards[i]
		reward.Title = strings.TrimSpace(reward.Title)
		if !reward.Type.Valid() {
			return apierrors.NewValidationError(fmt.Sprintf("rewards[%d]: invalid type: %s", i, reward.Type))
		}
		if reward.Title == "" {
			return apierrors.NewValidationError(fmt.Sprintf("rewards[%d]: title is required", i))
		}
		if reward.SharesRequired < 1 {
			return apierrors.NewValidationError(fmt.Sprintf("rewards[%d]: shares_required must be at least 1", i))
		}
		if reward.Quantity != nil && *reward.Quantity < 1 {
			return apierrors.NewValidationError(fmt.Sprintf("rewards[%d]: quantity must be at least 1", i))
		}
	}

	return nil
}

// UpdateContentStatusRequest represents the request body for changing a campaign status
type UpdateContentStatusRequest struct {
	Status  domain.ContentStatus `json:"status"`
	Message string               `json:"message"`
}

// Validate validates the request body
func (r *UpdateContentStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

// GenerateReferralLinkRequest represents the request body for issuing a referral link
type GenerateReferralLinkRequest struct {
	ContentID         string `json:"content_id"`
	DeviceFingerprint string `json:"device_fingerprint"`
}

// Validate validates the request body
func (r *GenerateReferralLinkRequest) Validate() error {
	if strings.TrimSpace(r.ContentID) == "" {
		return apierrors.NewValidationError("content_id is required")
	}
	return nil
}

// RecordShareRequest represents the request body for recording a social share
type RecordShareRequest struct {
	ReferralLinkID string          `json:"referral_link_id"`
	Platform       domain.Platform `json:"platform"`
	ShareURL       *string         `json:"share_url"`
	ShareID        *string         `json:"share_id"`
}

// Validate validates the request body
func (r *RecordShareRequest) Validate() error {
	if strings.TrimSpace(r.ReferralLinkID) == "" {
		return apierrors.NewValidationError("referral_link_id is required")
	}
	if !r.Platform.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid platform: %s", r.Platform))
	}
	if r.ShareURL != nil {
		trimmed := strings.TrimSpace(*r.ShareURL)
		r.ShareURL = &trimmed
		if trimmed == "" {
			r.ShareURL = nil
		} else if !isHTTPURL(trimmed) {
			return apierrors.NewValidationError("share_url must be an absolute http(s) URL")
		}
	}
	if r.ShareID != nil {
		trimmed := strings.TrimSpace(*r.ShareID)
		r.ShareID = &trimmed
		if trimmed == "" {
			r.ShareID = nil
		}
	}
	if r.ShareURL == nil && r.ShareID == nil {
		return apierrors.NewValidationError("share_url or share_id is required")
	}
	return nil
}

// ShareRef returns the value used to deduplicate the share
func (r *RecordShareRequest) ShareRef() string {
	if r.ShareURL != nil {
		return *r.ShareURL
	}
	if r.ShareID != nil {
		return *r.ShareID
	}
	return ""
}

// UpsertProfileRequest represents the request body for syncing a profile after signup
type UpsertProfileRequest struct {
	// ID is only honoured for API key callers; JWT callers always sync their own profile
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	AvatarURL *string     `json:"avatar_url"`
	Role      domain.Role `json:"role"`
}

// Validate validates the request body
func (r *UpsertProfileRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apierrors.NewValidationError("email must be a valid address")
	}
	if r.Role != domain.RoleCreator && r.Role != domain.RoleViewer {
		return apierrors.NewValidationError(fmt.Sprintf("invalid role: %s", r.Role))
	}
	if utf8.RuneCountInString(r.FullName) > constants.MAX_TITLE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("full_name must be at most %d characters", constants.MAX_TITLE_LENGTH))
	}
	if r.AvatarURL != nil && *r.AvatarURL != "" && !isHTTPURL(*r.AvatarURL) {
		return apierrors.NewValidationError("avatar_url must be an absolute http(s) URL")
	}
	return nil
}

// isHTTPURL reports whether s is an absolute http or https URL with a host
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
