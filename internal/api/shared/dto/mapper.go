package dto

import (
	"encoding/json"

	"github.com/creatorchain/creatorchain/internal/store/schema"
)

func MapProfileToDTO(p *schema.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
		UpdatedAt: p.UpdatedAt,
	}
}

func MapRewardToDTO(r *schema.Reward) RewardResponse {
	return RewardResponse{
		ID:             r.ID,
		Type:           r.Type,
		Title:          r.Title,
		Description:    r.Description,
		SharesRequired: r.SharesRequired,
		Quantity:       r.Quantity,
	}
}

func MapContentToDTO(c *schema.Content) *ContentResponse {
	rewards := make([]RewardResponse, 0, len(c.Rewards))
	for i := range c.Rewards {
		rewards = append(rewards, MapRewardToDTO(&c.Rewards[i]))
	}

	return &ContentResponse{
		ID:                   c.ID,
		CreatorID:            c.CreatorID,
		Title:                c.Title,
		Description:          c.Description,
		Platform:             c.Platform,
		ContentURL:           c.ContentURL,
		Slug:                 c.Slug,
		PointsPerShare:       c.PointsPerShare,
		CampaignDurationDays: c.CampaignDurationDays,
		EndsAt:               c.EndsAt,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		Rewards:              rewards,
	}
}

func MapContentListToDTO(contents []schema.Content) *ContentListResponse {
	items := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		items = append(items, *MapContentToDTO(&contents[i]))
	}
	return &ContentListResponse{Items: items}
}

func MapReferralLinkToDTO(l *schema.ReferralLink) *ReferralLinkResponse {
	resp := &ReferralLinkResponse{
		ID:           l.ID,
		ContentID:    l.ContentID,
		ViewerID:     l.ViewerID,
		Code:         l.Code,
		URL:          l.URL,
		Clicks:       l.Clicks,
		ShareCount:   l.ShareCount,
		PointsEarned: l.PointsEarned,
		IsVerified:   l.IsVerified,
		CreatedAt:    l.CreatedAt,
	}
	if l.Content != nil {
		resp.ContentTitle = l.Content.Title
	}
	return resp
}

func MapShareToDTO(s *schema.SocialShare, duplicate bool) *ShareResponse {
	return &ShareResponse{
		ID:              s.ID,
		ReferralLinkID:  s.ReferralLinkID,
		Platform:        s.Platform,
		ShareURL:        s.ShareURL,
		ShareID:         s.ShareID,
		VideoID:         s.VideoID,
		Status:          s.Status,
		Verified:        s.Verified,
		EngagementScore: s.EngagementScore,
		VerifiedAt:      s.VerifiedAt,
		FailureReason:   s.FailureReason,
		CreatedAt:       s.CreatedAt,
		Duplicate:       duplicate,
	}
}

func MapViewerRewardToDTO(vr *schema.ViewerReward) ViewerRewardResponse {
	resp := ViewerRewardResponse{
		ID:       vr.ID,
		Status:   vr.Status,
		EarnedAt: vr.EarnedAt,
	}
	if vr.Reward != nil {
		reward := MapRewardToDTO(vr.Reward)
		resp.Reward = &reward
	}
	return resp
}

func MapNotificationToDTO(n *schema.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		resp.Data = json.RawMessage(n.Data)
	}
	return resp
}

func MapNotificationListToDTO(notifications []schema.Notification) *NotificationListResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, MapNotificationToDTO(&notifications[i]))
	}
	return &NotificationListResponse{Items: items}
}
