package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/antibot"
	"github.com/creatorchain/creatorchain/internal/api/shared/constants"
	"github.com/creatorchain/creatorchain/internal/api/shared/dto"
	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/ledger"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/providers/temporal"
	"github.com/creatorchain/creatorchain/internal/referral"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
	"github.com/creatorchain/creatorchain/internal/tracking"
	"github.com/creatorchain/creatorchain/internal/workflows"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// UpsertProfile syncs the caller's profile after identity-provider signup
	UpsertProfile(ctx context.Context, userID string, req dto.UpsertProfileRequest) (*dto.ProfileResponse, error)

	// CreateContent publishes a new campaign owned by the creator
	CreateContent(ctx context.Context, creatorID string, req dto.CreateContentRequest) (*dto.ContentResponse, error)
	// ListCreatorContent lists the creator's campaigns of every status
	ListCreatorContent(ctx context.Context, creatorID string) (*dto.ContentListResponse, error)
	// ListActiveContent lists the active campaign catalogue
	ListActiveContent(ctx context.Context) (*dto.ContentListResponse, error)
	// GetContentBySlug returns an active campaign by slug
	GetContentBySlug(ctx context.Context, slug string) (*dto.ContentResponse, error)
	// UpdateContentStatus changes a campaign status and notifies its viewers
	UpdateContentStatus(ctx context.Context, creatorID, contentID string, req dto.UpdateContentStatusRequest) (*dto.ContentResponse, error)
	// GetContentAnalytics reports clicks and shares per referral link of a campaign
	GetContentAnalytics(ctx context.Context, creatorID, contentID string) (*dto.ContentAnalyticsResponse, error)

	// GenerateReferralLink returns the viewer's referral link for a campaign, creating it on first request
	GenerateReferralLink(ctx context.Context, viewerID string, req dto.GenerateReferralLinkRequest, metadata domain.RequestMetadata) (*dto.ReferralLinkResponse, error)
	// TrackClick logs a referral link visit and returns the redirect target
	TrackClick(ctx context.Context, code string, metadata domain.RequestMetadata) (string, error)
	// RecordShare records a viewer's share claim and enqueues its verification
	RecordShare(ctx context.Context, viewerID string, req dto.RecordShareRequest) (*dto.ShareResponse, error)

	// GetViewerDashboard returns the viewer's balance, links and earned rewards
	GetViewerDashboard(ctx context.Context, viewerID string) (*dto.DashboardResponse, error)
	// GetFraudScore returns the caller's average risk score of the last 24h
	GetFraudScore(ctx context.Context, userID string) (*dto.FraudScoreResponse, error)

	// ListNotifications lists the user's notifications, newest first
	ListNotifications(ctx context.Context, userID string, limit int) (*dto.NotificationListResponse, error)
	// GetUnreadCount counts the user's unread notifications
	GetUnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
	// MarkNotificationRead marks one of the user's notifications read
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	// MarkAllNotificationsRead marks all of the user's notifications read
	MarkAllNotificationsRead(ctx context.Context, userID string) (*dto.MarkAllReadResponse, error)
}

// Config holds the executor settings
type Config struct {
	ReferralBaseURL       string
	VerificationTaskQueue string
}

type executor struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	codes        referral.Generator
	slugSuffixes referral.Generator
	tracker      tracking.Tracker
	scorer       antibot.Scorer
	notifier     ledger.Notifier
	clock        adapter.Clock
}

func NewExecutor(
	config Config,
	store store.Store,
	orchestrator temporal.TemporalOrchestrator,
	codes referral.Generator,
	tracker tracking.Tracker,
	scorer antibot.Scorer,
	notifier ledger.Notifier,
	clock adapter.Clock,
) Executor {
	if config.ReferralBaseURL == "" {
		config.ReferralBaseURL = domain.DEFAULT_REFERRAL_BASE_URL
	}

	return &executor{
		config:       config,
		store:        store,
		orchestrator: orchestrator,
		codes:        codes,
		slugSuffixes: referral.NewGenerator(constants.SLUG_SUFFIX_LENGTH),
		tracker:      tracker,
		scorer:       scorer,
		notifier:     notifier,
		clock:        clock,
	}
}

// =============================================================================
// Profiles
// =============================================================================

func (e *executor) UpsertProfile(ctx context.Context, userID string, req dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	profile := &schema.Profile{
		ID:        userID,
		Email:     req.Email,
		FullName:  strings.TrimSpace(req.FullName),
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
		UpdatedAt: e.clock.Now(),
	}
	if err := e.store.UpsertProfile(ctx, profile); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to sync profile: %v", err))
	}

	return dto.MapProfileToDTO(profile), nil
}

// requireRole loads the caller's profile and checks its role
func (e *executor) requireRole(ctx context.Context, userID string, role domain.Role, roleErr error) (*schema.Profile, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	profile, err := e.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get profile: %v", err))
	}
	if profile == nil || profile.Role != role {
		return nil, roleErr
	}
	return profile, nil
}

// =============================================================================
// Content
// =============================================================================

func (e *executor) CreateContent(ctx context.Context, creatorID string, req dto.CreateContentRequest) (*dto.ContentResponse, error) {
	if _, err := e.requireRole(ctx, creatorID, domain.RoleCreator, domain.ErrNotCreator); err != nil {
		return nil, err
	}

	now := e.clock.Now()
	rewards := make([]schema.Reward, 0, len(req.Rewards))
	for _, r := range req.Rewards {
		rewards = append(rewards, schema.Reward{
			Type:           r.Type,
			Title:          r.Title,
			Description:    r.Description,
			SharesRequired: r.SharesRequired,
			Quantity:       r.Quantity,
			CreatedAt:      now,
		})
	}

	for attempt := 1; ; attempt++ {
		contentSlug, err := e.newSlug(req.Title)
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to generate slug")
		}

		content := &schema.Content{
			CreatorID:            creatorID,
			Title:                req.Title,
			Description:          req.Description,
			Platform:             req.Platform,
			ContentURL:           req.ContentURL,
			Slug:                 contentSlug,
			PointsPerShare:       req.PointsPerShare,
			CampaignDurationDays: req.CampaignDurationDays,
			EndsAt:               now.Add(time.Duration(req.CampaignDurationDays) * 24 * time.Hour),
			Status:               domain.ContentStatusActive,
			CreatedAt:            now,
			UpdatedAt:            now,
		}

		err = e.store.CreateContent(ctx, content, rewards)
		if err == nil {
			logger.InfoCtx(ctx, "Content created",
				zap.String("contentID", content.ID),
				zap.String("creatorID", creatorID),
				zap.String("slug", content.Slug))
			return dto.MapContentToDTO(content), nil
		}
		if !errors.Is(err, store.ErrDuplicateKey) || attempt >= constants.MAX_REFERRAL_CODE_ATTEMPTS {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create content: %v", err))
		}
		for i := range rewards {
			rewards[i].ID = ""
		}
	}
}

// newSlug builds "<slugified-title>-<6 random chars>"
func (e *executor) newSlug(title string) (string, error) {
	suffix, err := e.slugSuffixes.Generate()
	if err != nil {
		return "", err
	}
	suffix = strings.ToLower(suffix)

	base := slug.Make(title)
	if base == "" {
		return suffix, nil
	}
	return base + "-" + suffix, nil
}

func (e *executor) ListCreatorContent(ctx context.Context, creatorID string) (*dto.ContentListResponse, error) {
	if _, err := e.requireRole(ctx, creatorID, domain.RoleCreator, domain.ErrNotCreator); err != nil {
		return nil, err
	}

	contents, err := e.store.ListContentByCreator(ctx, creatorID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list content: %v", err))
	}
	return dto.MapContentListToDTO(contents), nil
}

func (e *executor) ListActiveContent(ctx context.Context) (*dto.ContentListResponse, error) {
	contents, err := e.store.ListActiveContent(ctx, constants.DEFAULT_CONTENT_LIMIT)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list content: %v", err))
	}
	return dto.MapContentListToDTO(contents), nil
}

func (e *executor) GetContentBySlug(ctx context.Context, contentSlug string) (*dto.ContentResponse, error) {
	content, err := e.store.GetContentBySlug(ctx, contentSlug)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get content: %v", err))
	}
	if content == nil || content.Status != domain.ContentStatusActive {
		return nil, domain.ErrContentNotFound
	}
	return dto.MapContentToDTO(content), nil
}

// ownedContent loads a campaign and checks the caller owns it
func (e *executor) ownedContent(ctx context.Context, creatorID, contentID string) (*schema.Content, error) {
	if _, err := e.requireRole(ctx, creatorID, domain.RoleCreator, domain.ErrNotCreator); err != nil {
		return nil, err
	}

	content, err := e.store.GetContentByID(ctx, contentID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get content: %v", err))
	}
	if content == nil || content.CreatorID != creatorID {
		return nil, domain.ErrContentNotFound
	}
	return content, nil
}

func (e *executor) UpdateContentStatus(ctx context.Context, creatorID, contentID string, req dto.UpdateContentStatusRequest) (*dto.ContentResponse, error) {
	content, err := e.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return nil, err
	}
	if content.Status == req.Status {
		return dto.MapContentToDTO(content), nil
	}

	if err := e.store.UpdateContentStatus(ctx, contentID, req.Status, e.clock.Now()); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update content status: %v", err))
	}
	content.Status = req.Status

	message := strings.TrimSpace(req.Message)
	if message == "" {
		message = fmt.Sprintf("This campaign is now %s.", req.Status)
	}
	e.notifyCampaignViewers(ctx, content, message)

	return dto.MapContentToDTO(content), nil
}

// notifyCampaignViewers sends a campaign_update to every viewer holding a link; failures are only logged
func (e *executor) notifyCampaignViewers(ctx context.Context, content *schema.Content, message string) {
	viewerIDs, err := e.store.ListViewerIDsByContent(ctx, content.ID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("contentID", content.ID))
		return
	}

	for _, viewerID := range viewerIDs {
		if _, err := e.notifier.NotifyCampaignUpdate(ctx, viewerID, content.Title, message); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("contentID", content.ID),
				zap.String("viewerID", viewerID))
		}
	}

	logger.InfoCtx(ctx, "Campaign update sent",
		zap.String("contentID", content.ID),
		zap.Int("viewers", len(viewerIDs)))
}

func (e *executor) GetContentAnalytics(ctx context.Context, creatorID, contentID string) (*dto.ContentAnalyticsResponse, error) {
	if _, err := e.ownedContent(ctx, creatorID, contentID); err != nil {
		return nil, err
	}

	stats, err := e.store.GetContentLinkStats(ctx, contentID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get analytics: %v", err))
	}

	resp := &dto.ContentAnalyticsResponse{
		ContentID:  contentID,
		TotalLinks: len(stats),
		Links:      make([]dto.LinkAnalytics, 0, len(stats)),
	}
	for _, s := range stats {
		resp.TotalClicks += s.Clicks
		resp.TotalShares += s.Shares
		resp.VerifiedShares += s.VerifiedShares
		resp.TotalEngagement += s.EngagementTotal
		resp.Links = append(resp.Links, dto.LinkAnalytics{
			ReferralLinkID:  s.ReferralLinkID,
			Code:            s.Code,
			ViewerID:        s.ViewerID,
			Clicks:          s.Clicks,
			Shares:          s.Shares,
			VerifiedShares:  s.VerifiedShares,
			PointsEarned:    s.PointsEarned,
			EngagementTotal: s.EngagementTotal,
		})
	}

	return resp, nil
}

// =============================================================================
// Referral links and shares
// =============================================================================

func (e *executor) GenerateReferralLink(ctx context.Context, viewerID string, req dto.GenerateReferralLinkRequest, metadata domain.RequestMetadata) (*dto.ReferralLinkResponse, error) {
	if _, err := e.requireRole(ctx, viewerID, domain.RoleViewer, domain.ErrNotViewer); err != nil {
		return nil, err
	}

	content, err := e.store.GetContentByID(ctx, req.ContentID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get content: %v", err))
	}
	if content == nil {
		return nil, domain.ErrContentNotFound
	}
	if content.Status != domain.ContentStatusActive {
		return nil, domain.ErrContentInactive
	}

	if metadata.DeviceFingerprint == "" {
		metadata.DeviceFingerprint = req.DeviceFingerprint
	}
	validation := e.scorer.ValidateUser(ctx, viewerID, metadata)
	if !validation.IsValid {
		logger.WarnCtx(ctx, "Referral link request rejected",
			zap.String("viewerID", viewerID),
			zap.Int("riskScore", validation.RiskScore))
		return nil, domain.ErrAccountFlagged
	}

	existing, err := e.store.GetReferralLink(ctx, content.ID, viewerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get referral link: %v", err))
	}
	if existing != nil {
		existing.Content = content
		return dto.MapReferralLinkToDTO(existing), nil
	}

	for attempt := 1; ; attempt++ {
		code, err := e.codes.Generate()
		if err != nil {
			return nil, apierrors.NewInternalError("Failed to generate referral code")
		}

		link := &schema.ReferralLink{
			ContentID: content.ID,
			ViewerID:  viewerID,
			Code:      code,
			URL:       referral.BuildURL(e.config.ReferralBaseURL, code),
			CreatedAt: e.clock.Now(),
			UpdatedAt: e.clock.Now(),
		}

		created, err := e.store.CreateReferralLink(ctx, link)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateKey) && attempt < constants.MAX_REFERRAL_CODE_ATTEMPTS {
				logger.WarnCtx(ctx, "Referral code collision, retrying", zap.Int("attempt", attempt))
				continue
			}
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create referral link: %v", err))
		}

		if !created {
			// A concurrent request won the insert
			link, err = e.store.GetReferralLink(ctx, content.ID, viewerID)
			if err != nil {
				return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get referral link: %v", err))
			}
			if link == nil {
				return nil, apierrors.NewInternalError("Referral link disappeared after conflict")
			}
		} else {
			logger.InfoCtx(ctx, "Referral link created",
				zap.String("linkID", link.ID),
				zap.String("contentID", content.ID),
				zap.String("viewerID", viewerID))
		}

		link.Content = content
		return dto.MapReferralLinkToDTO(link), nil
	}
}

func (e *executor) TrackClick(ctx context.Context, code string, metadata domain.RequestMetadata) (string, error) {
	click, err := e.tracker.Track(ctx, code, metadata)
	if err != nil {
		return "", err
	}
	return click.TargetURL, nil
}

func (e *executor) RecordShare(ctx context.Context, viewerID string, req dto.RecordShareRequest) (*dto.ShareResponse, error) {
	if viewerID == "" {
		return nil, domain.ErrUnauthorized
	}

	link, err := e.store.GetReferralLinkByID(ctx, req.ReferralLinkID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get referral link: %v", err))
	}
	if link == nil || link.ViewerID != viewerID {
		return nil, domain.ErrLinkNotFound
	}

	// Resubmissions are answered before the share rate limit
	existing, err := e.store.GetSocialShareByRef(ctx, link.ID, req.Platform, req.ShareRef())
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get social share: %v", err))
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Duplicate share submission", zap.String("shareID", existing.ID))
		return dto.MapShareToDTO(existing, true), nil
	}

	if !e.scorer.CheckShareRateLimit(ctx, viewerID) {
		return nil, domain.ErrShareRateLimited
	}

	share := &schema.SocialShare{
		ReferralLinkID: link.ID,
		ViewerID:       viewerID,
		Platform:       req.Platform,
		ShareURL:       req.ShareURL,
		ShareID:        req.ShareID,
		ShareRef:       req.ShareRef(),
		Status:         domain.ShareStatusManualReview,
		CreatedAt:      e.clock.Now(),
		UpdatedAt:      e.clock.Now(),
	}
	if videoID, ok := shareVideoID(req); ok {
		share.VideoID = &videoID
		share.Status = domain.ShareStatusPending
	}

	stored, created, err := e.store.CreateSocialShare(ctx, share)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record share: %v", err))
	}
	if !created {
		logger.InfoCtx(ctx, "Duplicate share submission", zap.String("shareID", stored.ID))
		return dto.MapShareToDTO(stored, true), nil
	}

	logger.InfoCtx(ctx, "Share recorded",
		zap.String("shareID", stored.ID),
		zap.String("platform", string(stored.Platform)),
		zap.String("status", string(stored.Status)))

	if stored.Status == domain.ShareStatusPending {
		// The sweeper re-enqueues pending shares if this fails
		if _, err := workflows.StartVerifyShare(ctx, e.orchestrator, e.config.VerificationTaskQueue, stored.ID); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("shareID", stored.ID))
		}
	}

	return dto.MapShareToDTO(stored, false), nil
}

// shareVideoID extracts a YouTube video id from the share url or id
func shareVideoID(req dto.RecordShareRequest) (string, bool) {
	if req.Platform != domain.PlatformYouTube {
		return "", false
	}
	if req.ShareURL != nil {
		if id, ok := youtube.ExtractVideoID(*req.ShareURL); ok {
			return id, true
		}
	}
	if req.ShareID != nil && youtube.IsVideoID(*req.ShareID) {
		return *req.ShareID, true
	}
	return "", false
}

// =============================================================================
// Dashboard
// =============================================================================

func (e *executor) GetViewerDashboard(ctx context.Context, viewerID string) (*dto.DashboardResponse, error) {
	if viewerID == "" {
		return nil, domain.ErrUnauthorized
	}

	resp := &dto.DashboardResponse{
		Links:   []dto.ReferralLinkResponse{},
		Rewards: []dto.ViewerRewardResponse{},
	}

	stats, err := e.store.GetUserStats(ctx, viewerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user stats: %v", err))
	}
	if stats != nil {
		resp.Stats = dto.UserStatsResponse{
			TotalPoints: stats.TotalPoints,
			TotalShares: stats.TotalShares,
		}
	}

	links, err := e.store.ListReferralLinksByViewer(ctx, viewerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list referral links: %v", err))
	}
	for i := range links {
		resp.Links = append(resp.Links, *dto.MapReferralLinkToDTO(&links[i]))
	}

	rewards, err := e.store.ListViewerRewards(ctx, viewerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list rewards: %v", err))
	}
	for i := range rewards {
		resp.Rewards = append(resp.Rewards, dto.MapViewerRewardToDTO(&rewards[i]))
	}

	return resp, nil
}

func (e *executor) GetFraudScore(ctx context.Context, userID string) (*dto.FraudScoreResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return &dto.FraudScoreResponse{
		UserID: userID,
		Score:  e.scorer.FraudScore(ctx, userID),
	}, nil
}

// =============================================================================
// Notifications
// =============================================================================

func (e *executor) ListNotifications(ctx context.Context, userID string, limit int) (*dto.NotificationListResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	notifications, err := e.notifier.List(ctx, userID, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list notifications: %v", err))
	}
	return dto.MapNotificationListToDTO(notifications), nil
}

func (e *executor) GetUnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	count, err := e.notifier.UnreadCount(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count notifications: %v", err))
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (e *executor) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	err := e.notifier.MarkRead(ctx, userID, notificationID)
	if err != nil && !errors.Is(err, domain.ErrNotificationNotFound) {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to mark notification read: %v", err))
	}
	return err
}

func (e *executor) MarkAllNotificationsRead(ctx context.Context, userID string) (*dto.MarkAllReadResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	updated, err := e.notifier.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to mark notifications read: %v", err))
	}
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}
