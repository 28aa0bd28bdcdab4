package executor_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/creatorchain/creatorchain/internal/antibot"
	"github.com/creatorchain/creatorchain/internal/api/shared/dto"
	apierrors "github.com/creatorchain/creatorchain/internal/api/shared/errors"
	"github.com/creatorchain/creatorchain/internal/api/shared/executor"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/mocks"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
	"github.com/creatorchain/creatorchain/internal/tracking"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type testExecutorMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	codes        *mocks.MockCodeGenerator
	tracker      *mocks.MockTracker
	scorer       *mocks.MockScorer
	notifier     *mocks.MockNotifier
	clock        *mocks.MockClock
	executor     executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		codes:        mocks.NewMockCodeGenerator(ctrl),
		tracker:      mocks.NewMockTracker(ctrl),
		scorer:       mocks.NewMockScorer(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		clock:        mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.executor = executor.NewExecutor(
		executor.Config{ReferralBaseURL: "https://creatorchain.app/", VerificationTaskQueue: "verification"},
		tm.store, tm.orchestrator, tm.codes, tm.tracker, tm.scorer, tm.notifier, tm.clock,
	)
	return tm
}

func (tm *testExecutorMocks) expectRole(userID string, role domain.Role) {
	tm.store.EXPECT().GetProfile(gomock.Any(), userID).
		Return(&schema.Profile{ID: userID, Role: role}, nil)
}

func activeContent() *schema.Content {
	return &schema.Content{
		ID:             "content-1",
		CreatorID:      "creator-1",
		Title:          "My Video",
		Platform:       domain.PlatformYouTube,
		ContentURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Slug:           "my-video-abc123",
		PointsPerShare: 10,
		Status:         domain.ContentStatusActive,
	}
}

func strPtr(s string) *string { return &s }

func TestExecutor_UpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("stores trimmed profile", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().UpsertProfile(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *schema.Profile) error {
				assert.Equal(t, "user-1", p.ID)
				assert.Equal(t, "Viewer One", p.FullName)
				assert.Equal(t, domain.RoleViewer, p.Role)
				assert.Equal(t, testNow, p.UpdatedAt)
				return nil
			})

		resp, err := tm.executor.UpsertProfile(ctx, "user-1", dto.UpsertProfileRequest{
			Email:    "viewer@example.com",
			FullName: "  Viewer One ",
			Role:     domain.RoleViewer,
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", resp.ID)
	})

	t.Run("requires a user", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.executor.UpsertProfile(ctx, "", dto.UpsertProfileRequest{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestExecutor_CreateContent(t *testing.T) {
	ctx := context.Background()
	req := dto.CreateContentRequest{
		Title:                "My Video!",
		Platform:             domain.PlatformYouTube,
		ContentURL:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		PointsPerShare:       10,
		CampaignDurationDays: 30,
		Rewards: []dto.RewardInput{
			{Type: domain.RewardTypeDigital, Title: "Wallpaper", SharesRequired: 3},
		},
	}
	slugPattern := regexp.MustCompile(`^my-video-[a-z0-9]{6}$`)

	t.Run("creates active campaign with slug and end date", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		tm.store.EXPECT().CreateContent(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *schema.Content, rewards []schema.Reward) error {
				assert.Regexp(t, slugPattern, c.Slug)
				assert.Equal(t, domain.ContentStatusActive, c.Status)
				assert.Equal(t, testNow.Add(30*24*time.Hour), c.EndsAt)
				require.Len(t, rewards, 1)
				assert.Equal(t, "Wallpaper", rewards[0].Title)
				c.ID = "content-1"
				return nil
			})

		resp, err := tm.executor.CreateContent(ctx, "creator-1", req)
		require.NoError(t, err)
		assert.Equal(t, "content-1", resp.ID)
		assert.Equal(t, "creator-1", resp.CreatorID)
	})

	t.Run("retries slug collisions", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		gomock.InOrder(
			tm.store.EXPECT().CreateContent(ctx, gomock.Any(), gomock.Any()).Return(store.ErrDuplicateKey),
			tm.store.EXPECT().CreateContent(ctx, gomock.Any(), gomock.Any()).Return(nil),
		)

		_, err := tm.executor.CreateContent(ctx, "creator-1", req)
		require.NoError(t, err)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		tm.store.EXPECT().CreateContent(ctx, gomock.Any(), gomock.Any()).Return(store.ErrDuplicateKey).Times(3)

		_, err := tm.executor.CreateContent(ctx, "creator-1", req)
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	})

	t.Run("viewers cannot create content", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)

		_, err := tm.executor.CreateContent(ctx, "viewer-1", req)
		assert.ErrorIs(t, err, domain.ErrNotCreator)
	})

	t.Run("missing profile is not a creator", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetProfile(ctx, "ghost").Return(nil, nil)

		_, err := tm.executor.CreateContent(ctx, "ghost", req)
		assert.ErrorIs(t, err, domain.ErrNotCreator)
	})
}

func TestExecutor_GetContentBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("active content", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetContentBySlug(ctx, "my-video-abc123").Return(activeContent(), nil)

		resp, err := tm.executor.GetContentBySlug(ctx, "my-video-abc123")
		require.NoError(t, err)
		assert.Equal(t, "content-1", resp.ID)
	})

	t.Run("paused content is hidden", func(t *testing.T) {
		tm := setupTestExecutor(t)
		content := activeContent()
		content.Status = domain.ContentStatusPaused
		tm.store.EXPECT().GetContentBySlug(ctx, "my-video-abc123").Return(content, nil)

		_, err := tm.executor.GetContentBySlug(ctx, "my-video-abc123")
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})

	t.Run("unknown slug", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetContentBySlug(ctx, "nope").Return(nil, nil)

		_, err := tm.executor.GetContentBySlug(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})
}

func TestExecutor_UpdateContentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and notifies viewers", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.store.EXPECT().UpdateContentStatus(ctx, "content-1", domain.ContentStatusPaused, testNow).Return(nil)
		tm.store.EXPECT().ListViewerIDsByContent(ctx, "content-1").Return([]string{"viewer-1", "viewer-2"}, nil)
		tm.notifier.EXPECT().NotifyCampaignUpdate(ctx, "viewer-1", "My Video", "This campaign is now paused.").
			Return(&schema.Notification{}, nil)
		tm.notifier.EXPECT().NotifyCampaignUpdate(ctx, "viewer-2", "My Video", "This campaign is now paused.").
			Return(nil, errors.New("insert failed"))

		resp, err := tm.executor.UpdateContentStatus(ctx, "creator-1", "content-1",
			dto.UpdateContentStatusRequest{Status: domain.ContentStatusPaused})
		require.NoError(t, err)
		assert.Equal(t, domain.ContentStatusPaused, resp.Status)
	})

	t.Run("custom message is forwarded", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.store.EXPECT().UpdateContentStatus(ctx, "content-1", domain.ContentStatusCompleted, testNow).Return(nil)
		tm.store.EXPECT().ListViewerIDsByContent(ctx, "content-1").Return([]string{"viewer-1"}, nil)
		tm.notifier.EXPECT().NotifyCampaignUpdate(ctx, "viewer-1", "My Video", "Thanks everyone!").
			Return(&schema.Notification{}, nil)

		_, err := tm.executor.UpdateContentStatus(ctx, "creator-1", "content-1",
			dto.UpdateContentStatusRequest{Status: domain.ContentStatusCompleted, Message: " Thanks everyone! "})
		require.NoError(t, err)
	})

	t.Run("unchanged status is a no-op", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)

		resp, err := tm.executor.UpdateContentStatus(ctx, "creator-1", "content-1",
			dto.UpdateContentStatusRequest{Status: domain.ContentStatusActive})
		require.NoError(t, err)
		assert.Equal(t, domain.ContentStatusActive, resp.Status)
	})

	t.Run("other creators cannot see the campaign", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-2", domain.RoleCreator)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)

		_, err := tm.executor.UpdateContentStatus(ctx, "creator-2", "content-1",
			dto.UpdateContentStatusRequest{Status: domain.ContentStatusPaused})
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	})
}

func TestExecutor_GetContentAnalytics(t *testing.T) {
	ctx := context.Background()
	tm := setupTestExecutor(t)
	tm.expectRole("creator-1", domain.RoleCreator)
	tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
	tm.store.EXPECT().GetContentLinkStats(ctx, "content-1").Return([]store.LinkStats{
		{ReferralLinkID: "link-1", Clicks: 10, Shares: 3, VerifiedShares: 2, EngagementTotal: 500},
		{ReferralLinkID: "link-2", Clicks: 5, Shares: 1, VerifiedShares: 0},
	}, nil)

	resp, err := tm.executor.GetContentAnalytics(ctx, "creator-1", "content-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalLinks)
	assert.Equal(t, int64(15), resp.TotalClicks)
	assert.Equal(t, int64(4), resp.TotalShares)
	assert.Equal(t, int64(2), resp.VerifiedShares)
	assert.Equal(t, int64(500), resp.TotalEngagement)
	assert.Len(t, resp.Links, 2)
}

func TestExecutor_GenerateReferralLink(t *testing.T) {
	ctx := context.Background()
	metadata := domain.RequestMetadata{IP: "203.0.113.1", UserAgent: "Mozilla/5.0"}
	req := dto.GenerateReferralLinkRequest{ContentID: "content-1", DeviceFingerprint: "fp-1"}

	t.Run("creates a link on first request", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.scorer.EXPECT().ValidateUser(ctx, "viewer-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, m domain.RequestMetadata) antibot.Result {
				assert.Equal(t, "fp-1", m.DeviceFingerprint)
				return antibot.Result{IsValid: true}
			})
		tm.store.EXPECT().GetReferralLink(ctx, "content-1", "viewer-1").Return(nil, nil)
		tm.codes.EXPECT().Generate().Return("Code123456789012", nil)
		tm.store.EXPECT().CreateReferralLink(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, link *schema.ReferralLink) (bool, error) {
				link.ID = "link-1"
				return true, nil
			})

		resp, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		require.NoError(t, err)
		assert.Equal(t, "link-1", resp.ID)
		assert.Equal(t, "https://creatorchain.app/share/Code123456789012", resp.URL)
		assert.Equal(t, "My Video", resp.ContentTitle)
	})

	t.Run("returns the existing link", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.scorer.EXPECT().ValidateUser(ctx, "viewer-1", gomock.Any()).Return(antibot.Result{IsValid: true})
		tm.store.EXPECT().GetReferralLink(ctx, "content-1", "viewer-1").
			Return(&schema.ReferralLink{ID: "link-1", Code: "existing"}, nil)

		resp, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		require.NoError(t, err)
		assert.Equal(t, "existing", resp.Code)
	})

	t.Run("concurrent insert returns the winner", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.scorer.EXPECT().ValidateUser(ctx, "viewer-1", gomock.Any()).Return(antibot.Result{IsValid: true})
		gomock.InOrder(
			tm.store.EXPECT().GetReferralLink(ctx, "content-1", "viewer-1").Return(nil, nil),
			tm.store.EXPECT().GetReferralLink(ctx, "content-1", "viewer-1").
				Return(&schema.ReferralLink{ID: "link-9", Code: "winner"}, nil),
		)
		tm.codes.EXPECT().Generate().Return("loser", nil)
		tm.store.EXPECT().CreateReferralLink(ctx, gomock.Any()).Return(false, nil)

		resp, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		require.NoError(t, err)
		assert.Equal(t, "link-9", resp.ID)
	})

	t.Run("retries code collisions", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.scorer.EXPECT().ValidateUser(ctx, "viewer-1", gomock.Any()).Return(antibot.Result{IsValid: true})
		tm.store.EXPECT().GetReferralLink(ctx, "content-1", "viewer-1").Return(nil, nil)
		tm.codes.EXPECT().Generate().Return("code-a", nil)
		tm.codes.EXPECT().Generate().Return("code-b", nil)
		gomock.InOrder(
			tm.store.EXPECT().CreateReferralLink(ctx, gomock.Any()).Return(false, store.ErrDuplicateKey),
			tm.store.EXPECT().CreateReferralLink(ctx, gomock.Any()).Return(true, nil),
		)

		resp, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		require.NoError(t, err)
		assert.Equal(t, "code-b", resp.Code)
	})

	t.Run("flagged viewer is rejected", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(activeContent(), nil)
		tm.scorer.EXPECT().ValidateUser(ctx, "viewer-1", gomock.Any()).Return(antibot.Result{IsValid: false, RiskScore: 90})

		_, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		assert.ErrorIs(t, err, domain.ErrAccountFlagged)
	})

	t.Run("inactive content", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("viewer-1", domain.RoleViewer)
		content := activeContent()
		content.Status = domain.ContentStatusCompleted
		tm.store.EXPECT().GetContentByID(ctx, "content-1").Return(content, nil)

		_, err := tm.executor.GenerateReferralLink(ctx, "viewer-1", req, metadata)
		assert.ErrorIs(t, err, domain.ErrContentInactive)
	})

	t.Run("creators cannot issue links", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.expectRole("creator-1", domain.RoleCreator)

		_, err := tm.executor.GenerateReferralLink(ctx, "creator-1", req, metadata)
		assert.ErrorIs(t, err, domain.ErrNotViewer)
	})
}

func TestExecutor_TrackClick(t *testing.T) {
	ctx := context.Background()
	metadata := domain.RequestMetadata{IP: "203.0.113.1"}

	t.Run("returns target", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.tracker.EXPECT().Track(ctx, "abc", metadata).
			Return(&tracking.Click{TargetURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, nil)

		target, err := tm.executor.TrackClick(ctx, "abc", metadata)
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", target)
	})

	t.Run("unknown link", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.tracker.EXPECT().Track(ctx, "abc", metadata).Return(nil, domain.ErrLinkNotFound)

		_, err := tm.executor.TrackClick(ctx, "abc", metadata)
		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})
}

func TestExecutor_RecordShare(t *testing.T) {
	ctx := context.Background()
	link := &schema.ReferralLink{ID: "link-1", ViewerID: "viewer-1", ContentID: "content-1"}

	t.Run("youtube share is pending and enqueued", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformYouTube, "https://youtu.be/dQw4w9WgXcQ").Return(nil, nil)
		tm.scorer.EXPECT().CheckShareRateLimit(ctx, "viewer-1").Return(true)
		tm.store.EXPECT().CreateSocialShare(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *schema.SocialShare) (*schema.SocialShare, bool, error) {
				assert.Equal(t, domain.ShareStatusPending, s.Status)
				require.NotNil(t, s.VideoID)
				assert.Equal(t, "dQw4w9WgXcQ", *s.VideoID)
				assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", s.ShareRef)
				s.ID = "share-1"
				return s, true, nil
			})
		tm.orchestrator.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), "share-1").
			DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
				assert.Equal(t, "verify-share-share-1", options.ID)
				assert.Equal(t, "verification", options.TaskQueue)
				return nil, nil
			})

		resp, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareURL:       strPtr("https://youtu.be/dQw4w9WgXcQ"),
		})
		require.NoError(t, err)
		assert.Equal(t, "share-1", resp.ID)
		assert.False(t, resp.Duplicate)
	})

	t.Run("non-youtube share goes to manual review", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformTikTok, "7300000000000000000").Return(nil, nil)
		tm.scorer.EXPECT().CheckShareRateLimit(ctx, "viewer-1").Return(true)
		tm.store.EXPECT().CreateSocialShare(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *schema.SocialShare) (*schema.SocialShare, bool, error) {
				assert.Equal(t, domain.ShareStatusManualReview, s.Status)
				assert.Nil(t, s.VideoID)
				s.ID = "share-2"
				return s, true, nil
			})

		resp, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformTikTok,
			ShareID:        strPtr("7300000000000000000"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ShareStatusManualReview, resp.Status)
	})

	t.Run("resubmission at the rate cap returns the original share", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformYouTube, "dQw4w9WgXcQ").
			Return(&schema.SocialShare{ID: "share-1", Status: domain.ShareStatusPending}, nil)

		resp, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareID:        strPtr("dQw4w9WgXcQ"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Duplicate)
		assert.Equal(t, "share-1", resp.ID)
	})

	t.Run("duplicate that wins the insert race returns the original share", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformYouTube, "dQw4w9WgXcQ").Return(nil, nil)
		tm.scorer.EXPECT().CheckShareRateLimit(ctx, "viewer-1").Return(true)
		tm.store.EXPECT().CreateSocialShare(ctx, gomock.Any()).
			Return(&schema.SocialShare{ID: "share-1", Status: domain.ShareStatusVerified}, false, nil)

		resp, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareID:        strPtr("dQw4w9WgXcQ"),
		})
		require.NoError(t, err)
		assert.True(t, resp.Duplicate)
		assert.Equal(t, "share-1", resp.ID)
	})

	t.Run("enqueue failure still records the share", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformYouTube, "dQw4w9WgXcQ").Return(nil, nil)
		tm.scorer.EXPECT().CheckShareRateLimit(ctx, "viewer-1").Return(true)
		tm.store.EXPECT().CreateSocialShare(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *schema.SocialShare) (*schema.SocialShare, bool, error) {
				s.ID = "share-3"
				return s, true, nil
			})
		tm.orchestrator.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), "share-3").
			Return(nil, errors.New("temporal unavailable"))

		resp, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareID:        strPtr("dQw4w9WgXcQ"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ShareStatusPending, resp.Status)
	})

	t.Run("someone else's link", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)

		_, err := tm.executor.RecordShare(ctx, "viewer-2", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareID:        strPtr("dQw4w9WgXcQ"),
		})
		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})

	t.Run("rate limited", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetReferralLinkByID(ctx, "link-1").Return(link, nil)
		tm.store.EXPECT().GetSocialShareByRef(ctx, "link-1", domain.PlatformYouTube, "dQw4w9WgXcQ").Return(nil, nil)
		tm.scorer.EXPECT().CheckShareRateLimit(ctx, "viewer-1").Return(false)

		_, err := tm.executor.RecordShare(ctx, "viewer-1", dto.RecordShareRequest{
			ReferralLinkID: "link-1",
			Platform:       domain.PlatformYouTube,
			ShareID:        strPtr("dQw4w9WgXcQ"),
		})
		assert.ErrorIs(t, err, domain.ErrShareRateLimited)
	})
}

func TestExecutor_GetViewerDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates stats links and rewards", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetUserStats(ctx, "viewer-1").
			Return(&schema.UserStats{UserID: "viewer-1", TotalPoints: 120, TotalShares: 12}, nil)
		tm.store.EXPECT().ListReferralLinksByViewer(ctx, "viewer-1").
			Return([]schema.ReferralLink{{ID: "link-1"}}, nil)
		tm.store.EXPECT().ListViewerRewards(ctx, "viewer-1").
			Return([]schema.ViewerReward{{ID: "vr-1", Reward: &schema.Reward{Title: "Wallpaper"}}}, nil)

		resp, err := tm.executor.GetViewerDashboard(ctx, "viewer-1")
		require.NoError(t, err)
		assert.Equal(t, int64(120), resp.Stats.TotalPoints)
		assert.Equal(t, 12, resp.Stats.TotalShares)
		assert.Len(t, resp.Links, 1)
		require.Len(t, resp.Rewards, 1)
		assert.Equal(t, "Wallpaper", resp.Rewards[0].Reward.Title)
	})

	t.Run("new viewer has zero stats", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.store.EXPECT().GetUserStats(ctx, "viewer-1").Return(nil, nil)
		tm.store.EXPECT().ListReferralLinksByViewer(ctx, "viewer-1").Return(nil, nil)
		tm.store.EXPECT().ListViewerRewards(ctx, "viewer-1").Return(nil, nil)

		resp, err := tm.executor.GetViewerDashboard(ctx, "viewer-1")
		require.NoError(t, err)
		assert.Zero(t, resp.Stats.TotalPoints)
		assert.NotNil(t, resp.Links)
		assert.NotNil(t, resp.Rewards)
	})
}

func TestExecutor_Notifications(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.notifier.EXPECT().List(ctx, "user-1", 20).
			Return([]schema.Notification{{ID: "n-1", Type: domain.NotificationTypeRewardEarned}}, nil)

		resp, err := tm.executor.ListNotifications(ctx, "user-1", 20)
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "n-1", resp.Items[0].ID)
	})

	t.Run("mark read passes not found through", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.notifier.EXPECT().MarkRead(ctx, "user-1", "n-1").Return(domain.ErrNotificationNotFound)

		err := tm.executor.MarkNotificationRead(ctx, "user-1", "n-1")
		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})

	t.Run("mark read wraps storage errors", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.notifier.EXPECT().MarkRead(ctx, "user-1", "n-1").Return(errors.New("db down"))

		err := tm.executor.MarkNotificationRead(ctx, "user-1", "n-1")
		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	})

	t.Run("unread count and mark all", func(t *testing.T) {
		tm := setupTestExecutor(t)
		tm.notifier.EXPECT().UnreadCount(ctx, "user-1").Return(int64(4), nil)
		tm.notifier.EXPECT().MarkAllRead(ctx, "user-1").Return(int64(4), nil)

		count, err := tm.executor.GetUnreadCount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), count.Count)

		updated, err := tm.executor.MarkAllNotificationsRead(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, int64(4), updated.Updated)
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		tm := setupTestExecutor(t)

		_, err := tm.executor.ListNotifications(ctx, "", 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestExecutor_GetFraudScore(t *testing.T) {
	ctx := context.Background()
	tm := setupTestExecutor(t)
	tm.scorer.EXPECT().FraudScore(ctx, "user-1").Return(35)

	resp, err := tm.executor.GetFraudScore(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 35, resp.Score)
}
