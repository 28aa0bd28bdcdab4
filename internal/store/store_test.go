package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func createTestProfile(t *testing.T, store Store, role domain.Role) *schema.Profile {
	t.Helper()
	id := uuid.New().String()
	profile := &schema.Profile{
		ID:       id,
		Email:    fmt.Sprintf("%s@example.com", id[:8]),
		FullName: "Test " + string(role),
		Role:     role,
	}
	require.NoError(t, store.UpsertProfile(context.Background(), profile))
	return profile
}

func buildTestContent(creatorID string, pointsPerShare int) *schema.Content {
	id := uuid.New().String()
	return &schema.Content{
		CreatorID:            creatorID,
		Title:                "Launch video",
		Description:          "Share the launch",
		Platform:             domain.PlatformYouTube,
		ContentURL:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Slug:                 "launch-video-" + id[:6],
		PointsPerShare:       pointsPerShare,
		CampaignDurationDays: 30,
		EndsAt:               time.Now().Add(30 * 24 * time.Hour),
		Status:               domain.ContentStatusActive,
	}
}

func createTestContent(t *testing.T, store Store, creatorID string, pointsPerShare int, rewards ...schema.Reward) *schema.Content {
	t.Helper()
	content := buildTestContent(creatorID, pointsPerShare)
	require.NoError(t, store.CreateContent(context.Background(), content, rewards))
	return content
}

func createTestLink(t *testing.T, store Store, contentID, viewerID string) *schema.ReferralLink {
	t.Helper()
	code := uuid.New().String()[:16]
	link := &schema.ReferralLink{
		ContentID: contentID,
		ViewerID:  viewerID,
		Code:      code,
		URL:       "http://localhost:3000/share/" + code,
	}
	created, err := store.CreateReferralLink(context.Background(), link)
	require.NoError(t, err)
	require.True(t, created)
	return link
}

func createTestShare(t *testing.T, store Store, link *schema.ReferralLink, ref string) *schema.SocialShare {
	t.Helper()
	share, created, err := store.CreateSocialShare(context.Background(), &schema.SocialShare{
		ReferralLinkID: link.ID,
		ViewerID:       link.ViewerID,
		Platform:       domain.PlatformYouTube,
		ShareURL:       &ref,
		ShareRef:       ref,
		Status:         domain.ShareStatusPending,
	})
	require.NoError(t, err)
	require.True(t, created)
	return share
}

// =============================================================================
// Test: Profiles
// =============================================================================

func testProfiles(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert creates and updates profile", func(t *testing.T) {
		profile := createTestProfile(t, store, domain.RoleViewer)

		got, err := store.GetProfile(ctx, profile.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.RoleViewer, got.Role)

		profile.FullName = "Renamed"
		profile.Role = domain.RoleCreator
		require.NoError(t, store.UpsertProfile(ctx, profile))

		got, err = store.GetProfile(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.FullName)
		assert.Equal(t, domain.RoleCreator, got.Role)
	})

	t.Run("get non-existent profile returns nil", func(t *testing.T) {
		got, err := store.GetProfile(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Content
// =============================================================================

func testContent(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create content with rewards", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		quantity := 10
		content := createTestContent(t, store, creator.ID, 15,
			schema.Reward{Type: domain.RewardTypeDigital, Title: "Wallpaper", SharesRequired: 5},
			schema.Reward{Type: domain.RewardTypePhysical, Title: "Poster", SharesRequired: 1, Quantity: &quantity},
		)

		got, err := store.GetContentByID(ctx, content.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 15, got.PointsPerShare)
		require.Len(t, got.Rewards, 2)
		assert.Equal(t, "Poster", got.Rewards[0].Title, "rewards are ordered by threshold")
		assert.Equal(t, content.ID, got.Rewards[0].ContentID)

		bySlug, err := store.GetContentBySlug(ctx, content.Slug)
		require.NoError(t, err)
		require.NotNil(t, bySlug)
		assert.Equal(t, content.ID, bySlug.ID)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		content := createTestContent(t, store, creator.ID, 5)

		dup := buildTestContent(creator.ID, 5)
		dup.Slug = content.Slug
		err := store.CreateContent(ctx, dup, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("list and status transitions", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		first := createTestContent(t, store, creator.ID, 5)
		second := createTestContent(t, store, creator.ID, 5)

		contents, err := store.ListContentByCreator(ctx, creator.ID)
		require.NoError(t, err)
		require.Len(t, contents, 2)
		assert.Equal(t, second.ID, contents[0].ID, "newest first")

		require.NoError(t, store.UpdateContentStatus(ctx, first.ID, domain.ContentStatusPaused, time.Now()))

		active, err := store.ListActiveContent(ctx, 100)
		require.NoError(t, err)
		ids := make([]string, 0, len(active))
		for _, c := range active {
			ids = append(ids, c.ID)
		}
		assert.Contains(t, ids, second.ID)
		assert.NotContains(t, ids, first.ID)
	})

	t.Run("update status of unknown content", func(t *testing.T) {
		err := store.UpdateContentStatus(ctx, uuid.New().String(), domain.ContentStatusPaused, time.Now())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// =============================================================================
// Test: Referral links and clicks
// =============================================================================

func testReferralLinks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("one link per content and viewer", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)

		created, err := store.CreateReferralLink(ctx, &schema.ReferralLink{
			ContentID: content.ID,
			ViewerID:  viewer.ID,
			Code:      "anothercode00001",
			URL:       "http://localhost:3000/share/anothercode00001",
		})
		require.NoError(t, err)
		assert.False(t, created)

		got, err := store.GetReferralLink(ctx, content.ID, viewer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, link.Code, got.Code)

		viewerIDs, err := store.ListViewerIDsByContent(ctx, content.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{viewer.ID}, viewerIDs)
	})

	t.Run("code collision returns duplicate key", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		other := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)

		_, err := store.CreateReferralLink(ctx, &schema.ReferralLink{
			ContentID: content.ID,
			ViewerID:  other.ID,
			Code:      link.Code,
			URL:       link.URL,
		})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("get by code preloads content", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)

		got, err := store.GetReferralLinkByCode(ctx, link.Code)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Content)
		assert.Equal(t, content.ContentURL, got.Content.ContentURL)

		missing, err := store.GetReferralLinkByCode(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("clicks increment and are logged", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)

		for range 3 {
			require.NoError(t, store.IncrementLinkClicks(ctx, link.ID))
			require.NoError(t, store.RecordLinkClick(ctx, &schema.LinkClick{
				ReferralLinkID: link.ID,
				IPAddress:      "203.0.113.7",
				UserAgent:      "Mozilla/5.0 Chrome/120",
				DeviceType:     domain.DeviceTypeDesktop,
				Browser:        domain.BrowserChrome,
				ClickedAt:      time.Now(),
			}))
		}

		got, err := store.GetReferralLinkByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Clicks)

		count, err := store.CountClicksByIPSince(ctx, "203.0.113.7", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = store.CountClicksByIPSince(ctx, "203.0.113.7", time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("increment unknown link", func(t *testing.T) {
		err := store.IncrementLinkClicks(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// =============================================================================
// Test: Social shares
// =============================================================================

func testSocialShares(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("duplicate share returns existing row", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)
		share := createTestShare(t, store, link, "https://youtu.be/jNQXAC9IVRw")

		ref := "https://youtu.be/jNQXAC9IVRw"
		dup, created, err := store.CreateSocialShare(ctx, &schema.SocialShare{
			ReferralLinkID: link.ID,
			ViewerID:       viewer.ID,
			Platform:       domain.PlatformYouTube,
			ShareURL:       &ref,
			ShareRef:       ref,
			Status:         domain.ShareStatusPending,
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, share.ID, dup.ID)

		found, err := store.GetSocialShareByRef(ctx, link.ID, domain.PlatformYouTube, ref)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, share.ID, found.ID)

		missing, err := store.GetSocialShareByRef(ctx, link.ID, domain.PlatformTikTok, ref)
		require.NoError(t, err)
		assert.Nil(t, missing)

		count, err := store.CountSharesByViewerSince(ctx, viewer.ID, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("pending shares are listed oldest first", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)
		first := createTestShare(t, store, link, "https://youtu.be/aaaaaaaaaaa")
		second := createTestShare(t, store, link, "https://youtu.be/bbbbbbbbbbb")

		shares, err := store.ListPendingShares(ctx, domain.PlatformYouTube, time.Now().Add(time.Minute), 1000)
		require.NoError(t, err)
		ids := make([]string, 0, len(shares))
		for _, s := range shares {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, first.ID)
		assert.Contains(t, ids, second.ID)

		failedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		require.NoError(t, store.MarkShareFailed(ctx, first.ID, "video not found", failedAt))
		got, err := store.GetSocialShareByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ShareStatusFailed, got.Status)
		assert.True(t, failedAt.Equal(got.UpdatedAt), "failure time comes from the caller")
		assert.False(t, got.Verified)
		require.NotNil(t, got.FailureReason)
		assert.Equal(t, "video not found", *got.FailureReason)
	})

	t.Run("complete verification credits exactly once", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 15)
		link := createTestLink(t, store, content.ID, viewer.ID)
		share := createTestShare(t, store, link, "https://youtu.be/jNQXAC9IVRw")

		input := CompleteShareVerificationInput{
			ShareID:         share.ID,
			EngagementScore: 1600,
			VerifiedAt:      time.Now().UTC(),
		}
		result, err := store.CompleteShareVerification(ctx, input)
		require.NoError(t, err)
		assert.True(t, result.Transitioned)
		assert.Equal(t, 15, result.PointsEarned)
		assert.Equal(t, int64(15), result.TotalPoints)
		assert.Equal(t, 1, result.TotalShares)
		assert.Equal(t, content.ID, result.ContentID)

		again, err := store.CompleteShareVerification(ctx, input)
		require.NoError(t, err)
		assert.False(t, again.Transitioned)

		stats, err := store.GetUserStats(ctx, viewer.ID)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(15), stats.TotalPoints)

		got, err := store.GetSocialShareByID(ctx, share.ID)
		require.NoError(t, err)
		assert.True(t, got.Verified)
		assert.Equal(t, domain.ShareStatusVerified, got.Status)
		require.NotNil(t, got.EngagementScore)
		assert.Equal(t, int64(1600), *got.EngagementScore)

		updatedLink, err := store.GetReferralLinkByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, updatedLink.PointsEarned)
		assert.Equal(t, 1, updatedLink.ShareCount)
		assert.True(t, updatedLink.IsVerified)

		verified, err := store.CountVerifiedSharesForContent(ctx, viewer.ID, content.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), verified)
	})

	t.Run("failed share cannot be marked failed after verification", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewer := createTestProfile(t, store, domain.RoleViewer)
		content := createTestContent(t, store, creator.ID, 5)
		link := createTestLink(t, store, content.ID, viewer.ID)
		share := createTestShare(t, store, link, "https://youtu.be/ccccccccccc")

		_, err := store.CompleteShareVerification(ctx, CompleteShareVerificationInput{
			ShareID:    share.ID,
			VerifiedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		require.NoError(t, store.MarkShareFailed(ctx, share.ID, "late failure", time.Now()))

		got, err := store.GetSocialShareByID(ctx, share.ID)
		require.NoError(t, err)
		assert.True(t, got.Verified)
		assert.Equal(t, domain.ShareStatusVerified, got.Status)
	})

	t.Run("complete verification of unknown share", func(t *testing.T) {
		_, err := store.CompleteShareVerification(ctx, CompleteShareVerificationInput{
			ShareID:    uuid.New().String(),
			VerifiedAt: time.Now(),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// =============================================================================
// Test: Fraud detection
// =============================================================================

func testFraudEvents(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("fingerprint reuse and average score", func(t *testing.T) {
		userA := uuid.New().String()
		userB := uuid.New().String()
		fingerprint := "fp-" + userA[:8]

		for _, score := range []int{20, 70} {
			require.NoError(t, store.CreateFraudEvent(ctx, &schema.FraudDetectionEvent{
				UserID:            userA,
				EventType:         domain.FraudEventTypeUserValidation,
				RiskScore:         score,
				Flags:             datatypes.JSON(`["suspicious_ip"]`),
				IPAddress:         "10.0.0.1",
				DeviceFingerprint: &fingerprint,
				CreatedAt:         time.Now(),
			}))
		}

		used, err := store.IsFingerprintUsedByOtherUser(ctx, fingerprint, userB, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.True(t, used)

		used, err = store.IsFingerprintUsedByOtherUser(ctx, fingerprint, userA, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.False(t, used)

		avg, err := store.GetAverageRiskScoreSince(ctx, userA, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.InDelta(t, 45.0, avg, 0.001)

		avg, err = store.GetAverageRiskScoreSince(ctx, userB, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
	})
}

// =============================================================================
// Test: Rewards
// =============================================================================

func testViewerRewards(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("grant is idempotent and respects quantity", func(t *testing.T) {
		creator := createTestProfile(t, store, domain.RoleCreator)
		viewerA := createTestProfile(t, store, domain.RoleViewer)
		viewerB := createTestProfile(t, store, domain.RoleViewer)
		quantity := 1
		content := createTestContent(t, store, creator.ID, 5,
			schema.Reward{Type: domain.RewardTypePhysical, Title: "Signed poster", SharesRequired: 1, Quantity: &quantity},
		)
		reward := &content.Rewards[0]
		earnedAt := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)

		granted, err := store.GrantViewerReward(ctx, viewerA.ID, reward, earnedAt)
		require.NoError(t, err)
		assert.True(t, granted)

		granted, err = store.GrantViewerReward(ctx, viewerA.ID, reward, earnedAt)
		require.NoError(t, err)
		assert.False(t, granted)

		granted, err = store.GrantViewerReward(ctx, viewerB.ID, reward, earnedAt)
		require.NoError(t, err)
		assert.False(t, granted, "quantity exhausted")

		rewards, err := store.ListViewerRewards(ctx, viewerA.ID)
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		require.NotNil(t, rewards[0].Reward)
		assert.Equal(t, "Signed poster", rewards[0].Reward.Title)
		assert.Equal(t, domain.ViewerRewardStatusPending, rewards[0].Status)
		assert.True(t, earnedAt.Equal(rewards[0].EarnedAt))
	})
}

// =============================================================================
// Test: Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("list, read and unread count", func(t *testing.T) {
		user := createTestProfile(t, store, domain.RoleViewer)
		other := createTestProfile(t, store, domain.RoleViewer)

		var ids []string
		for i := range 3 {
			n := &schema.Notification{
				UserID:    user.ID,
				Type:      domain.NotificationTypeShareVerified,
				Title:     "Share Verified",
				Message:   fmt.Sprintf("message %d", i),
				Data:      datatypes.JSON(`{"points":15}`),
				CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
			}
			created, err := store.CreateNotification(ctx, n)
			require.NoError(t, err)
			require.True(t, created)
			ids = append(ids, n.ID)
		}

		list, err := store.ListNotifications(ctx, user.ID, 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "message 2", list[0].Message)

		unread, err := store.CountUnreadNotifications(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), unread)

		ok, err := store.MarkNotificationRead(ctx, other.ID, ids[0])
		require.NoError(t, err)
		assert.False(t, ok, "other users cannot mark it")

		ok, err = store.MarkNotificationRead(ctx, user.ID, ids[0])
		require.NoError(t, err)
		assert.True(t, ok)

		count, err := store.MarkAllNotificationsRead(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		unread, err = store.CountUnreadNotifications(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)
	})

	t.Run("dedupe key stores one notification", func(t *testing.T) {
		user := createTestProfile(t, store, domain.RoleViewer)
		key := "share_verified:" + uuid.New().String()

		first := &schema.Notification{
			UserID:    user.ID,
			Type:      domain.NotificationTypeShareVerified,
			Title:     "Share Verified",
			Message:   "first delivery",
			DedupeKey: &key,
			CreatedAt: time.Now(),
		}
		created, err := store.CreateNotification(ctx, first)
		require.NoError(t, err)
		require.True(t, created)

		retry := &schema.Notification{
			UserID:    user.ID,
			Type:      domain.NotificationTypeShareVerified,
			Title:     "Share Verified",
			Message:   "retried delivery",
			DedupeKey: &key,
			CreatedAt: time.Now(),
		}
		created, err = store.CreateNotification(ctx, retry)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, retry.ID)
		assert.Equal(t, "first delivery", retry.Message)

		list, err := store.ListNotifications(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

// =============================================================================
// Test: Analytics
// =============================================================================

func testContentLinkStats(t *testing.T, store Store) {
	ctx := context.Background()

	creator := createTestProfile(t, store, domain.RoleCreator)
	viewerA := createTestProfile(t, store, domain.RoleViewer)
	viewerB := createTestProfile(t, store, domain.RoleViewer)
	content := createTestContent(t, store, creator.ID, 10)
	linkA := createTestLink(t, store, content.ID, viewerA.ID)
	linkB := createTestLink(t, store, content.ID, viewerB.ID)

	require.NoError(t, store.IncrementLinkClicks(ctx, linkA.ID))
	require.NoError(t, store.IncrementLinkClicks(ctx, linkA.ID))
	share := createTestShare(t, store, linkA, "https://youtu.be/ddddddddddd")
	createTestShare(t, store, linkA, "https://youtu.be/eeeeeeeeeee")
	_, err := store.CompleteShareVerification(ctx, CompleteShareVerificationInput{
		ShareID:         share.ID,
		EngagementScore: 500,
		VerifiedAt:      time.Now().UTC(),
	})
	require.NoError(t, err)

	stats, err := store.GetContentLinkStats(ctx, content.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, linkA.ID, stats[0].ReferralLinkID)
	assert.Equal(t, int64(2), stats[0].Clicks)
	assert.Equal(t, int64(2), stats[0].Shares)
	assert.Equal(t, int64(1), stats[0].VerifiedShares)
	assert.Equal(t, int64(500), stats[0].EngagementTotal)
	assert.Equal(t, 10, stats[0].PointsEarned)

	assert.Equal(t, linkB.ID, stats[1].ReferralLinkID)
	assert.Equal(t, int64(0), stats[1].Shares)
}

// =============================================================================
// Test: Connection pool settings
// =============================================================================

func testPoolSettingsNormalized(t *testing.T, _ Store) {
	assert.Equal(t, PoolSettings{
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}, PoolSettings{}.Normalized())

	got := PoolSettings{MaxOpenConns: 4, MaxIdleConns: 10, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Minute}.Normalized()
	assert.Equal(t, 4, got.MaxOpenConns)
	assert.Equal(t, 4, got.MaxIdleConns)
	assert.Equal(t, time.Minute, got.ConnMaxLifetime)
}

// RunStoreTests runs all store tests against the given store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Profiles", testProfiles},
		{"Content", testContent},
		{"ReferralLinks", testReferralLinks},
		{"SocialShares", testSocialShares},
		{"FraudEvents", testFraudEvents},
		{"ViewerRewards", testViewerRewards},
		{"Notifications", testNotifications},
		{"ContentLinkStats", testContentLinkStats},
		{"PoolSettingsNormalized", testPoolSettingsNormalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
