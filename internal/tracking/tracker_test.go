package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/mocks"
	"github.com/creatorchain/creatorchain/internal/store/schema"
	"github.com/creatorchain/creatorchain/internal/tracking"
)

type testTrackerMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	velocity *mocks.MockVelocityCounter
	clock    *mocks.MockClock
	tracker  tracking.Tracker
}

func setupTestTracker(t *testing.T) *testTrackerMocks {
	ctrl := gomock.NewController(t)
	tm := &testTrackerMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		velocity: mocks.NewMockVelocityCounter(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	tm.tracker = tracking.NewTracker(tm.store, tm.velocity, tm.clock)
	return tm
}

func testLink() *schema.ReferralLink {
	return &schema.ReferralLink{
		ID:        "link-1",
		ContentID: "content-1",
		Code:      "abc123",
		Content: &schema.Content{
			ID:         "content-1",
			ContentURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
	}
}

func TestTracker_Track(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	metadata := domain.RequestMetadata{
		IP:        "203.0.113.1",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile/15E148 Safari/604.1",
		Referer:   "https://twitter.com",
	}

	t.Run("records click and returns target", func(t *testing.T) {
		tm := setupTestTracker(t)
		tm.store.EXPECT().GetReferralLinkByCode(ctx, "abc123").Return(testLink(), nil)
		tm.clock.EXPECT().Now().Return(now)
		tm.store.EXPECT().RecordLinkClick(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, click *schema.LinkClick) error {
				assert.Equal(t, "link-1", click.ReferralLinkID)
				assert.Equal(t, domain.DeviceTypeMobile, click.DeviceType)
				assert.Equal(t, domain.BrowserSafari, click.Browser)
				assert.Equal(t, "https://twitter.com", click.Referer)
				assert.Equal(t, now, click.ClickedAt)
				return nil
			})
		tm.store.EXPECT().IncrementLinkClicks(ctx, "link-1").Return(nil)
		tm.velocity.EXPECT().RecordClick(ctx, "203.0.113.1", now).Return(nil)

		click, err := tm.tracker.Track(ctx, "abc123", metadata)
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", click.TargetURL)
		assert.Equal(t, "content-1", click.ContentID)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		tm := setupTestTracker(t)
		tm.store.EXPECT().GetReferralLinkByCode(ctx, "missing").Return(nil, nil)

		click, err := tm.tracker.Track(ctx, "missing", metadata)
		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
		assert.Nil(t, click)
	})

	t.Run("empty code is not found without lookup", func(t *testing.T) {
		tm := setupTestTracker(t)

		_, err := tm.tracker.Track(ctx, "", metadata)
		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})

	t.Run("logging failures still redirect", func(t *testing.T) {
		tm := setupTestTracker(t)
		tm.store.EXPECT().GetReferralLinkByCode(ctx, "abc123").Return(testLink(), nil)
		tm.clock.EXPECT().Now().Return(now)
		tm.store.EXPECT().RecordLinkClick(ctx, gomock.Any()).Return(errors.New("connection reset"))
		tm.store.EXPECT().IncrementLinkClicks(ctx, "link-1").Return(errors.New("connection reset"))
		tm.velocity.EXPECT().RecordClick(ctx, "203.0.113.1", now).Return(errors.New("redis down"))

		click, err := tm.tracker.Track(ctx, "abc123", metadata)
		require.NoError(t, err)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", click.TargetURL)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		tm := setupTestTracker(t)
		tm.store.EXPECT().GetReferralLinkByCode(ctx, "abc123").Return(nil, errors.New("db down"))

		_, err := tm.tracker.Track(ctx, "abc123", metadata)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrLinkNotFound)
	})

	t.Run("missing ip skips velocity", func(t *testing.T) {
		tm := setupTestTracker(t)
		tm.store.EXPECT().GetReferralLinkByCode(ctx, "abc123").Return(testLink(), nil)
		tm.clock.EXPECT().Now().Return(now)
		tm.store.EXPECT().RecordLinkClick(ctx, gomock.Any()).Return(nil)
		tm.store.EXPECT().IncrementLinkClicks(ctx, "link-1").Return(nil)

		_, err := tm.tracker.Track(ctx, "abc123", domain.RequestMetadata{UserAgent: "Mozilla/5.0"})
		require.NoError(t, err)
	})
}
