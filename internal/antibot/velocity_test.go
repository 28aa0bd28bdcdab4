package antibot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/antibot"
	"github.com/creatorchain/creatorchain/internal/mocks"
)

func TestRedisVelocityCounter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("record adds a unique member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := mocks.NewMockRedisClient(ctrl)
		counter := antibot.NewRedisVelocityCounter(redis, time.Minute)

		var members []string
		redis.EXPECT().
			SlidingWindowCount(ctx, "antibot:clicks:203.0.113.1", gomock.Any(), now, time.Minute).
			DoAndReturn(func(_ context.Context, _ string, member string, _ time.Time, _ time.Duration) (int64, error) {
				members = append(members, member)
				return int64(len(members)), nil
			}).Times(2)

		require.NoError(t, counter.RecordClick(ctx, "203.0.113.1", now))
		require.NoError(t, counter.RecordClick(ctx, "203.0.113.1", now))
		require.Len(t, members, 2)
		assert.NotEqual(t, members[0], members[1])
	})

	t.Run("count reads the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := mocks.NewMockRedisClient(ctrl)
		counter := antibot.NewRedisVelocityCounter(redis, time.Minute)

		since := now.Add(-time.Minute)
		redis.EXPECT().CountSince(ctx, "antibot:clicks:203.0.113.1", since).Return(int64(12), nil)

		count, err := counter.CountClicks(ctx, "203.0.113.1", since)
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := mocks.NewMockRedisClient(ctrl)
		counter := antibot.NewRedisVelocityCounter(redis, time.Minute)

		redis.EXPECT().CountSince(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		_, err := counter.CountClicks(ctx, "203.0.113.1", now)
		assert.Error(t, err)
	})
}

func TestStoreVelocityCounter(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	counter := antibot.NewStoreVelocityCounter(store)

	since := time.Date(2025, 3, 1, 9, 59, 0, 0, time.UTC)
	store.EXPECT().CountClicksByIPSince(ctx, "203.0.113.1", since).Return(int64(3), nil)

	require.NoError(t, counter.RecordClick(ctx, "203.0.113.1", since))
	count, err := counter.CountClicks(ctx, "203.0.113.1", since)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
