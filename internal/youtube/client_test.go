package youtube_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/mocks"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

// respondWith returns a DoAndReturn func decoding body into the result
func respondWith(t *testing.T, body string) func(context.Context, string, interface{}) error {
	return func(_ context.Context, url string, result interface{}) error {
		assert.True(t, strings.HasPrefix(url, "https://yt.test/v3/videos?"))
		assert.Contains(t, url, "part=statistics%2Csnippet")
		assert.Contains(t, url, "key=test-key")
		return json.Unmarshal([]byte(body), result)
	}
}

func TestClient_GetVideoStats(t *testing.T) {
	ctx := context.Background()

	t.Run("parses statistics and snippet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3/", "test-key")

		description := strings.Repeat("é", 250)
		body := `{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"Never Gonna Give You Up","channelTitle":"Rick Astley","description":"` +
			description + `","publishedAt":"2009-10-25T06:57:33Z"},"statistics":{"viewCount":"1000","likeCount":"50","commentCount":"20"}}]}`
		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, body))

		stats, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, "Never Gonna Give You Up", stats.Title)
		assert.Equal(t, "Rick Astley", stats.ChannelTitle)
		assert.Equal(t, int64(1000), stats.ViewCount)
		assert.Equal(t, int64(50), stats.LikeCount)
		assert.Equal(t, int64(20), stats.CommentCount)
		assert.Equal(t, int64(1600), stats.EngagementScore)
		assert.Equal(t, 200, len([]rune(stats.Description)))
		assert.Equal(t, time.Date(2009, 10, 25, 6, 57, 33, 0, time.UTC), stats.PublishedAt)
	})

	t.Run("hidden like count is zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		body := `{"items":[{"id":"dQw4w9WgXcQ","snippet":{"title":"t"},"statistics":{"viewCount":"10","commentCount":"1"}}]}`
		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, body))

		stats, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, int64(15), stats.EngagementScore)
	})

	t.Run("empty items is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, `{"items":[]}`))

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		assert.ErrorIs(t, err, youtube.ErrVideoNotFound)
		assert.True(t, youtube.IsPermanent(err))
	})

	t.Run("malformed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		body := `{"items":[{"id":"dQw4w9WgXcQ","statistics":{"viewCount":"lots"}}]}`
		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).DoAndReturn(respondWith(t, body))

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		body := []byte(`{"error":{"code":403,"message":"The request cannot be completed because you have exceeded your quota.","errors":[{"reason":"quotaExceeded"}]}}`)
		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(&adapter.HTTPStatusError{StatusCode: 403, Body: body})

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		assert.ErrorIs(t, err, youtube.ErrQuotaExceeded)
		assert.False(t, youtube.IsPermanent(err))
	})

	t.Run("bad request is rejected permanently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		body := []byte(`{"error":{"code":400,"message":"API key not valid.","errors":[{"reason":"badRequest"}]}}`)
		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(&adapter.HTTPStatusError{StatusCode: 400, Body: body})

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		assert.ErrorIs(t, err, youtube.ErrRequestRejected)
		assert.True(t, youtube.IsPermanent(err))
	})

	t.Run("transport error is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpClient := mocks.NewMockHTTPClient(ctrl)
		c := youtube.NewClient(httpClient, "https://yt.test/v3", "test-key")

		httpClient.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: i/o timeout"))

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		require.Error(t, err)
		assert.False(t, youtube.IsPermanent(err))
	})

	t.Run("missing api key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := youtube.NewClient(mocks.NewMockHTTPClient(ctrl), "", "")

		_, err := c.GetVideoStats(ctx, "dQw4w9WgXcQ")
		assert.ErrorIs(t, err, youtube.ErrMissingConfig)
	})

	t.Run("invalid video id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c := youtube.NewClient(mocks.NewMockHTTPClient(ctrl), "", "test-key")

		_, err := c.GetVideoStats(ctx, "not-an-id")
		assert.ErrorIs(t, err, youtube.ErrNoVideoID)
	})
}
