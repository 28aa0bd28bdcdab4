package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
)

const (
	// DEFAULT_BASE_URL is the YouTube Data API v3 endpoint
	DEFAULT_BASE_URL = "https://www.googleapis.com/youtube/v3"

	descriptionLimit = 200
)

var (
	// ErrMissingConfig is returned when no API key is configured
	ErrMissingConfig = errors.New("youtube api key not configured")
	// ErrQuotaExceeded is returned when the API quota for the key is exhausted
	ErrQuotaExceeded = errors.New("youtube api quota exceeded")
	// ErrVideoNotFound is returned when the video does not exist or is private
	ErrVideoNotFound = errors.New("video not found or is private/deleted")
	// ErrNoVideoID is returned when no video id could be derived from the share
	ErrNoVideoID = errors.New("no youtube video id")
	// ErrRequestRejected is returned for other client errors from the API
	ErrRequestRejected = errors.New("youtube api rejected the request")
)

// VideoStats is the statistics snapshot of a video
type VideoStats struct {
	VideoID         string    `json:"video_id"`
	Title           string    `json:"title"`
	ChannelTitle    string    `json:"channel_title"`
	Description     string    `json:"description"`
	PublishedAt     time.Time `json:"published_at"`
	ViewCount       int64     `json:"view_count"`
	LikeCount       int64     `json:"like_count"`
	CommentCount    int64     `json:"comment_count"`
	EngagementScore int64     `json:"engagement_score"`
}

// Client fetches video statistics
//
//go:generate mockgen -source=client.go -destination=../mocks/youtube.go -package=mocks -mock_names=Client=MockYouTubeClient
type Client interface {
	// GetVideoStats fetches statistics and snippet of a video
	GetVideoStats(ctx context.Context, videoID string) (*VideoStats, error)
}

type client struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
}

// NewClient creates a new YouTube Data API client
func NewClient(httpClient adapter.HTTPClient, baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// videoListResponse is the body of GET /videos
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string          `json:"id"`
	Snippet    videoSnippet    `json:"snippet"`
	Statistics videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	Description  string `json:"description"`
	PublishedAt  string `json:"publishedAt"`
}

// videoStatistics counts are decimal strings; hidden counts are omitted
type videoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// apiErrorResponse is the error envelope of Google APIs
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// GetVideoStats fetches statistics and snippet of a video
func (c *client) GetVideoStats(ctx context.Context, videoID string) (*VideoStats, error) {
	if c.apiKey == "" {
		return nil, ErrMissingConfig
	}
	if !IsVideoID(videoID) {
		return nil, fmt.Errorf("%w: %q", ErrNoVideoID, videoID)
	}

	query := url.Values{}
	query.Set("id", videoID)
	query.Set("part", "statistics,snippet")
	query.Set("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/videos?%s", c.baseURL, query.Encode())

	var resp videoListResponse
	if err := c.httpClient.Get(ctx, endpoint, &resp); err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	return toVideoStats(videoID, resp.Items[0])
}

func classifyError(err error) error {
	var statusErr *adapter.HTTPStatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("failed to call youtube api: %w", err)
	}

	var apiErr apiErrorResponse
	_ = json.Unmarshal(statusErr.Body, &apiErr)
	for _, e := range apiErr.Error.Errors {
		if e.Reason == "quotaExceeded" || e.Reason == "dailyLimitExceeded" {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Error.Message)
		}
	}

	switch {
	case statusErr.StatusCode == http.StatusNotFound:
		return ErrVideoNotFound
	case statusErr.StatusCode == http.StatusTooManyRequests, statusErr.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("youtube api unavailable: %w", err)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrRequestRejected, statusErr.StatusCode, apiErr.Error.Message)
	}
}

func toVideoStats(videoID string, item videoItem) (*VideoStats, error) {
	views, err := parseCount(item.Statistics.ViewCount)
	if err != nil {
		return nil, fmt.Errorf("%w: viewCount: %v", domain.ErrMalformedResponse, err)
	}
	likes, err := parseCount(item.Statistics.LikeCount)
	if err != nil {
		return nil, fmt.Errorf("%w: likeCount: %v", domain.ErrMalformedResponse, err)
	}
	comments, err := parseCount(item.Statistics.CommentCount)
	if err != nil {
		return nil, fmt.Errorf("%w: commentCount: %v", domain.ErrMalformedResponse, err)
	}

	var publishedAt time.Time
	if item.Snippet.PublishedAt != "" {
		publishedAt, err = time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: publishedAt: %v", domain.ErrMalformedResponse, err)
		}
	}

	return &VideoStats{
		VideoID:         videoID,
		Title:           item.Snippet.Title,
		ChannelTitle:    item.Snippet.ChannelTitle,
		Description:     truncate(item.Snippet.Description, descriptionLimit),
		PublishedAt:     publishedAt,
		ViewCount:       views,
		LikeCount:       likes,
		CommentCount:    comments,
		EngagementScore: EngagementScore(views, likes, comments),
	}, nil
}

// parseCount parses a decimal count, treating a hidden count as zero
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// EngagementScore weights interactions over passive views
func EngagementScore(views, likes, comments int64) int64 {
	return views + likes*domain.LIKE_WEIGHT + comments*domain.COMMENT_WEIGHT
}

// IsPermanent reports whether a lookup error will not go away on retry
func IsPermanent(err error) bool {
	return errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrVideoNotFound) ||
		errors.Is(err, ErrNoVideoID) ||
		errors.Is(err, ErrRequestRejected) ||
		errors.Is(err, domain.ErrMalformedResponse)
}
