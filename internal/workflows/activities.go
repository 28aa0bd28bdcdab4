package workflows

import (
	"context"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

// ErrTypePermanentVerification is the application error type of lookups that must not be retried
const ErrTypePermanentVerification = "PermanentVerificationError"

// Executor defines the interface for executing share verification activities
//
//go:generate mockgen -source=activities.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// FetchVideoStats loads the share and fetches the statistics of its video.
	// Returns nil stats when the share no longer needs verification.
	FetchVideoStats(ctx context.Context, shareID string) (*youtube.VideoStats, error)

	// MarkShareFailed records a permanent verification failure
	MarkShareFailed(ctx context.Context, shareID string, reason string) error

	// CompleteShareVerification marks the share verified and credits the viewer
	CompleteShareVerification(ctx context.Context, shareID string, engagementScore int64) (*store.ShareVerificationResult, error)

	// NotifyShareVerified creates the share_verified notification
	NotifyShareVerified(ctx context.Context, shareID, viewerID string, platform domain.Platform, points int) error

	// GrantEarnedRewards grants the campaign rewards the viewer has reached and returns how many were new
	GrantEarnedRewards(ctx context.Context, viewerID, contentID string) (int, error)

	// CheckMilestones notifies the viewer when their share total lands on a milestone
	CheckMilestones(ctx context.Context, viewerID string, totalShares int) error
}
