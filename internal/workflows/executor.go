package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/ledger"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

// executor is the concrete implementation of Executor
type executor struct {
	store    store.Store
	youtube  youtube.Client
	notifier ledger.Notifier
	ledger   ledger.Ledger
	clock    adapter.Clock
	activity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(
	store store.Store,
	youtube youtube.Client,
	notifier ledger.Notifier,
	ledger ledger.Ledger,
	clock adapter.Clock,
	activity adapter.Activity,
) Executor {
	return &executor{
		store:    store,
		youtube:  youtube,
		notifier: notifier,
		ledger:   ledger,
		clock:    clock,
		activity: activity,
	}
}

// FetchVideoStats loads the share and fetches the statistics of its video
func (e *executor) FetchVideoStats(ctx context.Context, shareID string) (*youtube.VideoStats, error) {
	share, err := e.store.GetSocialShareByID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, permanentError(domain.ErrShareNotFound)
	}
	if share.Verified || share.Status != domain.ShareStatusPending {
		logger.InfoCtx(ctx, "Share no longer pending, skipping verification",
			zap.String("shareID", shareID),
			zap.String("status", string(share.Status)))
		return nil, nil
	}
	if share.VideoID == nil || *share.VideoID == "" {
		return nil, permanentError(youtube.ErrNoVideoID)
	}

	stats, err := e.youtube.GetVideoStats(ctx, *share.VideoID)
	if err != nil {
		if youtube.IsPermanent(err) {
			return nil, permanentError(err)
		}
		logger.WarnCtx(ctx, "Video statistics lookup failed, will retry",
			zap.String("shareID", shareID),
			zap.Int32("attempt", e.activity.Attempt(ctx)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch video stats: %w", err)
	}

	return stats, nil
}

// MarkShareFailed records a permanent verification failure
func (e *executor) MarkShareFailed(ctx context.Context, shareID string, reason string) error {
	if err := e.store.MarkShareFailed(ctx, shareID, reason, e.clock.Now()); err != nil {
		return err
	}

	logger.WarnCtx(ctx, "Share verification failed permanently",
		zap.String("shareID", shareID),
		zap.String("reason", reason))
	return nil
}

// CompleteShareVerification marks the share verified and credits the viewer
func (e *executor) CompleteShareVerification(ctx context.Context, shareID string, engagementScore int64) (*store.ShareVerificationResult, error) {
	result, err := e.store.CompleteShareVerification(ctx, store.CompleteShareVerificationInput{
		ShareID:         shareID,
		EngagementScore: engagementScore,
		VerifiedAt:      e.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, permanentError(domain.ErrShareNotFound)
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Share verification completed",
		zap.String("shareID", shareID),
		zap.Bool("transitioned", result.Transitioned),
		zap.Int("points", result.PointsEarned))
	return result, nil
}

// NotifyShareVerified creates the share_verified notification
func (e *executor) NotifyShareVerified(ctx context.Context, shareID, viewerID string, platform domain.Platform, points int) error {
	_, err := e.notifier.NotifyShareVerified(ctx, shareID, viewerID, platform, points)
	return err
}

// GrantEarnedRewards grants the campaign rewards the viewer has reached
func (e *executor) GrantEarnedRewards(ctx context.Context, viewerID, contentID string) (int, error) {
	granted, err := e.ledger.GrantEarnedRewards(ctx, viewerID, contentID)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			return 0, permanentError(err)
		}
		return 0, err
	}
	return len(granted), nil
}

// CheckMilestones notifies the viewer when their share total lands on a milestone
func (e *executor) CheckMilestones(ctx context.Context, viewerID string, totalShares int) error {
	reached, err := e.ledger.CheckMilestones(ctx, viewerID, totalShares)
	if err != nil {
		return err
	}
	if reached {
		logger.InfoCtx(ctx, "Milestone reached",
			zap.String("viewerID", viewerID),
			zap.Int("totalShares", totalShares))
	}
	return nil
}

// permanentError wraps err so Temporal stops retrying the activity
func permanentError(err error) error {
	return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypePermanentVerification, err)
}
