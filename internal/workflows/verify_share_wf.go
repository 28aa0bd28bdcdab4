package workflows

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/youtube"
)

// VerifyShareWorkflow waits for the platform to index a share, checks it against the
// video statistics API and applies the resulting credit, rewards and notifications
func (w *workerCore) VerifyShareWorkflow(ctx workflow.Context, shareID string) error {
	logger.InfoWf(ctx, "Starting share verification",
		zap.String("shareID", shareID),
		zap.Duration("delay", w.config.VerificationDelay))

	// Give the platform time to index a just-created share
	if err := workflow.Sleep(ctx, w.config.VerificationDelay); err != nil {
		return err
	}

	lookupCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    w.config.InitialInterval,
			BackoffCoefficient: 2.0,
			MaximumInterval:    w.config.MaxInterval,
			MaximumAttempts:    w.config.MaxAttempts,
		},
	})

	var stats *youtube.VideoStats
	err := workflow.ExecuteActivity(lookupCtx, w.executor.FetchVideoStats, shareID).Get(lookupCtx, &stats)
	if err != nil {
		if reason, permanent := permanentFailureReason(err); permanent {
			return w.markFailed(ctx, shareID, reason)
		}

		logger.ErrorWf(ctx,
			fmt.Errorf("failed to fetch video stats"),
			zap.Error(err),
			zap.String("shareID", shareID),
		)
		return err
	}
	if stats == nil {
		logger.InfoWf(ctx, "Share does not need verification", zap.String("shareID", shareID))
		return nil
	}

	writeCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    5,
		},
	})

	var result *store.ShareVerificationResult
	err = workflow.ExecuteActivity(writeCtx, w.executor.CompleteShareVerification, shareID, stats.EngagementScore).Get(writeCtx, &result)
	if err != nil {
		if reason, permanent := permanentFailureReason(err); permanent {
			return w.markFailed(ctx, shareID, reason)
		}

		logger.ErrorWf(ctx,
			fmt.Errorf("failed to complete share verification"),
			zap.Error(err),
			zap.String("shareID", shareID),
		)
		return err
	}
	if result == nil || !result.Transitioned {
		logger.InfoWf(ctx, "Share already verified", zap.String("shareID", shareID))
		return nil
	}

	logger.InfoWf(ctx, "Share verified",
		zap.String("shareID", shareID),
		zap.String("viewerID", result.ViewerID),
		zap.Int64("engagementScore", stats.EngagementScore),
		zap.Int("points", result.PointsEarned),
	)

	// Points are already credited, so the follow-up effects only log on failure
	err = workflow.ExecuteActivity(writeCtx, w.executor.NotifyShareVerified, shareID, result.ViewerID, result.Platform, result.PointsEarned).Get(writeCtx, nil)
	if err != nil {
		logger.WarnWf(ctx, "Failed to notify share verified",
			zap.Error(err),
			zap.String("shareID", shareID))
	}

	var granted int
	err = workflow.ExecuteActivity(writeCtx, w.executor.GrantEarnedRewards, result.ViewerID, result.ContentID).Get(writeCtx, &granted)
	if err != nil {
		logger.WarnWf(ctx, "Failed to grant earned rewards",
			zap.Error(err),
			zap.String("shareID", shareID),
			zap.String("contentID", result.ContentID))
	} else if granted > 0 {
		logger.InfoWf(ctx, "Rewards granted",
			zap.String("viewerID", result.ViewerID),
			zap.Int("count", granted))
	}

	err = workflow.ExecuteActivity(writeCtx, w.executor.CheckMilestones, result.ViewerID, result.TotalShares).Get(writeCtx, nil)
	if err != nil {
		logger.WarnWf(ctx, "Failed to check milestones",
			zap.Error(err),
			zap.String("viewerID", result.ViewerID))
	}

	logger.InfoWf(ctx, "Share verification finished", zap.String("shareID", shareID))
	return nil
}

// markFailed records a permanent failure; the share stays unverified
func (w *workerCore) markFailed(ctx workflow.Context, shareID, reason string) error {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    5,
		},
	})

	if err := workflow.ExecuteActivity(ctx, w.executor.MarkShareFailed, shareID, reason).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to mark share failed"),
			zap.Error(err),
			zap.String("shareID", shareID),
		)
		return err
	}

	logger.WarnWf(ctx, "Share verification failed",
		zap.String("shareID", shareID),
		zap.String("reason", reason))
	return nil
}

// permanentFailureReason extracts the message of a non-retryable activity failure
func permanentFailureReason(err error) (string, bool) {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.NonRetryable() {
		return appErr.Message(), true
	}
	return "", false
}
