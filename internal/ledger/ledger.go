package ledger

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// Ledger applies the side effects of a verified share beyond the point credit
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// GrantEarnedRewards grants every reward of the campaign whose threshold the viewer has reached.
	// Returns the rewards newly granted by this call.
	GrantEarnedRewards(ctx context.Context, viewerID, contentID string) ([]schema.Reward, error)
	// CheckMilestones notifies the viewer when their verified share total lands on a milestone
	CheckMilestones(ctx context.Context, viewerID string, totalShares int) (bool, error)
}

type ledger struct {
	store    store.Store
	notifier Notifier
	clock    adapter.Clock
}

// NewLedger creates a new ledger
func NewLedger(store store.Store, notifier Notifier, clock adapter.Clock) Ledger {
	return &ledger{store: store, notifier: notifier, clock: clock}
}

func (l *ledger) GrantEarnedRewards(ctx context.Context, viewerID, contentID string) ([]schema.Reward, error) {
	content, err := l.store.GetContentByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrContentNotFound
	}
	if len(content.Rewards) == 0 {
		return nil, nil
	}

	verified, err := l.store.CountVerifiedSharesForContent(ctx, viewerID, contentID)
	if err != nil {
		return nil, err
	}

	var granted []schema.Reward
	creatorName := ""
	for i := range content.Rewards {
		reward := content.Rewards[i]
		if int64(reward.SharesRequired) > verified {
			continue
		}

		ok, err := l.store.GrantViewerReward(ctx, viewerID, &reward, l.clock.Now())
		if err != nil {
			return granted, err
		}
		if !ok {
			continue
		}
		granted = append(granted, reward)

		if creatorName == "" {
			creatorName = l.creatorName(ctx, content.CreatorID)
		}
		// The grant is committed; a retry would not renotify, so only log
		if _, err := l.notifier.NotifyRewardEarned(ctx, viewerID, reward.Title, creatorName); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to notify reward earned: %w", err),
				zap.String("viewerID", viewerID),
				zap.String("rewardID", reward.ID))
		}
	}

	return granted, nil
}

func (l *ledger) creatorName(ctx context.Context, creatorID string) string {
	profile, err := l.store.GetProfile(ctx, creatorID)
	if err != nil || profile == nil {
		return "a creator"
	}
	if profile.FullName != "" {
		return profile.FullName
	}
	return profile.Email
}

func (l *ledger) CheckMilestones(ctx context.Context, viewerID string, totalShares int) (bool, error) {
	if !slices.Contains(domain.ShareMilestones, totalShares) {
		return false, nil
	}

	if _, err := l.notifier.NotifyMilestoneReached(ctx, viewerID, MilestoneLabel(totalShares), totalShares); err != nil {
		return false, err
	}
	return true, nil
}

// MilestoneLabel names a share milestone for display
func MilestoneLabel(shares int) string {
	if shares == 1 {
		return "your first verified share"
	}
	return fmt.Sprintf("%d verified shares", shares)
}
