package tracking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/antibot"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// Click is the outcome of a tracked visit
type Click struct {
	ReferralLinkID string
	ContentID      string
	TargetURL      string
}

// Tracker records referral link visits
//
//go:generate mockgen -source=tracker.go -destination=../mocks/tracker.go -package=mocks -mock_names=Tracker=MockTracker
type Tracker interface {
	// Track logs a visit to the link with the given code and returns where to redirect.
	// Returns domain.ErrLinkNotFound when the code is unknown.
	Track(ctx context.Context, code string, metadata domain.RequestMetadata) (*Click, error)
}

type tracker struct {
	store    store.Store
	velocity antibot.VelocityCounter
	clock    adapter.Clock
}

// NewTracker creates a new click tracker
func NewTracker(store store.Store, velocity antibot.VelocityCounter, clock adapter.Clock) Tracker {
	return &tracker{store: store, velocity: velocity, clock: clock}
}

// Track logs a visit to the link with the given code and returns where to redirect
func (t *tracker) Track(ctx context.Context, code string, metadata domain.RequestMetadata) (*Click, error) {
	if code == "" {
		return nil, domain.ErrLinkNotFound
	}

	link, err := t.store.GetReferralLinkByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up referral link: %w", err)
	}
	if link == nil || link.Content == nil {
		return nil, domain.ErrLinkNotFound
	}

	click := &schema.LinkClick{
		ReferralLinkID: link.ID,
		IPAddress:      metadata.IP,
		UserAgent:      metadata.UserAgent,
		Referer:        metadata.Referer,
		Country:        metadata.Country,
		City:           metadata.City,
		DeviceType:     ParseDeviceType(metadata.UserAgent),
		Browser:        ParseBrowser(metadata.UserAgent),
		ClickedAt:      t.clock.Now(),
	}

	// The redirect must happen even when logging fails
	if err := t.store.RecordLinkClick(ctx, click); err != nil {
		logger.FailOpenCtx(ctx, "failed to record link click", err, zap.String("referralLinkID", link.ID))
	}
	if err := t.store.IncrementLinkClicks(ctx, link.ID); err != nil {
		logger.FailOpenCtx(ctx, "failed to increment link clicks", err, zap.String("referralLinkID", link.ID))
	}
	if metadata.IP != "" {
		if err := t.velocity.RecordClick(ctx, metadata.IP, click.ClickedAt); err != nil {
			logger.FailOpenCtx(ctx, "failed to record click velocity", err, zap.String("ip", metadata.IP))
		}
	}

	return &Click{
		ReferralLinkID: link.ID,
		ContentID:      link.ContentID,
		TargetURL:      link.Content.ContentURL,
	}, nil
}
