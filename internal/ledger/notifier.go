package ledger

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/creatorchain/creatorchain/internal/adapter"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
	"github.com/creatorchain/creatorchain/internal/store"
	"github.com/creatorchain/creatorchain/internal/store/schema"
)

// Notifier persists user notifications and fans them out to the message broker
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// NotifyShareVerified tells a viewer their share was verified and credited.
	// At most one notification is stored per share.
	NotifyShareVerified(ctx context.Context, shareID, userID string, platform domain.Platform, points int) (*schema.Notification, error)
	// NotifyRewardEarned tells a viewer they unlocked a reward
	NotifyRewardEarned(ctx context.Context, userID, rewardTitle, creatorName string) (*schema.Notification, error)
	// NotifyMilestoneReached tells a viewer they reached a share milestone, once per milestone
	NotifyMilestoneReached(ctx context.Context, userID, milestone string, progress int) (*schema.Notification, error)
	// NotifyCampaignUpdate tells a viewer about a campaign they promote
	NotifyCampaignUpdate(ctx context.Context, userID, campaignTitle, message string) (*schema.Notification, error)

	// List returns the user's notifications, newest first
	List(ctx context.Context, userID string, limit int) ([]schema.Notification, error)
	// MarkRead marks one of the user's notifications as read.
	// Returns domain.ErrNotificationNotFound when the user has no such notification.
	MarkRead(ctx context.Context, userID, notificationID string) error
	// MarkAllRead marks all of the user's notifications as read and returns how many changed
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	// UnreadCount returns the number of unread notifications
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notifier struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewNotifier creates a new notifier. publisher may be nil when no broker is configured.
func NewNotifier(store store.Store, publisher messaging.Publisher, clock adapter.Clock) Notifier {
	return &notifier{store: store, publisher: publisher, clock: clock}
}

func (n *notifier) NotifyShareVerified(ctx context.Context, shareID, userID string, platform domain.Platform, points int) (*schema.Notification, error) {
	return n.notify(ctx, userID, "share_verified:"+shareID, domain.NotificationTypeShareVerified,
		"Share Verified",
		fmt.Sprintf("Your %s share has been verified. You earned %d points!", platform, points),
		map[string]interface{}{"platform": platform, "points": points})
}

func (n *notifier) NotifyRewardEarned(ctx context.Context, userID, rewardTitle, creatorName string) (*schema.Notification, error) {
	return n.notify(ctx, userID, "", domain.NotificationTypeRewardEarned,
		"Reward Earned",
		fmt.Sprintf("Congratulations! You've earned \"%s\" from %s", rewardTitle, creatorName),
		map[string]interface{}{"reward_title": rewardTitle, "creator_name": creatorName})
}

func (n *notifier) NotifyMilestoneReached(ctx context.Context, userID, milestone string, progress int) (*schema.Notification, error) {
	return n.notify(ctx, userID, fmt.Sprintf("milestone_reached:%s:%d", userID, progress), domain.NotificationTypeMilestoneReached,
		"Milestone Reached",
		fmt.Sprintf("You've reached %s! You now have %d total shares.", milestone, progress),
		map[string]interface{}{"milestone": milestone, "progress": progress})
}

func (n *notifier) NotifyCampaignUpdate(ctx context.Context, userID, campaignTitle, message string) (*schema.Notification, error) {
	return n.notify(ctx, userID, "", domain.NotificationTypeCampaignUpdate,
		"Campaign Update",
		fmt.Sprintf("Update for \"%s\": %s", campaignTitle, message),
		map[string]interface{}{"campaign_title": campaignTitle, "update_message": message})
}

// notify persists the notification then publishes it.
// The row is the source of truth so a publish failure only logs.
// A non-empty dedupeKey already stored returns the stored row without publishing again.
func (n *notifier) notify(ctx context.Context, userID, dedupeKey string, notificationType domain.NotificationType, title, message string, data map[string]interface{}) (*schema.Notification, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	now := n.clock.Now()
	notification := &schema.Notification{
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Data:      datatypes.JSON(payload),
		CreatedAt: now,
	}
	if dedupeKey != "" {
		notification.DedupeKey = &dedupeKey
	}
	created, err := n.store.CreateNotification(ctx, notification)
	if err != nil {
		return nil, err
	}
	if !created {
		logger.DebugCtx(ctx, "Notification already delivered",
			zap.String("dedupeKey", dedupeKey),
			zap.String("notificationID", notification.ID))
		return notification, nil
	}

	if n.publisher == nil {
		return notification, nil
	}

	event := &domain.NotificationEvent{
		EventID:        ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		NotificationID: notification.ID,
		UserID:         userID,
		Type:           notificationType,
		Title:          title,
		Message:        message,
		Data:           json.RawMessage(payload),
		CreatedAt:      now,
	}
	if err := n.publisher.PublishNotification(ctx, event); err != nil {
		logger.FailOpenCtx(ctx, "failed to publish notification", err,
			zap.String("notificationID", notification.ID),
			zap.String("userID", userID))
	}

	return notification, nil
}

func (n *notifier) List(ctx context.Context, userID string, limit int) ([]schema.Notification, error) {
	return n.store.ListNotifications(ctx, userID, NormalizeLimit(limit))
}

func (n *notifier) MarkRead(ctx context.Context, userID, notificationID string) error {
	found, err := n.store.MarkNotificationRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (n *notifier) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return n.store.MarkAllNotificationsRead(ctx, userID)
}

func (n *notifier) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return n.store.CountUnreadNotifications(ctx, userID)
}

// NormalizeLimit clamps a page size to the notification listing bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DEFAULT_NOTIFICATIONS_LIMIT
	}
	if limit > domain.MAX_NOTIFICATIONS_LIMIT {
		return domain.MAX_NOTIFICATIONS_LIMIT
	}
	return limit
}
