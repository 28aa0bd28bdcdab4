package bridge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/bridge"
	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/logger"
	"github.com/creatorchain/creatorchain/internal/messaging"
	"github.com/creatorchain/creatorchain/internal/mocks"
)

type testBridgeMocks struct {
	ctrl       *gomock.Controller
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	bridge     bridge.Bridge
}

func setupTestBridge(t *testing.T) *testBridgeMocks {
	err := logger.Initialize(logger.Config{Debug: true})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	tm := &testBridgeMocks{
		ctrl:       ctrl,
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
	}
	tm.bridge = bridge.NewBridge(tm.subscriber, tm.publisher)
	return tm
}

// deliver makes Subscribe hand each event to the handler and collect the handler results
func deliver(tm *testBridgeMocks, results *[]error, events ...*domain.NotificationEvent) {
	tm.subscriber.EXPECT().
		Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handler messaging.NotificationHandler) error {
			for _, event := range events {
				*results = append(*results, handler(ctx, event))
			}
			return context.Canceled
		})
}

func TestBridge_RelaysEvents(t *testing.T) {
	tm := setupTestBridge(t)

	first := &domain.NotificationEvent{EventID: "evt-1", UserID: "viewer-1", Type: domain.NotificationTypeShareVerified}
	second := &domain.NotificationEvent{EventID: "evt-2", UserID: "viewer-2", Type: domain.NotificationTypeRewardEarned}

	var results []error
	deliver(tm, &results, first, second)
	gomock.InOrder(
		tm.publisher.EXPECT().PublishNotification(gomock.Any(), first).Return(nil),
		tm.publisher.EXPECT().PublishNotification(gomock.Any(), second).Return(nil),
	)

	require.NoError(t, tm.bridge.Run(context.Background()))
	assert.Equal(t, []error{nil, nil}, results)
}

func TestBridge_PublishFailureIsRedelivered(t *testing.T) {
	tm := setupTestBridge(t)

	event := &domain.NotificationEvent{EventID: "evt-1", UserID: "viewer-1"}
	var results []error
	deliver(tm, &results, event)
	tm.publisher.EXPECT().PublishNotification(gomock.Any(), event).Return(errors.New("broker nack"))

	require.NoError(t, tm.bridge.Run(context.Background()))
	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0], "evt-1")
	assert.ErrorContains(t, results[0], "broker nack")
}

func TestBridge_DropsEventWithoutRecipient(t *testing.T) {
	tm := setupTestBridge(t)

	var results []error
	deliver(tm, &results, &domain.NotificationEvent{EventID: "evt-1"})

	require.NoError(t, tm.bridge.Run(context.Background()))
	assert.Equal(t, []error{nil}, results)
}

func TestBridge_SubscriptionError(t *testing.T) {
	tm := setupTestBridge(t)

	tm.subscriber.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(errors.New("consumer closed"))

	err := tm.bridge.Run(context.Background())
	assert.ErrorContains(t, err, "consumer closed")
}

func TestBridge_Close(t *testing.T) {
	tm := setupTestBridge(t)

	tm.subscriber.EXPECT().Close()
	tm.publisher.EXPECT().Close()

	tm.bridge.Close()
}
