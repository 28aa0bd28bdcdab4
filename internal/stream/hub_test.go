package stream_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/messaging"
	"github.com/creatorchain/creatorchain/internal/mocks"
	"github.com/creatorchain/creatorchain/internal/stream"
)

func event(userID, id string) *domain.NotificationEvent {
	return &domain.NotificationEvent{EventID: id, UserID: userID, Type: domain.NotificationTypeShareVerified}
}

func TestHub_BroadcastRoutesByUser(t *testing.T) {
	h := stream.NewHub()

	aliceTab1, unsub1 := h.Subscribe("alice")
	aliceTab2, unsub2 := h.Subscribe("alice")
	bob, unsub3 := h.Subscribe("bob")
	defer unsub1()
	defer unsub2()
	defer unsub3()
	assert.Equal(t, 3, h.Connections())

	h.Broadcast(event("alice", "e1"))

	assert.Equal(t, "e1", (<-aliceTab1).EventID)
	assert.Equal(t, "e1", (<-aliceTab2).EventID)
	select {
	case e := <-bob:
		t.Fatalf("bob received %s", e.EventID)
	default:
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := stream.NewHub()
	events, unsubscribe := h.Subscribe("alice")

	unsubscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)
	assert.Zero(t, h.Connections())

	// no panic on a user without connections
	h.Broadcast(event("alice", "e1"))
}

func TestHub_SlowClientDropsEvents(t *testing.T) {
	h := stream.NewHub()
	events, unsubscribe := h.Subscribe("alice")
	defer unsubscribe()

	for i := 0; i < 100; i++ {
		h.Broadcast(event("alice", "e"))
	}

	assert.Equal(t, 16, len(events))
}

func TestHub_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mocks.NewMockSubscriber(ctrl)
	h := stream.NewHub()
	events, unsubscribe := h.Subscribe("alice")
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subscriber.EXPECT().Subscribe(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, handler messaging.NotificationHandler) error {
			require.NoError(t, handler(ctx, event("alice", "e1")))
			return context.Canceled
		})

	err := h.Run(ctx, subscriber)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "e1", (<-events).EventID)
}
