package messaging_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/messaging"
)

func TestNotificationSubject(t *testing.T) {
	assert.Equal(t, "notifications.user-1.share_verified",
		messaging.NotificationSubject("user-1", domain.NotificationTypeShareVerified))
}

func TestDecodeNotification(t *testing.T) {
	event := &domain.NotificationEvent{
		EventID:        "01HZX3J6Q1Y7N2W0V6F8K4T9PA",
		NotificationID: "n-1",
		UserID:         "user-1",
		Type:           domain.NotificationTypeRewardEarned,
		Title:          "Reward Earned",
		Message:        "Congratulations!",
		Data:           json.RawMessage(`{"reward_title":"Poster"}`),
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	data, err := messaging.EncodeNotification(event)
	require.NoError(t, err)

	decoded, err := messaging.DecodeNotification(data)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.JSONEq(t, `{"reward_title":"Poster"}`, string(decoded.Data))

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"event_id":`},
		{"missing user", `{"event_id":"e","type":"share_verified"}`},
		{"missing type", `{"event_id":"e","user_id":"u"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := messaging.DecodeNotification([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}
