package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformValid(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		expected bool
	}{
		{name: "youtube", platform: PlatformYouTube, expected: true},
		{name: "instagram", platform: PlatformInstagram, expected: true},
		{name: "tiktok", platform: PlatformTikTok, expected: true},
		{name: "empty", platform: Platform(""), expected: false},
		{name: "unknown", platform: Platform("twitter"), expected: false},
		{name: "wrong case", platform: Platform("YouTube"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.platform.Valid())
		})
	}
}

func TestContentStatusValid(t *testing.T) {
	assert.True(t, ContentStatusActive.Valid())
	assert.True(t, ContentStatusPaused.Valid())
	assert.True(t, ContentStatusCompleted.Valid())
	assert.False(t, ContentStatus("archived").Valid())
}

func TestRewardTypeValid(t *testing.T) {
	assert.True(t, RewardTypePhysical.Valid())
	assert.True(t, RewardTypeDigital.Valid())
	assert.True(t, RewardTypeRaffle.Valid())
	assert.False(t, RewardType("coupon").Valid())
}
