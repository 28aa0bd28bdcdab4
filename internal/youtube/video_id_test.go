package youtube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorchain/creatorchain/internal/youtube"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantID  string
		wantHit bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/jNQXAC9IVRw", "jNQXAC9IVRw", true},
		{"short link with timestamp", "https://youtu.be/jNQXAC9IVRw?t=10", "jNQXAC9IVRw", true},
		{"embed", "https://www.youtube.com/embed/kJQP7kiw5Fk", "kJQP7kiw5Fk", true},
		{"mobile", "https://m.youtube.com/watch?v=9bZkp7q19f0", "9bZkp7q19f0", true},
		{"gaming", "https://gaming.youtube.com/watch?v=9bZkp7q19f0", "9bZkp7q19f0", true},
		{"v after other params", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"nocookie embed", "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"non youtube", "https://vimeo.com/123456789", "", false},
		{"lookalike host", "https://notyoutube.com/watch?v=dQw4w9WgXcQ", "", false},
		{"short id", "https://youtu.be/abc", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := youtube.ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestIsVideoID(t *testing.T) {
	assert.True(t, youtube.IsVideoID("dQw4w9WgXcQ"))
	assert.True(t, youtube.IsVideoID("a-b_c123456"))
	assert.False(t, youtube.IsVideoID("dQw4w9WgXc"))
	assert.False(t, youtube.IsVideoID("https://youtu.be/jNQXAC9IVRw"))
}

func TestEngagementScore(t *testing.T) {
	assert.Equal(t, int64(1600), youtube.EngagementScore(1000, 50, 20))
	assert.Equal(t, int64(0), youtube.EngagementScore(0, 0, 0))
}
