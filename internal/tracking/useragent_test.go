package tracking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatorchain/creatorchain/internal/domain"
	"github.com/creatorchain/creatorchain/internal/tracking"
)

func TestParseDeviceType(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      domain.DeviceType
	}{
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148", domain.DeviceTypeMobile},
		{"android", "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36", domain.DeviceTypeMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", domain.DeviceTypeMobile},
		{"mac desktop", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15", domain.DeviceTypeDesktop},
		{"empty", "", domain.DeviceTypeDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracking.ParseDeviceType(tt.userAgent))
		})
	}
}

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      domain.Browser
	}{
		{"chrome carries safari token", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", domain.BrowserChrome},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", domain.BrowserFirefox},
		{"safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) Version/17.0 Safari/605.1.15", domain.BrowserSafari},
		{"curl", "curl/8.4.0", domain.BrowserOther},
		{"case insensitive", "CHROME", domain.BrowserChrome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracking.ParseBrowser(tt.userAgent))
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		realIP       string
		remoteIP     string
		want         string
	}{
		{"first forwarded entry", "203.0.113.1, 10.0.0.1", "198.51.100.2", "127.0.0.1", "203.0.113.1"},
		{"real ip when no forwarded", "", "198.51.100.2", "127.0.0.1", "198.51.100.2"},
		{"remote when no headers", "", "", "127.0.0.1", "127.0.0.1"},
		{"blank forwarded entry", " , 10.0.0.1", "198.51.100.2", "127.0.0.1", "198.51.100.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tracking.ClientIP(tt.forwardedFor, tt.realIP, tt.remoteIP))
		})
	}
}
