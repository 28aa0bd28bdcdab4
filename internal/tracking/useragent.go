package tracking

import (
	"regexp"
	"strings"

	"github.com/creatorchain/creatorchain/internal/domain"
)

var mobilePattern = regexp.MustCompile(`Mobile|Android|iPhone|iPad`)

// ParseDeviceType derives the device type from a user agent
func ParseDeviceType(userAgent string) domain.DeviceType {
	if mobilePattern.MatchString(userAgent) {
		return domain.DeviceTypeMobile
	}
	return domain.DeviceTypeDesktop
}

// ParseBrowser derives the browser family from a user agent.
// Chrome is checked before Safari because Chrome user agents also carry "Safari".
func ParseBrowser(userAgent string) domain.Browser {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "chrome"):
		return domain.BrowserChrome
	case strings.Contains(ua, "firefox"):
		return domain.BrowserFirefox
	case strings.Contains(ua, "safari"):
		return domain.BrowserSafari
	default:
		return domain.BrowserOther
	}
}

// ClientIP picks the originating client address from proxy headers, falling back to the socket address
func ClientIP(forwardedFor, realIP, remoteIP string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(realIP); ip != "" {
		return ip
	}
	return remoteIP
}
