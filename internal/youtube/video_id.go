package youtube

import "regexp"

// videoIDPatterns are tried in order; the first capture group is the video id
var videoIDPatterns = []*regexp.Regexp{
	// watch pages, including www., m., music. and gaming. hosts
	regexp.MustCompile(`(?:^|[/.])youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	// short links
	regexp.MustCompile(`(?:^|[/.])youtu\.be/([A-Za-z0-9_-]{11})`),
	// embeds and legacy player urls
	regexp.MustCompile(`(?:^|[/.])youtube(?:-nocookie)?\.com/(?:embed|v)/([A-Za-z0-9_-]{11})`),
	// shorts and live
	regexp.MustCompile(`(?:^|[/.])youtube\.com/(?:shorts|live)/([A-Za-z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID returns the 11-character video id of a YouTube URL
func ExtractVideoID(url string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsVideoID reports whether s has the shape of a YouTube video id
func IsVideoID(s string) bool {
	return bareVideoID.MatchString(s)
}
