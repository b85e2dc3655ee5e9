package engine

import "regexp"

// Source classification: a URL is a video source if it matches any of the
// recognized video-hosting shapes (watch page, short link, embed link);
// everything else is treated as a generic webpage. Pure pattern match,
// no I/O.

var videoURLRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)`),
	regexp.MustCompile(`(?i)youtube\.com.*[?&]v=`),
	regexp.MustCompile(`(?i)youtu\.be/`),
}

// Classify returns the source kind for a URL.
func Classify(rawURL string) SourceKind {
	if IsVideoURL(rawURL) {
		return SourceVideo
	}
	return SourceWebpage
}

// IsVideoURL reports whether a URL points at a recognized video host.
func IsVideoURL(rawURL string) bool {
	for _, re := range videoURLRes {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

var videoIDRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[?&]v=([\w-]{6,})`),
	regexp.MustCompile(`(?i)youtu\.be/([\w-]{6,})`),
	regexp.MustCompile(`(?i)youtube\.com/embed/([\w-]{6,})`),
}

// VideoID extracts the video identifier from a recognized video URL.
// Returns "" when no identifier is present.
func VideoID(rawURL string) string {
	for _, re := range videoIDRes {
		if m := re.FindStringSubmatch(rawURL); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
