package engine

import (
	"regexp"
	"strings"
)

// Caption payloads arrive as WebVTT cue-timed markup. ParseCaptions
// reduces them to plain text: header/comment lines, cue-timing lines, and
// bare numeric index lines are dropped; inline tags and entity references
// are stripped; the surviving lines are joined with single spaces.

var numericIndexRe = regexp.MustCompile(`^\d+$`)

// ParseCaptions converts cue-timed caption markup to plain text.
// Idempotent on already-clean text.
func ParseCaptions(raw string) string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "NOTE") ||
			strings.Contains(line, "-->") ||
			numericIndexRe.MatchString(line) {
			continue
		}
		if line = CleanHTML(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}
