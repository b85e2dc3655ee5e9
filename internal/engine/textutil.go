package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent for video-metadata requests where a stable identity is fine.
const UserAgentChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

var (
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	entityRe  = regexp.MustCompile(`&#?\w+;`)
	spaceRe   = regexp.MustCompile(`[ \t]+`)
)

// CleanHTML strips inline markup tags, character-entity references, and
// surrounding whitespace from a single line of text. Entities are removed,
// not decoded: caption streams use them for layout spacing only.
func CleanHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	s = entityRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Truncate caps s at n runes. Safe for UTF-8 (Cyrillic, CJK, emoji).
func Truncate(s string, n int) string {
	return strutil.TruncateWith(s, n, "")
}

// CollapseLines trims every line, drops empty ones, and collapses runs of
// horizontal whitespace within each line.
func CollapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
