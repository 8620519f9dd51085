package deck

import (
	"regexp"
	"strings"
)

var (
	boldMarkers   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMarkers = regexp.MustCompile(`\*(.+?)\*`)
	leadingBullet = regexp.MustCompile(`(?m)^[\*\-•]\s*`)
)

// Normalize cleans upstream-generated text into bullet-ready lines.
// Markdown emphasis markers are stripped (inner text kept), a single
// leading bullet glyph is removed per line, then the text is split on
// line breaks with each line trimmed and empty lines dropped. Line
// order is preserved; nothing is deduplicated or truncated.
func Normalize(content string) []string {
	s := boldMarkers.ReplaceAllString(content, "$1")
	s = italicMarkers.ReplaceAllString(s, "$1")
	s = leadingBullet.ReplaceAllString(s, "")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
