// Package player resolves raw video URLs into embeddable player markup.
package player

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// The provider prefixes match case-insensitively; the captured id keeps
// its case (YouTube ids are case-sensitive).
var (
	youtubeID = regexp.MustCompile(`(?i:youtu\.be/|v=|embed/)([A-Za-z0-9_-]{6,})`)
	vimeoID   = regexp.MustCompile(`(?i:vimeo\.com/)(\d+)`)
)

// Resolve maps a video URL to embed markup. Providers are checked in a
// fixed priority order: YouTube, Vimeo, direct video files, then a
// generic iframe fallback. A recognized provider whose URL carries no
// extractable id yields empty markup rather than a broken player.
func Resolve(url string) string {
	if url == "" {
		return ""
	}
	lower := strings.ToLower(url)

	if strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be") {
		m := youtubeID.FindStringSubmatch(url)
		if m == nil {
			return ""
		}
		return fmt.Sprintf(
			`<iframe src="https://www.youtube.com/embed/%s?autoplay=1" allow="autoplay; fullscreen" allowfullscreen></iframe>`,
			m[1])
	}

	if strings.Contains(lower, "vimeo.com") {
		m := vimeoID.FindStringSubmatch(url)
		if m == nil {
			return ""
		}
		return fmt.Sprintf(
			`<iframe src="https://player.vimeo.com/video/%s?autoplay=1" allow="autoplay; fullscreen" allowfullscreen></iframe>`,
			m[1])
	}

	if strings.HasSuffix(lower, ".mp4") || strings.HasSuffix(lower, ".webm") || strings.HasSuffix(lower, ".ogg") {
		return fmt.Sprintf(`<video controls autoplay><source src="%s"></video>`, html.EscapeString(url))
	}

	return fmt.Sprintf(`<iframe src="%s" allow="autoplay; fullscreen" allowfullscreen></iframe>`, html.EscapeString(url))
}
