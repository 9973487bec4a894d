// Package layout resolves how a careers-page section renders: which video
// provider a URL points at, which embed URL to use, and which concrete
// layout a section gets when it asks for the default.
package layout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hirefold/hirefold/pkg/domain"
)

// VideoKind identifies the hosting provider of a video URL.
type VideoKind string

const (
	VideoYouTube     VideoKind = "youtube"
	VideoVimeo       VideoKind = "vimeo"
	VideoGoogleDrive VideoKind = "google_drive"
	// VideoDirect is any URL that matches no known provider; it is played
	// as-is by a native video element.
	VideoDirect VideoKind = "direct"
)

var (
	youtubeRe = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	vimeoRe   = regexp.MustCompile(`(?:vimeo\.com/)(\d+)`)
	driveRe   = regexp.MustCompile(`(?:drive\.google\.com/)(?:file/d/|open\?id=)([^"&?/\s]+)`)
)

// Video is a classified video reference ready for rendering.
type Video struct {
	Kind     VideoKind `json:"kind"`
	ID       string    `json:"id,omitempty"`
	EmbedURL string    `json:"embedUrl"`
}

// ClassifyVideo detects the provider of url and builds the matching embed
// URL. Unknown providers fall through to VideoDirect with the URL untouched.
// An empty url reports ok=false.
func ClassifyVideo(url string) (Video, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Video{}, false
	}
	if m := youtubeRe.FindStringSubmatch(url); m != nil {
		return Video{
			Kind:     VideoYouTube,
			ID:       m[1],
			EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s", m[1]),
		}, true
	}
	if m := vimeoRe.FindStringSubmatch(url); m != nil {
		return Video{
			Kind:     VideoVimeo,
			ID:       m[1],
			EmbedURL: fmt.Sprintf("https://player.vimeo.com/video/%s", m[1]),
		}, true
	}
	if m := driveRe.FindStringSubmatch(url); m != nil {
		return Video{
			Kind:     VideoGoogleDrive,
			ID:       m[1],
			EmbedURL: fmt.Sprintf("https://drive.google.com/file/d/%s/preview", m[1]),
		}, true
	}
	return Video{Kind: VideoDirect, EmbedURL: url}, true
}

// ResolveVideoURL picks the video for a section: the section's own URL wins,
// otherwise the company-level culture video. Empty means no video.
func ResolveVideoURL(sectionURL, cultureURL string) string {
	if strings.TrimSpace(sectionURL) != "" {
		return sectionURL
	}
	return cultureURL
}

// Effective maps a section's stored layout to the one actually rendered.
// Missing or "default" layouts alternate by position: even-indexed sections
// get image_left, odd-indexed get image_right.
func Effective(l domain.Layout, index int) domain.Layout {
	if l != "" && l != domain.LayoutDefault {
		return l
	}
	if index%2 == 0 {
		return domain.LayoutImageLeft
	}
	return domain.LayoutImageRight
}

// Cards splits card-layout content into one card per line, trimming
// whitespace and dropping blank lines.
func Cards(content string) []string {
	var cards []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cards = append(cards, line)
		}
	}
	return cards
}
