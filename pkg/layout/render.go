package layout

import (
	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

// RenderedSection is a section prepared for the public page: default
// layouts resolved to a concrete one, card content split, and video
// references classified.
type RenderedSection struct {
	ID      uuid.UUID     `json:"id"`
	Type    string        `json:"type"`
	Content string        `json:"content"`
	Image   string        `json:"image,omitempty"`
	Layout  domain.Layout `json:"layout"`
	Order   int           `json:"order"`
	Cards   []string      `json:"cards,omitempty"`
	Video   *Video        `json:"video,omitempty"`
}

// RenderSections prepares sections for rendering. Sections must already be
// filtered and sorted; position in the slice drives the default-layout
// alternation. fallbackVideoURL is the company-level culture video used by
// video layouts when a section has no video of its own.
func RenderSections(sections []*domain.Section, fallbackVideoURL string) []RenderedSection {
	rendered := make([]RenderedSection, 0, len(sections))
	for i, s := range sections {
		rs := RenderedSection{
			ID:      s.ID,
			Type:    s.Type,
			Content: s.Content,
			Image:   s.Image,
			Layout:  Effective(s.Layout, i),
			Order:   s.Order,
		}
		if rs.Layout == domain.LayoutCards {
			rs.Cards = Cards(s.Content)
		}
		if rs.Layout.RequiresVideo() {
			if v, ok := ClassifyVideo(ResolveVideoURL(s.VideoURL, fallbackVideoURL)); ok {
				rs.Video = &v
			}
		}
		rendered = append(rendered, rs)
	}
	return rendered
}
