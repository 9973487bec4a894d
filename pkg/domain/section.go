package domain

import (
	"time"

	"github.com/google/uuid"
)

// Layout is the rendering mode of a section. It determines which of the
// section's fields are relevant on the public page.
type Layout string

const (
	// LayoutDefault is resolved by the renderer into an alternating
	// image_left/image_right sequence based on section position.
	LayoutDefault         Layout = "default"
	LayoutImageLeft       Layout = "image_left"
	LayoutImageRight      Layout = "image_right"
	LayoutFullWidth       Layout = "full_width"
	LayoutTextOnly        Layout = "text_only"
	LayoutCards           Layout = "cards"
	LayoutVideoBG         Layout = "video_bg"
	LayoutVideoSplitLeft  Layout = "video_split_left"
	LayoutVideoSplitRight Layout = "video_split_right"
)

// Layouts lists every accepted layout value.
var Layouts = []Layout{
	LayoutDefault,
	LayoutImageLeft,
	LayoutImageRight,
	LayoutFullWidth,
	LayoutTextOnly,
	LayoutCards,
	LayoutVideoBG,
	LayoutVideoSplitLeft,
	LayoutVideoSplitRight,
}

// Valid reports whether l is a member of the closed layout enum.
func (l Layout) Valid() bool {
	for _, v := range Layouts {
		if l == v {
			return true
		}
	}
	return false
}

// RequiresVideo reports whether the layout needs a video reference to render.
func (l Layout) RequiresVideo() bool {
	switch l {
	case LayoutVideoBG, LayoutVideoSplitLeft, LayoutVideoSplitRight:
		return true
	}
	return false
}

// Section is one ordered, visibility-togglable content block on a company's
// careers page. Order is meaningful only relative to other sections of the
// same company; hidden sections keep their order slot.
type Section struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"companyId"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Layout    Layout    `json:"layout"`
	VideoURL  string    `json:"videoUrl"`
	Order     int       `json:"order"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionUpdate is a partial update of a section's editable fields.
// Nil fields are left untouched. Order is deliberately absent: it can only
// change through the bulk reorder operation.
type SectionUpdate struct {
	Type     *string
	Content  *string
	Image    *string
	Layout   *Layout
	VideoURL *string
	Visible  *bool
}
