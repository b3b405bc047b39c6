package markup

import (
	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
)

// EmojiTag binds a placeholder slot to the emoji drawn over it.
type EmojiTag struct {
	// CharIndex is the slot of the placeholder.
	CharIndex int

	// Emoji is the definition shown at the placeholder.
	Emoji *emoji.Emoji
}

// HrefTag binds a half-open slot range to a link.
type HrefTag struct {
	// Begin and End delimit the description slots: [Begin, End).
	Begin, End int

	// Description is the displayed text.
	Description string

	// Target is the opaque link payload reported on click.
	Target string

	// Boxes holds one rectangle per visual line the link occupies,
	// in local layout space. It is empty until the text is laid out.
	Boxes []geom.Rect
}

// Len returns the number of slots the link spans.
func (t HrefTag) Len() int { return t.End - t.Begin }

// WithBoxes returns a copy of t carrying boxes.
func (t HrefTag) WithBoxes(boxes []geom.Rect) HrefTag {
	t.Boxes = boxes
	return t
}
