package richtext

import (
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
)

// Result is the published outcome of one layout pass. A Result is never
// modified after publication.
type Result struct {
	// Raw is the text the pass started from.
	Raw string

	// Decorated is the rewritten text handed to the rasterizer.
	Decorated markup.Decorated

	// Emoji is the emoji tag table.
	Emoji []markup.EmojiTag

	// Links is the href tag table with hit boxes.
	Links []markup.HrefTag

	// Mesh is the display mesh: text quads followed by underline quads,
	// in layout units.
	Mesh []raster.Vertex

	// Placements are the overlay positions, one per emoji tag.
	Placements []layout.Placement

	// Truncated reports that not all text was laid out.
	Truncated bool
}

// HitTest returns the target of the first link with a box containing pt.
func (r *Result) HitTest(pt geom.Vec2) (string, bool) {
	if r == nil {
		return "", false
	}
	return layout.HitTest(pt, r.Links)
}
