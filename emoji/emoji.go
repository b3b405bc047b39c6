package emoji

import (
	"image"

	"github.com/gogpu/richtext/geom"
)

// MinSize is the edge length, in layout units, of an emoji whose frames do
// not define a size.
const MinSize = 14

// Emoji is a named image sequence that can be placed inline in text.
// Only the first frame is displayed; the rest are kept for hosts that
// animate overlays themselves.
type Emoji struct {
	// ID is the key markup uses to reference the emoji, e.g. "00".
	ID string

	// Frames are the images of the emoji, in display order.
	Frames []image.Image
}

// Size returns the maximum width and height across all frames.
// An emoji without frames (or with empty frames only) is MinSize square.
func (e *Emoji) Size() geom.Vec2 {
	var w, h int
	for _, f := range e.Frames {
		if f == nil {
			continue
		}
		b := f.Bounds()
		w = max(w, b.Dx())
		h = max(h, b.Dy())
	}
	if w == 0 || h == 0 {
		return geom.V2(MinSize, MinSize)
	}
	return geom.V2(float32(w), float32(h))
}

// Extent returns the larger of the two Size components. It is the edge
// length of the square slot an emoji reserves in laid out text.
func (e *Emoji) Extent() float32 {
	s := e.Size()
	return max(s.X, s.Y)
}

// First returns the first frame, or nil when the emoji has none.
func (e *Emoji) First() image.Image {
	if len(e.Frames) == 0 {
		return nil
	}
	return e.Frames[0]
}
