package raster

import (
	"image/color"

	"github.com/gogpu/richtext/geom"
)

// Alignment specifies horizontal line alignment within the container.
type Alignment uint8

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers lines.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// DefaultFontSize is the font size of DefaultSettings.
const DefaultFontSize = 14

// Settings configures one rasterization. Settings is comparable and is
// used as part of the generator's cache key.
//
// Sizes are in layout units. The generator multiplies them by ScaleFactor
// and emits vertices in pixels.
type Settings struct {
	// Font is the font to lay out with. Nothing is emitted without one.
	Font *FontSource

	// Size is the font size.
	Size float32

	// Extents is the container size. A zero X disables wrapping and a zero
	// Y disables truncation.
	Extents geom.Vec2

	// Wrap selects the line breaking mode.
	Wrap WrapMode

	// Align is the horizontal alignment of each line. Without a container
	// width lines align within the widest line.
	Align Alignment

	// LineSpacing multiplies the distance between baselines.
	// Zero or negative means 1.
	LineSpacing float32

	// Truncate drops lines whose bottom exceeds Extents.Y together with
	// every line after them.
	Truncate bool

	// ScaleFactor is the number of pixels per layout unit.
	// Zero or negative means 1.
	ScaleFactor float32

	// Color is the vertex color of uncolored text.
	Color color.RGBA
}

// DefaultSettings returns settings for black, left-aligned, word-wrapped
// text in font at DefaultFontSize.
func DefaultSettings(font *FontSource) Settings {
	return Settings{
		Font:        font,
		Size:        DefaultFontSize,
		Wrap:        WrapWordChar,
		Align:       AlignLeft,
		LineSpacing: 1,
		Truncate:    false,
		ScaleFactor: 1,
		Color:       color.RGBA{A: 255},
	}
}

func (s Settings) scale() float32 {
	if s.ScaleFactor <= 0 {
		return 1
	}
	return s.ScaleFactor
}

func (s Settings) lineSpacing() float64 {
	if s.LineSpacing <= 0 {
		return 1
	}
	return float64(s.LineSpacing)
}
