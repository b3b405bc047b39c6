package raster

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph is a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the shaped text of the first rune this
	// glyph represents.
	Cluster int

	// X and Y are the glyph position relative to the run origin.
	X, Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Shaper converts a run of text into positioned glyphs.
//   - BuiltinShaper: one glyph per rune with x/image metrics
//   - GoTextShaper: HarfBuzz shaping (kerning, ligatures) via go-text/typesetting
//
// Implementations must be safe for concurrent use.
type Shaper interface {
	Shape(text string, face Face) []ShapedGlyph
}

// BuiltinShaper positions one glyph per rune using the font's advances.
// It does not substitute ligatures or apply kerning.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face.Source == nil {
		return nil
	}
	parsed := face.Source.Parsed()

	result := make([]ShapedGlyph, 0, len(text))
	var x float64
	cluster := 0
	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, face.Size)

		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})

		x += advance
		cluster++
	}
	return result
}
