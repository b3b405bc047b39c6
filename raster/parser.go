package raster

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/richtext/geom"
)

// ParsedFont is the font interface the shapers and the generator consume.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// GlyphIndex returns the glyph index for a rune, 0 if not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width of a glyph at ppem pixels per em.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// GlyphBounds returns the ink box of a glyph at ppem, relative to its
	// origin on the baseline, y-down.
	GlyphBounds(glyphIndex uint16, ppem float64) geom.Rect

	// Metrics returns the font metrics at ppem.
	Metrics(ppem float64) Metrics
}

// parseFont parses TTF or OTF data with golang.org/x/image/font/opentype.
func parseFont(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont using sfnt.Font.
type ximageFont struct {
	font *opentype.Font
}

func (f *ximageFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

func (f *ximageFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

func (f *ximageFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

func (f *ximageFont) GlyphBounds(glyphIndex uint16, ppem float64) geom.Rect {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return geom.Rect{}
	}
	return geom.Rect{
		Min: geom.V2(float32(fixedToFloat(bounds.Min.X)), float32(fixedToFloat(bounds.Min.Y))),
		Max: geom.V2(float32(fixedToFloat(bounds.Max.X)), float32(fixedToFloat(bounds.Max.Y))),
	}
}

func (f *ximageFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(fixedToFloat(m.Height)-ascent-descent, 0),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
