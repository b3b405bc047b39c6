package raster

import (
	"fmt"
	"os"

	"github.com/gogpu/richtext/geom"
)

// FontSource is a loaded font file. It is heavyweight and meant to be
// shared: settings refer to it by pointer, and the generator's layout
// cache keys on that pointer.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	addr *FontSource

	data   []byte
	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := parseFont(data)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   append([]byte(nil), data...),
		parsed: parsed,
	}
	s.addr = s
	s.name = fontName(parsed)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face returns a Face at size pixels per em.
// Panics if s is nil.
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("raster: FontSource is nil")
	}
	s.copyCheck()
	return Face{Source: s, Size: size}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("raster: FontSource must not be copied by value")
	}
}

func fontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

// Face is a FontSource at a specific size. It is a small value type.
type Face struct {
	Source *FontSource
	Size   float64
}

// Metrics returns the font metrics at the face size.
func (f Face) Metrics() Metrics {
	return f.Source.Parsed().Metrics(f.Size)
}

// HasGlyph reports whether the font has a glyph for r.
func (f Face) HasGlyph(r rune) bool {
	return f.Source.Parsed().GlyphIndex(r) != 0
}

// GlyphBounds returns the ink box of glyph gid at the face size.
func (f Face) GlyphBounds(gid GlyphID) geom.Rect {
	return f.Source.Parsed().GlyphBounds(uint16(gid), f.Size)
}
