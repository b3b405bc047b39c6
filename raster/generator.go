package raster

import (
	"unicode"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/internal/logx"
	"github.com/gogpu/richtext/markup"
)

// Rasterizer lays decorated strings out into glyph quads.
//
// Populate returns four vertices per emitted slot, in slot order, followed
// by four vertices of a zero-size trailing line break quad. Slots that do
// not fit are omitted from the end.
//
// PreferredWidth and PreferredHeight measure d in pixels: the width without
// wrapping, the height wrapped to s.Extents.X and never truncated.
type Rasterizer interface {
	Populate(d markup.Decorated, s Settings) []Vertex
	PreferredWidth(d markup.Decorated, s Settings) float32
	PreferredHeight(d markup.Decorated, s Settings) float32
}

// defaultCacheSize is the layout cache soft limit of NewGenerator.
const defaultCacheSize = 64

// tabWidth is the advance of '\t' in spaces.
const tabWidth = 4

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	shaper    Shaper
	cacheSize int
}

// WithShaper sets the shaper. The default is BuiltinShaper.
func WithShaper(s Shaper) GeneratorOption {
	return func(c *generatorConfig) {
		if s != nil {
			c.shaper = s
		}
	}
}

// WithCacheSize sets the soft limit of the layout cache.
// Zero or negative disables caching.
func WithCacheSize(n int) GeneratorOption {
	return func(c *generatorConfig) {
		c.cacheSize = n
	}
}

// Generator is the module's Rasterizer.
//
// Generator is safe for concurrent use. Layouts are cached by decorated
// string and settings; cached layouts are immutable and Populate returns a
// fresh vertex slice on every call.
type Generator struct {
	shaper Shaper
	cache  *Cache[layoutKey, *block]
}

var _ Rasterizer = (*Generator)(nil)

// NewGenerator creates a Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := generatorConfig{
		shaper:    BuiltinShaper{},
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{shaper: cfg.shaper}
	if cfg.cacheSize > 0 {
		g.cache = NewCache[layoutKey, *block](cfg.cacheSize)
	}
	return g
}

// Populate implements Rasterizer.
func (g *Generator) Populate(d markup.Decorated, s Settings) []Vertex {
	b := g.layout(d, s)
	if b == nil {
		return nil
	}
	return Flatten(b.quads)
}

// PreferredWidth implements Rasterizer.
func (g *Generator) PreferredWidth(d markup.Decorated, s Settings) float32 {
	s.Extents = geom.Vec2{}
	s.Truncate = false
	if b := g.layout(d, s); b != nil {
		return b.width
	}
	return 0
}

// PreferredHeight implements Rasterizer.
func (g *Generator) PreferredHeight(d markup.Decorated, s Settings) float32 {
	s.Extents.Y = 0
	s.Truncate = false
	if b := g.layout(d, s); b != nil {
		return b.height
	}
	return 0
}

// layoutKey identifies a layout in the cache.
type layoutKey struct {
	// text is markup.Decorated.Key, which literal tag text cannot forge.
	text     string
	settings Settings
}

// block is a finished layout. It is shared through the cache and must not
// be modified.
type block struct {
	// quads holds one quad per emitted slot, then the trailing quad.
	quads []Quad

	// width is the widest line without trailing whitespace.
	width float32

	// height is the bottom of the last emitted line.
	height float32
}

func (g *Generator) layout(d markup.Decorated, s Settings) *block {
	if s.Font == nil {
		logx.L().Debug("raster: no font, nothing to lay out")
		return nil
	}

	if g.cache == nil {
		return g.build(d.Slots(), s)
	}

	key := layoutKey{text: d.Key(), settings: s}
	if b, ok := g.cache.Get(key); ok {
		return b
	}
	b := g.build(d.Slots(), s)
	g.cache.Set(key, b)
	return b
}

// slotGlyph is the shaped form of one slot, in pixels relative to the pen
// position on the baseline.
type slotGlyph struct {
	advance float64
	ink     geom.Rect
	hasInk  bool
}

// line is one visual line of a layout.
type line struct {
	lineSpan
	ascent, descent float64
	width           float64
	baseline        float64
}

func (g *Generator) build(slots []markup.Slot, s Settings) *block {
	sf := s.scale()
	face := s.Font.Face(float64(s.Size * sf))
	m := face.Metrics()

	runes := make([]rune, len(slots))
	for i := range slots {
		runes[i] = slots[i].Rune
	}
	if hasRightToLeft(string(runes)) {
		logx.L().Debug("raster: right-to-left text laid out left to right")
	}

	glyphs := g.shapeSlots(slots, runes, face, float64(sf))
	advances := make([]float64, len(glyphs))
	for i := range glyphs {
		advances[i] = glyphs[i].advance
	}

	maxWidth := float64(s.Extents.X * sf)
	lines := measureLines(breakLines(runes, advances, maxWidth, s.Wrap), slots, runes, advances, m, float64(sf))

	// Baselines.
	spacing := s.lineSpacing()
	for i := range lines {
		if i == 0 {
			lines[i].baseline = lines[i].ascent
			continue
		}
		prev := &lines[i-1]
		lines[i].baseline = prev.baseline + (prev.descent+m.LineGap+lines[i].ascent)*spacing
	}

	var width float64
	for i := range lines {
		width = max(width, lines[i].width)
	}

	kept := lines
	if limit := float64(s.Extents.Y * sf); s.Truncate && limit > 0 {
		for i := range lines {
			if lines[i].baseline+lines[i].descent > limit {
				kept = lines[:i]
				logx.L().Debug("raster: truncated", "lines", i, "of", len(lines))
				break
			}
		}
	}

	container := width
	if maxWidth > 0 {
		container = maxWidth
	}

	b := &block{width: float32(width)}
	var end geom.Vec2
	for _, ln := range kept {
		pen := alignOffset(s.Align, container, ln.width)
		y := ln.baseline
		for i := ln.start; i < ln.end; i++ {
			b.quads = append(b.quads, slotQuad(slots[i], glyphs[i], pen, y, sf, s))
			pen += glyphs[i].advance
		}
		end = geom.V2(float32(pen), float32(y))
		b.height = float32(y + ln.descent)
	}
	b.quads = append(b.quads, NewQuad(geom.RectAt(end), s.Color))
	return b
}

// shapeSlots shapes every run of text between placeholders and control
// characters, and assigns each slot its advance and ink box.
func (g *Generator) shapeSlots(slots []markup.Slot, runes []rune, face Face, sf float64) []slotGlyph {
	out := make([]slotGlyph, len(slots))

	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		g.shapeRun(out, runes, runStart, end, face)
		runStart = -1
	}

	for i, sl := range slots {
		switch {
		case sl.Quad:
			flush(i)
			out[i].advance = float64(sl.Size) * sf
		case sl.Rune == '\n' || sl.Rune == '\r':
			flush(i)
		case sl.Rune == '\t':
			flush(i)
			space := face.Source.Parsed().GlyphIndex(' ')
			out[i].advance = tabWidth * face.Source.Parsed().GlyphAdvance(space, face.Size)
		default:
			if runStart < 0 {
				runStart = i
			}
		}
	}
	flush(len(slots))
	return out
}

// shapeRun shapes runes[start:end] and accumulates the glyphs onto their
// cluster slots. Slots a ligature swallows keep a zero advance.
func (g *Generator) shapeRun(out []slotGlyph, runes []rune, start, end int, face Face) {
	glyphs := g.shaper.Shape(string(runes[start:end]), face)

	origin := make(map[int]float64, end-start)
	for _, sg := range glyphs {
		slot := start + sg.Cluster
		if slot < start || slot >= end {
			continue
		}
		x0, seen := origin[slot]
		if !seen {
			x0 = sg.X
			origin[slot] = x0
		}

		sl := &out[slot]
		sl.advance += sg.XAdvance

		ink := face.GlyphBounds(sg.GID)
		if !ink.HasArea() {
			continue
		}
		ink = ink.Translate(geom.V2(float32(sg.X-x0), float32(-sg.Y)))
		if sl.hasInk {
			ink = sl.ink.Encapsulate(ink.Min).Encapsulate(ink.Max)
		}
		sl.ink = ink
		sl.hasInk = true
	}
}

// measureLines computes the vertical metrics and width of each line.
func measureLines(spans []lineSpan, slots []markup.Slot, runes []rune, advances []float64, m Metrics, sf float64) []line {
	lines := make([]line, len(spans))
	for i, sp := range spans {
		ln := line{lineSpan: sp, ascent: m.Ascent, descent: m.Descent}

		// Trailing whitespace does not count toward the aligned width.
		last := sp.end
		for last > sp.start && unicode.IsSpace(runes[last-1]) {
			last--
		}
		for j := sp.start; j < sp.end; j++ {
			if slots[j].Quad {
				ln.ascent = max(ln.ascent, float64(slots[j].Size)*sf)
			}
			if j < last {
				ln.width += advances[j]
			}
		}
		lines[i] = ln
	}
	return lines
}

func alignOffset(a Alignment, container, width float64) float64 {
	var offset float64
	switch a {
	case AlignCenter:
		offset = (container - width) / 2
	case AlignRight:
		offset = container - width
	}
	return max(offset, 0)
}

// slotQuad returns the quad of one slot with its pen at (pen, y).
func slotQuad(sl markup.Slot, gl slotGlyph, pen, y float64, sf float32, s Settings) Quad {
	c := s.Color
	if sl.Colored {
		c = sl.Color
	}

	origin := geom.V2(float32(pen), float32(y))
	switch {
	case sl.Quad:
		size := sl.Size * sf
		return NewQuad(geom.Rect{Min: origin.Sub(geom.V2(0, size)), Max: origin.Add(geom.V2(size, 0))}, c)
	case gl.hasInk:
		return NewQuad(gl.ink.Translate(origin), c)
	default:
		// Blank glyphs span their advance on the baseline.
		return NewQuad(geom.Rect{Min: origin, Max: origin.Add(geom.V2(float32(gl.advance), 0))}, c)
	}
}
