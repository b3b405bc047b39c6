package raster

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/markup"
)

func testSource(t *testing.T) *FontSource {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	return src
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func quadCount(t *testing.T, verts []Vertex) int {
	t.Helper()
	if len(verts)%4 != 0 {
		t.Fatalf("vertex count %d is not a multiple of 4", len(verts))
	}
	return len(verts) / 4
}

func TestNewFontSource(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded")
	}
	if _, err := NewFontSourceFromFile("does/not/exist.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) succeeded")
	}

	src := testSource(t)
	if src.Name() != "Go" {
		t.Errorf("Name() = %q, want Go", src.Name())
	}
	if !src.Face(16).HasGlyph('A') {
		t.Error("Go Regular has no glyph for 'A'")
	}
}

func TestGenerator_OneQuadPerSlotPlusTrailing(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))

	tests := []struct {
		name string
		d    markup.Decorated
	}{
		{"empty", nil},
		{"plain", markup.Plain("hello")},
		{"spaces", markup.Plain("a b  c")},
		{"newlines", markup.Plain("a\nb\n")},
		{"tab", markup.Plain("a\tb")},
		{"placeholder", markup.Decorated{{Kind: markup.SpanText, Text: "x"}, {Kind: markup.SpanQuad, Size: 20}}},
		{"missing glyph", markup.Plain("aகb")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts := gen.Populate(tt.d, s)
			if got, want := quadCount(t, verts), tt.d.Len()+1; got != want {
				t.Errorf("quads = %d, want %d", got, want)
			}
			trailing := QuadAt(verts, len(verts)/4-1)
			if size := trailing.Size(); size != (geom.Vec2{}) {
				t.Errorf("trailing quad size = %v, want zero", size)
			}
		})
	}
}

func TestGenerator_NoFont(t *testing.T) {
	gen := NewGenerator()
	var s Settings
	if verts := gen.Populate(markup.Plain("x"), s); verts != nil {
		t.Errorf("Populate without font = %d vertices, want nil", len(verts))
	}
	if w := gen.PreferredWidth(markup.Plain("x"), s); w != 0 {
		t.Errorf("PreferredWidth without font = %v", w)
	}
}

func TestGenerator_QuadOrderAndUV(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	verts := gen.Populate(markup.Plain("AV"), s)

	a := QuadAt(verts, 0)
	if a[TopLeft].Pos.X >= a[TopRight].Pos.X || a[TopLeft].Pos.Y >= a[BottomLeft].Pos.Y {
		t.Errorf("quad corners out of order: %+v", a)
	}
	if a[TopLeft].UV != geom.V2(0, 0) || a[BottomRight].UV != geom.V2(1, 1) {
		t.Errorf("UVs = %v %v", a[TopLeft].UV, a[BottomRight].UV)
	}
	if a[0].Color != s.Color {
		t.Errorf("color = %v, want %v", a[0].Color, s.Color)
	}

	v := QuadAt(verts, 1)
	if v.Bounds().Min.X <= a.Bounds().Min.X {
		t.Error("second glyph is not right of the first")
	}
}

func TestGenerator_Placeholder(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	d := markup.Decorated{
		{Kind: markup.SpanText, Text: "a"},
		{Kind: markup.SpanQuad, Size: 20},
		{Kind: markup.SpanText, Text: "b"},
	}

	for _, sf := range []float32{1, 2} {
		s.ScaleFactor = sf
		verts := gen.Populate(d, s)
		q := QuadAt(verts, 1).Bounds()
		if !near(q.Width(), 20*sf) || !near(q.Height(), 20*sf) {
			t.Errorf("scale %v: placeholder size = %v, want %v", sf, q.Size(), 20*sf)
		}
		b := QuadAt(verts, 2).Bounds()
		if b.Min.X < q.Max.X-0.01 {
			t.Errorf("scale %v: glyph after placeholder starts at %v, before %v", sf, b.Min.X, q.Max.X)
		}
	}
}

func TestGenerator_ColoredSlots(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	blue := color.RGBA{B: 255, A: 255}
	d := markup.Decorated{
		{Kind: markup.SpanText, Text: "a"},
		{Kind: markup.SpanColor, Text: "b", Color: blue},
	}
	verts := gen.Populate(d, s)
	if verts[0].Color != s.Color {
		t.Errorf("plain color = %v", verts[0].Color)
	}
	if verts[4].Color != blue {
		t.Errorf("colored color = %v", verts[4].Color)
	}
}

func TestGenerator_Wrap(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	d := markup.Plain("hello world")

	s.Extents = geom.V2(gen.PreferredWidth(d, s)-1, 0)
	verts := gen.Populate(d, s)

	h := QuadAt(verts, 0).Bounds()
	o := QuadAt(verts, 4).Bounds()
	w := QuadAt(verts, 6).Bounds()
	if w.Min.X >= o.Min.X {
		t.Errorf("second line does not restart at the left: w.x=%v o.x=%v", w.Min.X, o.Min.X)
	}
	if w.Max.Y <= h.Max.Y {
		t.Errorf("second line is not below the first: %v <= %v", w.Max.Y, h.Max.Y)
	}

	oneLine := gen.PreferredHeight(markup.Plain("hello"), s)
	twoLines := gen.PreferredHeight(d, s)
	if twoLines <= oneLine {
		t.Errorf("PreferredHeight two lines = %v, one line = %v", twoLines, oneLine)
	}
}

func TestGenerator_HardBreak(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	verts := gen.Populate(markup.Plain("a\nb"), s)

	a := QuadAt(verts, 0).Bounds()
	b := QuadAt(verts, 2).Bounds()
	if b.Min.Y <= a.Min.Y {
		t.Errorf("line after newline is not lower: %v <= %v", b.Min.Y, a.Min.Y)
	}
	if nl := QuadAt(verts, 1).Size(); nl != (geom.Vec2{}) {
		t.Errorf("newline quad size = %v, want zero", nl)
	}
}

func TestGenerator_Truncate(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	d := markup.Plain("one\ntwo\nthree\nfour")

	full := quadCount(t, gen.Populate(d, s))

	s.Extents = geom.V2(0, gen.PreferredHeight(markup.Plain("one\ntwo"), s)+1)
	s.Truncate = true
	got := quadCount(t, gen.Populate(d, s))

	// "one\ntwo\n" plus the trailing quad.
	if got != 9 {
		t.Errorf("truncated quads = %d, want 9 (full %d)", got, full)
	}

	s.Extents.Y = 1
	if got := quadCount(t, gen.Populate(d, s)); got != 1 {
		t.Errorf("fully truncated quads = %d, want only the trailing quad", got)
	}

	// Without Truncate the extents do not drop lines.
	s.Truncate = false
	if got := quadCount(t, gen.Populate(d, s)); got != full {
		t.Errorf("untruncated quads = %d, want %d", got, full)
	}
}

func TestGenerator_AlignRight(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	s.Extents = geom.V2(200, 0)
	s.Align = AlignRight

	verts := gen.Populate(markup.Plain("ab"), s)
	right := QuadAt(verts, 1).Bounds().Max.X
	if right > 200 || right < 190 {
		t.Errorf("right aligned text ends at %v, want close to 200", right)
	}

	s.Align = AlignCenter
	verts = gen.Populate(markup.Plain("ab"), s)
	left := QuadAt(verts, 0).Bounds().Min.X
	if left < 80 || left > 100 {
		t.Errorf("centered text starts at %v", left)
	}
}

func TestGenerator_PreferredWidth(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))

	short := gen.PreferredWidth(markup.Plain("ab"), s)
	long := gen.PreferredWidth(markup.Plain("abab"), s)
	if short <= 0 || math.Abs(float64(long-2*short)) > 0.5 {
		t.Errorf("PreferredWidth ab=%v abab=%v", short, long)
	}

	s.Extents = geom.V2(1, 0)
	if got := gen.PreferredWidth(markup.Plain("ab"), s); got != short {
		t.Errorf("PreferredWidth depends on container width: %v != %v", got, short)
	}

	s.ScaleFactor = 2
	if got := gen.PreferredWidth(markup.Plain("ab"), s); math.Abs(float64(got-2*short)) > 0.5 {
		t.Errorf("PreferredWidth at scale 2 = %v, want about %v", got, 2*short)
	}
}

func TestGenerator_CacheReturnsCopies(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))
	d := markup.Plain("cache")

	first := gen.Populate(d, s)
	first[0].Pos = geom.V2(-1000, -1000)

	second := gen.Populate(d, s)
	if second[0].Pos == first[0].Pos {
		t.Error("mutating a result changed the cached layout")
	}
	if gen.cache.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", gen.cache.Len())
	}

	uncached := NewGenerator(WithCacheSize(0))
	if uncached.cache != nil {
		t.Error("WithCacheSize(0) kept a cache")
	}
	if got := uncached.Populate(d, s); len(got) != len(second) {
		t.Errorf("uncached vertices = %d, want %d", len(got), len(second))
	}
}

func TestGenerator_CacheSeparatesLiteralTagText(t *testing.T) {
	gen := NewGenerator()
	s := DefaultSettings(testSource(t))

	link := markup.Decorated{{Kind: markup.SpanColor, Text: "hi", Color: color.RGBA{B: 255, A: 255}}}
	literal := markup.Plain("<color=#0000ffff>hi</color>")

	for _, d := range []markup.Decorated{link, literal, link} {
		if got, want := quadCount(t, gen.Populate(d, s)), d.Len()+1; got != want {
			t.Errorf("%q: quads = %d, want %d", d, got, want)
		}
	}
	if gen.cache.Len() != 2 {
		t.Errorf("cache entries = %d, want 2", gen.cache.Len())
	}
}

func TestGoTextShaper_KeepsOneQuadPerSlot(t *testing.T) {
	gen := NewGenerator(WithShaper(NewGoTextShaper()))
	s := DefaultSettings(testSource(t))

	for _, text := range []string{"office", "AVATAR", "fi fl"} {
		verts := gen.Populate(markup.Plain(text), s)
		if got, want := quadCount(t, verts), len([]rune(text))+1; got != want {
			t.Errorf("%q: quads = %d, want %d", text, got, want)
		}
	}
}

func TestGoTextShaper_Shape(t *testing.T) {
	shaper := NewGoTextShaper()
	face := testSource(t).Face(16)

	glyphs := shaper.Shape("Hello", face)
	if len(glyphs) == 0 {
		t.Fatal("no glyphs")
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d not advancing: %v <= %v", i, glyphs[i].X, glyphs[i-1].X)
		}
		if glyphs[i].Cluster <= glyphs[i-1].Cluster {
			t.Errorf("glyph %d cluster not increasing", i)
		}
	}
	if shaper.Shape("", face) != nil {
		t.Error("empty text shaped")
	}

	shaper.RemoveSource(face.Source)
	if len(shaper.Shape("x", face)) != 1 {
		t.Error("shaping after RemoveSource failed")
	}
}

func TestBuiltinShaper_Shape(t *testing.T) {
	face := testSource(t).Face(16)
	glyphs := BuiltinShaper{}.Shape("héllo", face)
	if len(glyphs) != 5 {
		t.Fatalf("glyphs = %d, want 5", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d cluster = %d", i, g.Cluster)
		}
	}
}

func TestHasRightToLeft(t *testing.T) {
	if hasRightToLeft("hello") {
		t.Error("latin reported as right-to-left")
	}
	if !hasRightToLeft("abc אבג") {
		t.Error("hebrew not detected")
	}
}
