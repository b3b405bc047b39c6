package layout

import (
	"image/color"
	"testing"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
)

var black = color.RGBA{A: 255}

func rect(x0, y0, x1, y1 float32) geom.Rect {
	return geom.Rect{Min: geom.V2(x0, y0), Max: geom.V2(x1, y1)}
}

// stream builds a rasterizer-like vertex stream: one quad per rect plus the
// trailing zero-size quad at end.
func stream(end geom.Vec2, rects ...geom.Rect) []raster.Vertex {
	quads := make([]raster.Quad, 0, len(rects)+1)
	for _, r := range rects {
		quads = append(quads, raster.NewQuad(r, black))
	}
	quads = append(quads, raster.NewQuad(geom.RectAt(end), black))
	return raster.Flatten(quads)
}

func TestReconcile_SuppressesPlaceholders(t *testing.T) {
	verts := stream(geom.V2(50, 20),
		rect(0, 0, 10, 20), rect(10, 0, 30, 20), rect(30, 0, 40, 20))
	tags := []markup.EmojiTag{{CharIndex: 1}}

	out := Reconcile(verts, tags, nil, Options{PixelsPerUnit: 1})

	if len(out.Mesh) != 12 {
		t.Fatalf("mesh = %d vertices, want 12 (trailing quad dropped)", len(out.Mesh))
	}
	for k := 4; k < 8; k++ {
		if out.Mesh[k].UV != (geom.Vec2{}) || out.Mesh[k].Color != (color.RGBA{}) {
			t.Errorf("placeholder vertex %d = %+v, want zero UV and transparent", k, out.Mesh[k])
		}
	}
	for _, k := range []int{0, 3, 8, 11} {
		if out.Mesh[k].Color != black {
			t.Errorf("glyph vertex %d color changed", k)
		}
	}
	if verts[4].Color != black {
		t.Error("input vertices were modified")
	}
	if out.Truncated {
		t.Error("Truncated set without truncation")
	}
}

func TestReconcile_Scale(t *testing.T) {
	verts := stream(geom.V2(8, 8), rect(2, 4, 6, 8))
	out := Reconcile(verts, nil, nil, Options{PixelsPerUnit: 2})

	if got := out.Mesh[raster.TopLeft].Pos; got != geom.V2(1, 2) {
		t.Errorf("top-left = %v, want (1,2)", got)
	}
	if got := out.Mesh[raster.BottomRight].Pos; got != geom.V2(3, 4) {
		t.Errorf("bottom-right = %v, want (3,4)", got)
	}

	// A zero scale is treated as 1.
	out = Reconcile(verts, nil, nil, Options{})
	if got := out.Mesh[raster.BottomRight].Pos; got != geom.V2(6, 8) {
		t.Errorf("unscaled bottom-right = %v, want (6,8)", got)
	}
}

func TestReconcile_PixelSnap(t *testing.T) {
	verts := stream(geom.V2(20, 20), rect(1.25, 0.75, 11.25, 10.75))

	out := Reconcile(verts, nil, nil, Options{PixelsPerUnit: 1, PixelSnap: true})
	if got := out.Mesh[raster.TopLeft].Pos; got != geom.V2(1, 1) {
		t.Errorf("snapped top-left = %v, want (1,1)", got)
	}
	if got := out.Mesh[raster.BottomRight].Pos; got != geom.V2(11, 11) {
		t.Errorf("snapped bottom-right = %v, want (11,11), the same offset", got)
	}

	// Snapping happens on the pixel grid: pixel 1.25 rounds to 1, which is
	// 0.5 units at two pixels per unit.
	out = Reconcile(verts, nil, nil, Options{PixelsPerUnit: 2, PixelSnap: true})
	if got := out.Mesh[raster.TopLeft].Pos; got != geom.V2(0.5, 0.5) {
		t.Errorf("snapped top-left at ppu 2 = %v, want (0.5,0.5)", got)
	}
}

func TestReconcile_Placements(t *testing.T) {
	verts := stream(geom.V2(60, 20),
		rect(0, 0, 10, 20), rect(10, 0, 30, 20))
	tags := []markup.EmojiTag{{CharIndex: 1}, {CharIndex: 5}}

	out := Reconcile(verts, tags, nil, Options{PixelsPerUnit: 2})

	if len(out.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(out.Placements))
	}
	p := out.Placements[0]
	if !p.Visible || p.Index != 0 || p.Position != geom.V2(10, 5) {
		t.Errorf("placement 0 = %+v, want visible at (10,5)", p)
	}
	if q := out.Placements[1]; q.Visible || q.Index != 1 {
		t.Errorf("placement 1 = %+v, want hidden", q)
	}
	if !out.Truncated {
		t.Error("Truncated not set for a tag past the text")
	}
}

func TestReconcile_TrailingQuadIsNotAPlaceholder(t *testing.T) {
	verts := stream(geom.V2(10, 20), rect(0, 0, 10, 20))
	out := Reconcile(verts, []markup.EmojiTag{{CharIndex: 1}}, nil, Options{PixelsPerUnit: 1})
	if out.Placements[0].Visible {
		t.Error("placement on the trailing quad is visible")
	}
}

func TestReconcile_SuppressionStopsAtFirstMissingQuad(t *testing.T) {
	verts := stream(geom.V2(30, 20), rect(0, 0, 10, 20), rect(10, 0, 20, 20), rect(20, 0, 30, 20))
	// Out of order on purpose: the second tag is missing, so the third is
	// never suppressed even though its quad exists.
	tags := []markup.EmojiTag{{CharIndex: 0}, {CharIndex: 9}, {CharIndex: 2}}

	out := Reconcile(verts, tags, nil, Options{PixelsPerUnit: 1})
	if out.Mesh[0].Color != (color.RGBA{}) {
		t.Error("first placeholder not suppressed")
	}
	if out.Mesh[8].Color != black {
		t.Error("tag after the missing one was suppressed")
	}
	if !out.Truncated {
		t.Error("Truncated not set")
	}
}

func TestReconcile_LinkBoxes(t *testing.T) {
	// Two lines: "ab" on top, "c" below starting further left, then a blank.
	verts := stream(geom.V2(20, 22),
		rect(5, 0, 10, 10), rect(10, 2, 20, 10),
		rect(0, 12, 10, 22), rect(10, 22, 14, 22))
	links := []markup.HrefTag{{Begin: 0, End: 3, Target: "t"}}

	out := Reconcile(verts, nil, links, Options{PixelsPerUnit: 1})

	boxes := out.Links[0].Boxes
	want := []geom.Rect{rect(5, 0, 20, 10), rect(0, 12, 10, 22)}
	if len(boxes) != len(want) {
		t.Fatalf("boxes = %v, want %v", boxes, want)
	}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d = %v, want %v", i, boxes[i], want[i])
		}
	}
	if links[0].Boxes != nil {
		t.Error("input tags were modified")
	}
	if out.Links[0].Target != "t" || out.Links[0].Begin != 0 || out.Links[0].End != 3 {
		t.Errorf("tag fields changed: %+v", out.Links[0])
	}
}

func TestReconcile_LinkBoxesDropDegenerate(t *testing.T) {
	// A link over blank glyphs has no area.
	verts := stream(geom.V2(20, 10), rect(0, 10, 5, 10), rect(5, 10, 10, 10))
	out := Reconcile(verts, nil, []markup.HrefTag{{Begin: 0, End: 2}}, Options{PixelsPerUnit: 1})
	if len(out.Links[0].Boxes) != 0 {
		t.Errorf("boxes = %v, want none", out.Links[0].Boxes)
	}
}

func TestReconcile_LinkPastTextStopsLaterLinks(t *testing.T) {
	verts := stream(geom.V2(20, 10), rect(0, 0, 10, 10), rect(10, 0, 20, 10))
	links := []markup.HrefTag{
		{Begin: 1, End: 9, Target: "clamped"},
		{Begin: 4, End: 5, Target: "missing"},
		{Begin: 0, End: 1, Target: "after"},
	}

	out := Reconcile(verts, nil, links, Options{PixelsPerUnit: 1})

	if got := out.Links[0].Boxes; len(got) != 1 || got[0] != rect(10, 0, 20, 10) {
		t.Errorf("clamped link boxes = %v", got)
	}
	if len(out.Links[1].Boxes) != 0 || len(out.Links[2].Boxes) != 0 {
		t.Error("links after the missing one got boxes")
	}
	if !out.Truncated {
		t.Error("Truncated not set")
	}
}

func TestReconcile_EmptyLinkAtEndIsLaidOut(t *testing.T) {
	verts := stream(geom.V2(20, 10), rect(0, 0, 10, 10), rect(10, 0, 20, 10))
	links := []markup.HrefTag{{Begin: 2, End: 2, Target: "x"}}

	out := Reconcile(verts, nil, links, Options{PixelsPerUnit: 1})
	if out.Truncated {
		t.Error("empty link after the last slot reported truncation")
	}
	if len(out.Links[0].Boxes) != 0 {
		t.Errorf("boxes = %v, want none", out.Links[0].Boxes)
	}

	// A link with slots starting at the same place was cut off.
	links[0].End = 3
	if out := Reconcile(verts, nil, links, Options{PixelsPerUnit: 1}); !out.Truncated {
		t.Error("link with slots past the text not reported as truncated")
	}
}

func TestReconcile_Empty(t *testing.T) {
	out := Reconcile(nil, []markup.EmojiTag{{CharIndex: 0}}, []markup.HrefTag{{Begin: 0, End: 1}}, Options{})
	if len(out.Mesh) != 0 || out.Placements[0].Visible || len(out.Links[0].Boxes) != 0 || !out.Truncated {
		t.Errorf("Reconcile(nil) = %+v", out)
	}
}
