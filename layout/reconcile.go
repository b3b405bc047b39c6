package layout

import (
	"image/color"
	"slices"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/internal/logx"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
)

// Options configures Reconcile.
type Options struct {
	// PixelsPerUnit is the rasterizer's scale factor. Vertex positions are
	// divided by it. Zero or negative means 1.
	PixelsPerUnit float32

	// PixelSnap shifts the whole mesh so that its first vertex lands on a
	// pixel boundary.
	PixelSnap bool
}

func (o Options) ppu() float32 {
	if o.PixelsPerUnit <= 0 {
		return 1
	}
	return o.PixelsPerUnit
}

// Placement says where the overlay of one emoji tag goes.
type Placement struct {
	// Index is the position of the tag in the emoji table.
	Index int

	// Position is the center of the placeholder quad in layout units.
	Position geom.Vec2

	// Visible is false when the placeholder was not laid out.
	Visible bool
}

// Output is the result of Reconcile.
type Output struct {
	// Mesh is the display mesh in layout units, without the trailing quad.
	Mesh []raster.Vertex

	// Placements has one entry per emoji tag, in table order.
	Placements []Placement

	// Links has one entry per href tag, in table order, with Boxes filled.
	Links []markup.HrefTag

	// Truncated reports that some tags fell outside the laid out text.
	Truncated bool
}

// Reconcile turns raw rasterizer output into the display mesh and the
// geometry of the tags. verts is not modified.
func Reconcile(verts []raster.Vertex, emojis []markup.EmojiTag, links []markup.HrefTag, opts Options) Output {
	var out Output
	mesh := slices.Clone(verts)

	out.Truncated = !suppressQuads(mesh, emojis)

	ppu := opts.ppu()
	scaleMesh(mesh, ppu, opts.PixelSnap)

	out.Placements = placeEmoji(mesh, emojis)

	var ok bool
	out.Links, ok = linkBoxes(mesh, links)
	if !ok {
		out.Truncated = true
	}

	if len(mesh) >= 4 {
		mesh = mesh[:len(mesh)-4]
	}
	out.Mesh = mesh
	return out
}

// suppressQuads makes the placeholder quad of every emoji tag invisible.
// It stops at the first tag without a quad and reports whether all tags
// were handled.
func suppressQuads(mesh []raster.Vertex, emojis []markup.EmojiTag) bool {
	for i, tag := range emojis {
		start := tag.CharIndex * 4
		if start < 0 || start+4 > len(mesh) {
			logx.L().Debug("layout: emoji placeholder not laid out",
				"tag", i, "index", tag.CharIndex, "vertices", len(mesh))
			return false
		}
		for k := start; k < start+4; k++ {
			mesh[k].UV = geom.Vec2{}
			mesh[k].Color = color.RGBA{}
		}
	}
	return true
}

// scaleMesh divides every position by ppu. With snap, one offset that
// rounds the first vertex to the pixel grid is added to every vertex.
func scaleMesh(mesh []raster.Vertex, ppu float32, snap bool) {
	inv := 1 / ppu
	for i := range mesh {
		mesh[i].Pos = mesh[i].Pos.Mul(inv)
	}
	if !snap || len(mesh) == 0 {
		return
	}

	first := mesh[0].Pos
	offset := first.Mul(ppu).Round().Mul(inv).Sub(first)
	if offset.IsZero() {
		return
	}
	for i := range mesh {
		mesh[i].Pos = mesh[i].Pos.Add(offset)
	}
}

// placeEmoji centers each tag on its placeholder quad. The trailing quad
// is never a placeholder.
func placeEmoji(mesh []raster.Vertex, emojis []markup.EmojiTag) []Placement {
	if len(emojis) == 0 {
		return nil
	}

	out := make([]Placement, len(emojis))
	for i, tag := range emojis {
		out[i] = Placement{Index: i}
		start := tag.CharIndex * 4
		if start < 0 || start+4 >= len(mesh) {
			continue
		}
		out[i].Position = raster.QuadAt(mesh, tag.CharIndex).Bounds().Center()
		out[i].Visible = true
	}
	return out
}

// linkBoxes returns a copy of links with one box per visual line. Once a
// tag has slots but none of them was laid out, it and every later tag get
// no boxes and ok is false.
func linkBoxes(mesh []raster.Vertex, links []markup.HrefTag) (out []markup.HrefTag, ok bool) {
	if len(links) == 0 {
		return nil, true
	}

	usable := max(len(mesh)-4, 0)
	out = make([]markup.HrefTag, len(links))
	ok = true
	for i, tag := range links {
		out[i] = tag.WithBoxes(nil)
		if !ok {
			continue
		}

		// An empty link right after the last slot is laid out; it just
		// has no boxes.
		begin := tag.Begin * 4
		if begin < 0 || begin > usable || (begin == usable && tag.End > tag.Begin) {
			logx.L().Debug("layout: link not laid out", "tag", i, "begin", tag.Begin)
			ok = false
			continue
		}
		end := min(tag.End*4, usable)
		if end > begin {
			out[i] = tag.WithBoxes(splitBoxes(mesh[begin:end]))
		}
	}
	return out, ok
}

// splitBoxes grows a box over vs and starts a new one whenever a vertex lies
// left of the current box, which is where a line wrapped. Boxes without
// area are dropped.
func splitBoxes(vs []raster.Vertex) []geom.Rect {
	var boxes []geom.Rect
	commit := func(r geom.Rect) {
		if r.HasArea() {
			boxes = append(boxes, r)
			return
		}
		logx.L().Debug("layout: dropped degenerate link box", "box", r)
	}

	box := geom.RectAt(vs[0].Pos)
	for _, v := range vs[1:] {
		if v.Pos.X < box.Min.X {
			commit(box)
			box = geom.RectAt(v.Pos)
			continue
		}
		box = box.Encapsulate(v.Pos)
	}
	commit(box)
	return boxes
}
