package layout

import (
	"image/color"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/raster"
)

// underlineText is the glyph whose quad serves as the underline template.
const underlineText = "_"

// ReferenceQuad rasterizes the underline template glyph with s and scales it
// to layout units. The quad is a template for Underlines and is never drawn
// itself. It is the zero Quad when r produces no glyph.
func ReferenceQuad(r raster.Rasterizer, s raster.Settings, ppu float32) raster.Quad {
	// The template must not be wrapped or truncated away.
	s.Extents = geom.Vec2{}
	s.Truncate = false

	verts := r.Populate(markup.Plain(underlineText), s)
	if len(verts) < 8 {
		return raster.Quad{}
	}
	if ppu <= 0 {
		ppu = 1
	}
	return raster.QuadAt(verts, 0).Scale(1 / ppu)
}

// Underlines returns three quads per link box (left cap, middle, right cap)
// forming a bar under the box, textured from ref and colored c.
//
// Each cap is the full width of ref, not half of it, and the middle spans
// the rest. A box narrower than two ref widths therefore gets a middle of
// negative width and overlapping caps. The bar is as tall as ref with its
// bottom one unit below the box.
func Underlines(links []markup.HrefTag, ref raster.Quad, c color.RGBA) []raster.Vertex {
	var n int
	for _, tag := range links {
		n += len(tag.Boxes)
	}
	if n == 0 {
		return nil
	}

	size := ref.Size()
	uvTL, uvTR := ref[raster.TopLeft].UV, ref[raster.TopRight].UV
	uvBR, uvBL := ref[raster.BottomRight].UV, ref[raster.BottomLeft].UV
	topCenter := uvTL.Lerp(uvTR, 0.5)
	bottomCenter := uvBL.Lerp(uvBR, 0.5)

	out := make([]raster.Vertex, 0, n*12)
	for _, tag := range links {
		for _, box := range tag.Boxes {
			if !box.HasArea() {
				continue
			}
			bottom := box.Max.Y + 1
			top := bottom - size.Y

			left := box.Min.X
			midLeft := left + size.X
			right := box.Max.X
			midRight := right - size.X

			out = appendQuad(out, c,
				[4]float32{left, midLeft, top, bottom},
				[4]geom.Vec2{uvTL, topCenter, bottomCenter, uvBL})
			out = appendQuad(out, c,
				[4]float32{midLeft, midRight, top, bottom},
				[4]geom.Vec2{topCenter, topCenter, bottomCenter, bottomCenter})
			out = appendQuad(out, c,
				[4]float32{midRight, right, top, bottom},
				[4]geom.Vec2{topCenter, uvTR, uvBR, bottomCenter})
		}
	}
	return out
}

// appendQuad appends the quad spanning x0..x1, y0..y1 (given as
// {x0, x1, y0, y1}) with uvs in corner order.
func appendQuad(dst []raster.Vertex, c color.RGBA, e [4]float32, uvs [4]geom.Vec2) []raster.Vertex {
	x0, x1, y0, y1 := e[0], e[1], e[2], e[3]
	return append(dst,
		raster.Vertex{Pos: geom.V2(x0, y0), UV: uvs[raster.TopLeft], Color: c},
		raster.Vertex{Pos: geom.V2(x1, y0), UV: uvs[raster.TopRight], Color: c},
		raster.Vertex{Pos: geom.V2(x1, y1), UV: uvs[raster.BottomRight], Color: c},
		raster.Vertex{Pos: geom.V2(x0, y1), UV: uvs[raster.BottomLeft], Color: c},
	)
}
