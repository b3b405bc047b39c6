package raster

import (
	"image/color"

	"github.com/gogpu/richtext/geom"
)

// Vertex is one corner of a glyph quad.
type Vertex struct {
	Pos   geom.Vec2
	UV    geom.Vec2
	Color color.RGBA
}

// Corner indices within a Quad.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quad is four vertices in TopLeft, TopRight, BottomRight, BottomLeft order.
type Quad [4]Vertex

// Unit texture coordinates assigned to every emitted quad.
var unitUV = [4]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// NewQuad returns the axis-aligned quad covering r with unit UVs.
func NewQuad(r geom.Rect, c color.RGBA) Quad {
	return Quad{
		{Pos: r.Min, UV: unitUV[TopLeft], Color: c},
		{Pos: geom.V2(r.Max.X, r.Min.Y), UV: unitUV[TopRight], Color: c},
		{Pos: r.Max, UV: unitUV[BottomRight], Color: c},
		{Pos: geom.V2(r.Min.X, r.Max.Y), UV: unitUV[BottomLeft], Color: c},
	}
}

// QuadAt returns the i-th quad of verts. It panics if the quad is out of range.
func QuadAt(verts []Vertex, i int) Quad {
	var q Quad
	copy(q[:], verts[i*4:i*4+4])
	return q
}

// Bounds returns the bounding box of the quad's positions.
func (q Quad) Bounds() geom.Rect {
	return geom.Bounds(q[0].Pos, q[1].Pos, q[2].Pos, q[3].Pos)
}

// Size returns the extent of the quad along both axes.
func (q Quad) Size() geom.Vec2 {
	return q.Bounds().Size()
}

// Scale returns q with every position multiplied by f.
func (q Quad) Scale(f float32) Quad {
	for i := range q {
		q[i].Pos = q[i].Pos.Mul(f)
	}
	return q
}

// Flatten returns the vertices of quads in order.
func Flatten(quads []Quad) []Vertex {
	out := make([]Vertex, 0, len(quads)*4)
	for i := range quads {
		out = append(out, quads[i][:]...)
	}
	return out
}
