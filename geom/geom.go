// Package geom provides the small float32 geometry vocabulary shared by the
// richtext packages: points in local layout space and axis-aligned boxes.
//
// Local layout space is y-down with the origin at the top-left corner of the
// text container, matching image.Rectangle conventions.
package geom

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or vector in local layout space.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp linearly interpolates between v and w.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Round rounds both components to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math32.Round(v.X), Y: math32.Round(v.Y)}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle defined by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// RectAt returns a zero-size rectangle located at p.
func RectAt(p Vec2) Rect {
	return Rect{Min: p, Max: p}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Size().Mul(0.5))
}

// HasArea reports whether both the width and the height are strictly positive.
func (r Rect) HasArea() bool {
	return r.Width() > 0 && r.Height() > 0
}

// Encapsulate grows the rectangle so that it contains p.
func (r Rect) Encapsulate(p Vec2) Rect {
	return Rect{
		Min: Vec2{X: math32.Min(r.Min.X, p.X), Y: math32.Min(r.Min.Y, p.Y)},
		Max: Vec2{X: math32.Max(r.Max.X, p.X), Y: math32.Max(r.Max.Y, p.Y)},
	}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Contains reports whether p lies inside the rectangle.
// Min edges are inclusive and max edges exclusive, like image.Rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Bounds returns the smallest rectangle containing all points.
// It returns the zero Rect when pts is empty.
func Bounds(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := RectAt(pts[0])
	for _, p := range pts[1:] {
		r = r.Encapsulate(p)
	}
	return r
}
