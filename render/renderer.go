// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/overlay"
	"github.com/gogpu/richtext/raster"
)

// ErrNilTarget is returned by Render without a target.
var ErrNilTarget = errors.New("render: nil target")

// Renderer rasterizes scenes on the CPU.
//
// Quads are filled with golang.org/x/image/vector; emoji frames are scaled
// into place with an x/image/draw interpolator. A Renderer reuses its
// scanline buffers and is not safe for concurrent use.
type Renderer struct {
	scale  float32
	origin geom.Vec2
	interp draw.Interpolator

	rast *vector.Rasterizer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScale sets the number of target pixels per layout unit.
// Zero or negative means 1.
func WithScale(s float32) Option {
	return func(r *Renderer) {
		r.scale = s
	}
}

// WithOrigin sets the pixel position of the layout origin.
func WithOrigin(p geom.Vec2) Option {
	return func(r *Renderer) {
		r.origin = p
	}
}

// WithInterpolator sets the interpolator used for emoji frames.
// Defaults to draw.ApproxBiLinear.
func WithInterpolator(i draw.Interpolator) Option {
	return func(r *Renderer) {
		r.interp = i
	}
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		scale:  1,
		interp: draw.ApproxBiLinear,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	return r
}

// Render draws the scene to the target in command order.
func (r *Renderer) Render(target *PixmapTarget, scene *Scene) error {
	if target == nil {
		return ErrNilTarget
	}
	if scene == nil || scene.IsEmpty() {
		return nil
	}

	img := target.Image()
	r.ensureRasterizer(target.Width(), target.Height())

	for _, cmd := range scene.drawCommands() {
		switch cmd.op {
		case opClear:
			target.Clear(cmd.color)
		case opMesh:
			r.renderMesh(img, cmd.mesh)
		case opOverlays:
			r.renderOverlays(img, cmd.slots)
		}
	}
	return nil
}

// ensureRasterizer ensures the rasterizer is sized for the target.
func (r *Renderer) ensureRasterizer(width, height int) {
	if r.rast == nil {
		r.rast = vector.NewRasterizer(width, height)
		return
	}
	if s := r.rast.Size(); s.X != width || s.Y != height {
		r.rast.Reset(width, height)
	}
}

// toPixel maps a layout position to target pixels.
func (r *Renderer) toPixel(p geom.Vec2) geom.Vec2 {
	return p.Mul(r.scale).Add(r.origin)
}

// renderMesh fills every visible quad with its top-left vertex color.
func (r *Renderer) renderMesh(img *image.RGBA, verts []raster.Vertex) {
	size := r.rast.Size()
	for i := 0; i+4 <= len(verts); i += 4 {
		q := raster.QuadAt(verts, i/4)
		c := q[raster.TopLeft].Color
		if c.A == 0 || !q.Bounds().HasArea() {
			continue
		}

		r.rast.Reset(size.X, size.Y)
		r.rast.DrawOp = draw.Over
		p := r.toPixel(q[0].Pos)
		r.rast.MoveTo(p.X, p.Y)
		for _, v := range q[1:] {
			p = r.toPixel(v.Pos)
			r.rast.LineTo(p.X, p.Y)
		}
		r.rast.ClosePath()
		r.rast.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}
}

// renderOverlays scales the first frame of every drawn slot into a box of
// the emoji's size centered on the slot position.
func (r *Renderer) renderOverlays(img *image.RGBA, slots []overlay.Slot) {
	for _, s := range slots {
		if !s.Drawn() {
			continue
		}
		frame := s.Emoji.First()
		if frame == nil {
			continue
		}
		half := s.Emoji.Size().Mul(0.5)
		lo := r.toPixel(s.Position.Sub(half)).Round()
		hi := r.toPixel(s.Position.Add(half)).Round()
		dr := image.Rect(int(lo.X), int(lo.Y), int(hi.X), int(hi.Y))
		if dr.Empty() {
			continue
		}
		r.interp.Scale(img, dr, frame, frame.Bounds(), draw.Over, nil)
	}
}

// Draw is a convenience that renders a mesh and overlays over a background
// into a new image of the given size.
func Draw(width, height int, bg color.Color, mesh []raster.Vertex, slots []overlay.Slot, opts ...Option) (*image.RGBA, error) {
	scene := NewScene()
	scene.Clear(bg)
	scene.Mesh(mesh)
	scene.Overlays(slots)

	target := NewPixmapTarget(width, height)
	if err := NewRenderer(opts...).Render(target, scene); err != nil {
		return nil, err
	}
	return target.Image(), nil
}
