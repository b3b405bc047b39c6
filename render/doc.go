// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a laid out text into an image for inspection.
//
// The widget hands its mesh and overlay visuals to a host for real
// drawing. This package is the CPU stand-in used by tests and the
// command line tool: every quad is filled with its vertex color and every
// drawn emoji overlay is scaled into place.
//
// # Core Types
//
//   - Scene: retained list of draw commands (clear, mesh, overlays)
//   - PixmapTarget: CPU-backed *image.RGBA destination
//   - Renderer: executes a Scene against a PixmapTarget
//
// # Example
//
//	res := txt.Layout()
//
//	scene := render.NewScene()
//	scene.Clear(color.White)
//	scene.Mesh(res.Mesh)
//	scene.Overlays(slots.Drawn())
//
//	target := render.NewPixmapTarget(400, 200)
//	r := render.NewRenderer(render.WithScale(2))
//	if err := r.Render(target, scene); err != nil {
//	    log.Fatal(err)
//	}
//	png.Encode(f, target.Image())
//
// Glyph quads are drawn as solid boxes of their ink bounds; there is no
// glyph atlas.
package render
