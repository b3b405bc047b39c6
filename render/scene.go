// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"slices"

	"github.com/gogpu/richtext/overlay"
	"github.com/gogpu/richtext/raster"
)

// Scene is a retained list of draw commands in layout units.
//
// Example:
//
//	scene := render.NewScene()
//	scene.Clear(color.White)
//	scene.Mesh(res.Mesh)
//	scene.Overlays(slots.Drawn())
type Scene struct {
	commands []drawCommand
}

// drawCommand represents a single drawing operation. Mesh and slot data
// are snapshots taken when the command was recorded.
type drawCommand struct {
	op    drawOp
	color color.Color
	mesh  []raster.Vertex
	slots []overlay.Slot
}

// drawOp is the type of drawing operation.
type drawOp uint8

const (
	opClear drawOp = iota
	opMesh
	opOverlays
)

// NewScene creates a new empty Scene.
func NewScene() *Scene {
	return &Scene{commands: make([]drawCommand, 0, 4)}
}

// Reset clears the scene for reuse.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
}

// Clear records filling the whole target with c.
func (s *Scene) Clear(c color.Color) {
	s.commands = append(s.commands, drawCommand{op: opClear, color: c})
}

// Mesh records drawing every quad of verts. A trailing partial quad is
// ignored.
func (s *Scene) Mesh(verts []raster.Vertex) {
	if len(verts) < 4 {
		return
	}
	s.commands = append(s.commands, drawCommand{op: opMesh, mesh: slices.Clone(verts)})
}

// Overlays records drawing the given emoji visuals. Slots that are not
// drawn are skipped at render time.
func (s *Scene) Overlays(slots []overlay.Slot) {
	if len(slots) == 0 {
		return
	}
	s.commands = append(s.commands, drawCommand{op: opOverlays, slots: slices.Clone(slots)})
}

// IsEmpty returns true if the scene has no commands.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// CommandCount returns the number of recorded commands.
func (s *Scene) CommandCount() int {
	return len(s.commands)
}

// drawCommands returns the command list for renderers.
func (s *Scene) drawCommands() []drawCommand {
	return s.commands
}
