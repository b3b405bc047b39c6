// Package layout post-processes a rasterizer's vertex stream.
//
// [Reconcile] hides the glyph quads that stand in for emoji, scales the
// stream from pixels to layout units, reports where each emoji overlay goes
// and splits every link into one hit box per visual line. [Underlines]
// builds the underline mesh for those boxes and [HitTest] resolves a point
// to a link target.
//
// Index conventions: slot i of the decorated string owns vertices
// [4i, 4i+4) of the stream, and the last four vertices are the trailing
// line break quad. Positions are y-down with the origin at the top-left
// corner of the container.
package layout
