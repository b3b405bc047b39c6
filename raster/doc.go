// Package raster turns decorated strings into glyph quads.
//
// A [Rasterizer] lays a [markup.Decorated] out inside a container described
// by [Settings] and emits four vertices per slot (top-left, top-right,
// bottom-right, bottom-left) in y-down pixel space, followed by one
// zero-size quad for the trailing line break. Slots that do not fit a
// vertically truncated container are not emitted, so truncation shows up
// only as a shorter vertex stream.
//
// [Generator] is the implementation shipped with the module. Fonts are
// loaded once into a [FontSource] and shaped either per rune with
// golang.org/x/image ([BuiltinShaper], the default) or with HarfBuzz via
// go-text/typesetting ([GoTextShaper]).
//
//	src, err := raster.NewFontSource(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	gen := raster.NewGenerator()
//	s := raster.DefaultSettings(src)
//	s.Extents = geom.V2(200, 0)
//	verts := gen.Populate(markup.Plain("hello world"), s)
package raster
