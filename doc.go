// Package richtext lays out text with inline emoji and hyperlinks for a UI
// text widget.
//
// # Overview
//
// A [Text] takes raw text containing two kinds of markup:
//
//	[[07]]                 emoji with the two-digit id 07
//	[[description@target]] link showing description and reporting target
//
// Each layout pass rewrites the markup into a decorated string, rasterizes
// it into quads, hides the quads that only reserve room for emoji, positions
// the emoji overlays over them, computes per-line hit boxes for links and
// appends underline geometry beneath each link line. The pass publishes an
// immutable [Result] that readers use without locking.
//
// # Quick Start
//
//	src, _ := raster.NewFontSource(goregular.TTF)
//	db, _ := emoji.LoadFile("emoji/manifest.toml")
//
//	t := richtext.New(
//		richtext.WithFont(src),
//		richtext.WithDatabase(db),
//		richtext.WithOnLinkClick(func(target string) { open(target) }),
//	)
//	t.SetText("hi [[00]] see [[the docs@https://example.com]]")
//	res := t.Layout()
//	draw(res.Mesh)
//
//	t.Click(pointer) // invokes the link handler when a link is hit
//
// # Coordinate System
//
// Everything a [Result] exposes is in layout units:
//   - Origin (0,0) at the container's top-left
//   - X increases right
//   - Y increases down
//
// The rasterizer works in pixels; the pass divides by the pixels per unit.
//
// # Packages
//
//   - markup: scanner, rewriter and tag tables
//   - raster: the default rasterizer (fonts, shaping, wrapping)
//   - layout: vertex reconciliation, underlines and hit testing
//   - overlay: pooled emoji visuals
//   - emoji: emoji definitions and manifests
//   - render: debug rendering of a Result into an image
package richtext
