// Package emoji provides the emoji definitions referenced by inline markup.
//
// An Emoji is a named sequence of frames. Markup refers to emoji by a
// two-digit id ("[[07]]"); a Database resolves those ids. DB is the
// map-backed Database used by the widget; it is usually built from a
// manifest file:
//
//	# emoji.toml
//	[[emoji]]
//	id = "00"
//	frames = ["smile.png"]
//
//	db, err := emoji.LoadFile("assets/emoji.toml")
//
// Manifests may also be written in YAML. Frame paths are relative to the
// manifest. PNG, GIF, JPEG, BMP, TIFF and WebP frames are supported.
//
// Watch reloads a manifest whenever it or any file next to it changes.
package emoji
