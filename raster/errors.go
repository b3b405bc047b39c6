package raster

import "errors"

// Sentinel errors for the raster package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("raster: empty font data")
)
