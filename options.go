package richtext

import (
	"image/color"

	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/overlay"
	"github.com/gogpu/richtext/raster"
)

// Option configures a Text during creation.
// Use functional options to customize Text behavior.
//
// Example:
//
//	// Plain text with the default rasterizer
//	t := richtext.New(richtext.WithFont(src))
//
//	// Emoji and links, reporting clicks
//	t := richtext.New(
//		richtext.WithFont(src),
//		richtext.WithDatabase(db),
//		richtext.WithOnLinkClick(openURL),
//	)
type Option func(*options)

// options holds optional configuration for Text creation.
type options struct {
	db             emoji.Database
	linkColor      color.RGBA
	underlineColor color.RGBA
	settings       raster.Settings
	ppu            float32
	pixelSnap      bool
	rasterizer     raster.Rasterizer
	host           overlay.Host
	onLinkClick    func(target string)
}

// defaultOptions returns the default text options.
func defaultOptions() options {
	return options{
		linkColor:      markup.DefaultLinkColor,
		underlineColor: markup.DefaultLinkColor,
		settings:       raster.DefaultSettings(nil),
		ppu:            1,
		rasterizer:     nil, // Will be set to a raster.Generator if nil
		host:           nil, // Will be set to an overlay.Slots if nil
	}
}

// WithDatabase sets the emoji database that enables markup.
// Without a database the raw text is displayed verbatim.
func WithDatabase(db emoji.Database) Option {
	return func(o *options) {
		o.db = normalizeDatabase(db)
	}
}

// WithLinkColor sets the color of link descriptions.
func WithLinkColor(c color.RGBA) Option {
	return func(o *options) {
		o.linkColor = c
	}
}

// WithUnderlineColor sets the color of link underlines.
func WithUnderlineColor(c color.RGBA) Option {
	return func(o *options) {
		o.underlineColor = c
	}
}

// WithSettings replaces the rasterizer settings. The scale factor is
// always taken from the pixels per unit.
func WithSettings(s raster.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithFont sets the font of the rasterizer settings.
func WithFont(src *raster.FontSource) Option {
	return func(o *options) {
		o.settings.Font = src
	}
}

// WithPixelsPerUnit sets the number of pixels per layout unit.
// Zero or negative means 1.
func WithPixelsPerUnit(ppu float32) Option {
	return func(o *options) {
		o.ppu = ppu
	}
}

// WithPixelSnap aligns the mesh to the pixel grid after scaling.
func WithPixelSnap(snap bool) Option {
	return func(o *options) {
		o.pixelSnap = snap
	}
}

// WithRasterizer sets a custom rasterizer.
// Use this for dependency injection of an engine other than raster.Generator.
//
// Example:
//
//	gen := raster.NewGenerator(raster.WithShaper(raster.NewGoTextShaper()))
//	t := richtext.New(richtext.WithRasterizer(gen))
func WithRasterizer(r raster.Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithOverlayHost sets the host that owns the emoji visuals.
func WithOverlayHost(h overlay.Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithOnLinkClick registers the handler Click invokes with the target of
// the clicked link.
func WithOnLinkClick(fn func(target string)) Option {
	return func(o *options) {
		o.onLinkClick = fn
	}
}

// normalizeDatabase turns a typed nil *emoji.DB into a nil interface so
// that it disables markup like an untyped nil.
func normalizeDatabase(db emoji.Database) emoji.Database {
	if d, ok := db.(*emoji.DB); ok && d == nil {
		return nil
	}
	return db
}
