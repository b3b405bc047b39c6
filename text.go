package richtext

import (
	"context"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/internal/logx"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
	"github.com/gogpu/richtext/overlay"
	"github.com/gogpu/richtext/raster"
)

// Text is a text widget with emoji and link markup.
//
// Setters record the new property and mark the widget dirty; Layout runs
// the pass. Text is safe for concurrent use. Readers of Result, HitTest and
// Click never observe a partially built pass.
type Text struct {
	mu      sync.Mutex
	raw     string
	opts    options
	pool    *overlay.Pool
	dirty   bool
	enabled bool

	result atomic.Pointer[Result]
}

// New creates a Text with the given options.
func New(opts ...Option) *Text {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rasterizer == nil {
		o.rasterizer = raster.NewGenerator()
	}
	if o.host == nil {
		o.host = &overlay.Slots{}
	}
	return &Text{
		opts:    o,
		pool:    overlay.NewPool(o.host),
		dirty:   true,
		enabled: true,
	}
}

// update applies fn under the lock and marks the widget dirty.
func (t *Text) update(fn func()) {
	t.mu.Lock()
	fn()
	t.dirty = true
	t.mu.Unlock()
}

// SetText sets the raw text.
func (t *Text) SetText(raw string) {
	t.update(func() { t.raw = raw })
}

// Text returns the raw text.
func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// SetDatabase replaces the emoji database. Nil disables markup.
func (t *Text) SetDatabase(db emoji.Database) {
	t.update(func() { t.opts.db = normalizeDatabase(db) })
}

// SetLinkColor sets the color of link descriptions.
func (t *Text) SetLinkColor(c color.RGBA) {
	t.update(func() { t.opts.linkColor = c })
}

// SetUnderlineColor sets the color of link underlines.
func (t *Text) SetUnderlineColor(c color.RGBA) {
	t.update(func() { t.opts.underlineColor = c })
}

// SetSettings replaces the rasterizer settings.
func (t *Text) SetSettings(s raster.Settings) {
	t.update(func() { t.opts.settings = s })
}

// Settings returns the rasterizer settings.
func (t *Text) Settings() raster.Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.settings
}

// SetSize sets the container size in layout units. A zero width disables
// wrapping and a zero height disables truncation.
func (t *Text) SetSize(width, height float32) {
	t.update(func() { t.opts.settings.Extents = geom.V2(width, height) })
}

// SetPixelsPerUnit sets the number of pixels per layout unit.
func (t *Text) SetPixelsPerUnit(ppu float32) {
	t.update(func() { t.opts.ppu = ppu })
}

// PixelsPerUnit returns the number of pixels per layout unit.
func (t *Text) PixelsPerUnit() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ppu()
}

// SetPixelSnap enables or disables pixel snapping of the mesh.
func (t *Text) SetPixelSnap(snap bool) {
	t.update(func() { t.opts.pixelSnap = snap })
}

// SetOnLinkClick sets the handler Click invokes. Nil removes it.
func (t *Text) SetOnLinkClick(fn func(target string)) {
	t.mu.Lock()
	t.opts.onLinkClick = fn
	t.mu.Unlock()
}

// Dirty reports whether a property changed since the last pass.
func (t *Text) Dirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirty
}

// Layout runs a layout pass if a property changed since the last one and
// returns the published result.
func (t *Text) Layout() *Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.dirty {
		if r := t.result.Load(); r != nil {
			return r
		}
	}
	r := t.pass()
	t.result.Store(r)
	t.dirty = false
	return r
}

// Result returns the last published result, or nil before the first pass.
func (t *Text) Result() *Result {
	return t.result.Load()
}

// HitTest returns the target of the link under pt in the last published
// result.
func (t *Text) HitTest(pt geom.Vec2) (string, bool) {
	return t.result.Load().HitTest(pt)
}

// Click dispatches a click at pt, in layout units. It invokes the link
// handler when pt hits a link and reports whether it did.
func (t *Text) Click(pt geom.Vec2) bool {
	target, ok := t.HitTest(pt)
	if !ok {
		return false
	}

	t.mu.Lock()
	fn := t.opts.onLinkClick
	t.mu.Unlock()

	logx.L().Debug("richtext: link clicked", "target", target)
	if fn != nil {
		fn(target)
	}
	return true
}

// PreferredWidth returns the width of the text without wrapping, in layout
// units.
func (t *Text) PreferredWidth() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.rewrite().Decorated
	return t.opts.rasterizer.PreferredWidth(d, t.rasterSettings()) / t.ppu()
}

// PreferredHeight returns the height of the text wrapped to the current
// container width, in layout units.
func (t *Text) PreferredHeight() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.rewrite().Decorated
	return t.opts.rasterizer.PreferredHeight(d, t.rasterSettings()) / t.ppu()
}

// SetEnabled enables or disables the emoji visuals together with the
// widget.
func (t *Text) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
	t.pool.SetEnabled(enabled)
}

// Enabled reports whether the widget is enabled.
func (t *Text) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// WatchDatabase loads the emoji manifest at path, installs it and keeps
// it current until ctx is done. Failed reloads keep the previous database.
//
// WatchDatabase blocks; run it in its own goroutine.
func (t *Text) WatchDatabase(ctx context.Context, path string) error {
	db, err := emoji.LoadFile(path)
	if err != nil {
		return err
	}
	t.SetDatabase(db)

	return emoji.Watch(ctx, path, func(db *emoji.DB, err error) {
		if err != nil {
			logx.L().Warn("richtext: emoji manifest reload failed", "path", path, "err", err)
			return
		}
		t.SetDatabase(db)
	})
}

func (t *Text) ppu() float32 {
	if t.opts.ppu <= 0 {
		return 1
	}
	return t.opts.ppu
}

// rasterSettings returns the settings with the scale factor taken from
// the pixels per unit.
func (t *Text) rasterSettings() raster.Settings {
	s := t.opts.settings
	s.ScaleFactor = t.ppu()
	return s
}

func (t *Text) rewrite() markup.Rewritten {
	return markup.Rewrite(t.raw, t.opts.db, markup.Options{LinkColor: t.opts.linkColor})
}

// pass runs one complete layout pass. t.mu must be held.
func (t *Text) pass() *Result {
	rw := t.rewrite()
	s := t.rasterSettings()
	ppu := t.ppu()

	verts := t.opts.rasterizer.Populate(rw.Decorated, s)
	out := layout.Reconcile(verts, rw.Emoji, rw.Links, layout.Options{
		PixelsPerUnit: ppu,
		PixelSnap:     t.opts.pixelSnap,
	})
	// The rasterizer signals truncation only by emitting fewer quads.
	if len(verts) > 0 && len(verts) < (rw.Decorated.Len()+1)*4 {
		out.Truncated = true
	}
	if out.Truncated {
		logx.L().Debug("richtext: text truncated",
			"slots", rw.Decorated.Len(), "vertices", len(verts))
	}

	mesh := out.Mesh
	if len(out.Links) > 0 {
		ref := layout.ReferenceQuad(t.opts.rasterizer, s, ppu)
		mesh = append(mesh, layout.Underlines(out.Links, ref, t.opts.underlineColor)...)
	}

	t.pool.Sync(rw.Emoji)
	t.pool.Apply(out.Placements)

	return &Result{
		Raw:        t.raw,
		Decorated:  rw.Decorated,
		Emoji:      rw.Emoji,
		Links:      out.Links,
		Mesh:       mesh,
		Placements: out.Placements,
		Truncated:  out.Truncated,
	}
}
