// Package overlay keeps the image visuals drawn over emoji placeholders.
//
// Visuals live in a [Host] as dense, index-keyed slots. A [Pool] grows the
// host on demand, hands slot i to emoji tag i, and deactivates the slots a
// pass does not use. Slots are never destroyed.
package overlay

import (
	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/internal/logx"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// Host owns the overlay visuals. Indices passed to the setters are always
// below the count last requested with EnsureCount.
type Host interface {
	// EnsureCount makes at least n slots available.
	EnsureCount(n int)

	// SetImage sets the emoji shown by slot i.
	SetImage(i int, e *emoji.Emoji)

	// SetPosition centers slot i at p, in layout units.
	SetPosition(i int, p geom.Vec2)

	// SetVisible shows or hides slot i.
	SetVisible(i int, visible bool)

	// SetActive marks slot i as used or unused by the current pass.
	SetActive(i int, active bool)

	// SetEnabled follows the owning widget's enabled state.
	SetEnabled(i int, enabled bool)
}

// Pool assigns host slots to emoji tags.
//
// Pool is not safe for concurrent use; the widget calls it under its lock.
type Pool struct {
	host    Host
	size    int
	active  int
	enabled bool
}

// NewPool returns an enabled pool over h.
func NewPool(h Host) *Pool {
	return &Pool{host: h, enabled: true}
}

// Len returns the number of slots created so far.
func (p *Pool) Len() int { return p.size }

// Active returns the number of slots used by the last Sync.
func (p *Pool) Active() int { return p.active }

// Sync gives slot i to tags[i], growing the host when there are more tags
// than slots, and deactivates every remaining slot.
func (p *Pool) Sync(tags []markup.EmojiTag) {
	n := len(tags)
	if n > p.size {
		logx.L().Debug("overlay: growing pool", "from", p.size, "to", n)
		p.host.EnsureCount(n)
		for i := p.size; i < n; i++ {
			p.host.SetEnabled(i, p.enabled)
		}
		p.size = n
	}

	for i, tag := range tags {
		p.host.SetActive(i, true)
		p.host.SetImage(i, tag.Emoji)
	}
	for i := n; i < p.size; i++ {
		p.host.SetActive(i, false)
	}
	p.active = n
}

// Apply moves and shows or hides the active slots. Placements for slots
// outside the last Sync are ignored.
func (p *Pool) Apply(placements []layout.Placement) {
	for _, pl := range placements {
		if pl.Index < 0 || pl.Index >= p.active {
			continue
		}
		p.host.SetPosition(pl.Index, pl.Position)
		p.host.SetVisible(pl.Index, pl.Visible)
	}
}

// SetEnabled enables or disables every slot, including slots created later.
func (p *Pool) SetEnabled(enabled bool) {
	p.enabled = enabled
	for i := range p.size {
		p.host.SetEnabled(i, enabled)
	}
}
