package overlay

import (
	"sync"

	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
)

// Slot is the state of one overlay visual.
type Slot struct {
	Emoji    *emoji.Emoji
	Position geom.Vec2
	Visible  bool
	Active   bool
	Enabled  bool
}

// Drawn reports whether the slot would appear on screen.
func (s Slot) Drawn() bool {
	return s.Active && s.Visible && s.Enabled && s.Emoji != nil
}

// Slots is an in-memory Host. The zero value is ready to use.
//
// Slots is safe for concurrent use, so a renderer may read it while a
// widget updates it.
type Slots struct {
	mu    sync.RWMutex
	slots []Slot
}

var _ Host = (*Slots)(nil)

// EnsureCount implements Host.
func (s *Slots) EnsureCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.slots) {
		s.slots = append(s.slots, make([]Slot, n-len(s.slots))...)
	}
}

// SetImage implements Host.
func (s *Slots) SetImage(i int, e *emoji.Emoji) {
	s.update(i, func(sl *Slot) { sl.Emoji = e })
}

// SetPosition implements Host.
func (s *Slots) SetPosition(i int, p geom.Vec2) {
	s.update(i, func(sl *Slot) { sl.Position = p })
}

// SetVisible implements Host.
func (s *Slots) SetVisible(i int, visible bool) {
	s.update(i, func(sl *Slot) { sl.Visible = visible })
}

// SetActive implements Host.
func (s *Slots) SetActive(i int, active bool) {
	s.update(i, func(sl *Slot) { sl.Active = active })
}

// SetEnabled implements Host.
func (s *Slots) SetEnabled(i int, enabled bool) {
	s.update(i, func(sl *Slot) { sl.Enabled = enabled })
}

func (s *Slots) update(i int, f func(*Slot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.slots) {
		f(&s.slots[i])
	}
}

// Len returns the number of slots.
func (s *Slots) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// At returns a copy of slot i. It panics if i is out of range.
func (s *Slots) At(i int) Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots[i]
}

// Drawn returns the slots that would appear on screen, in index order.
func (s *Slots) Drawn() []Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Slot
	for _, sl := range s.slots {
		if sl.Drawn() {
			out = append(out, sl)
		}
	}
	return out
}
