package markup

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SpanKind identifies what a Span contributes to the decorated string.
type SpanKind uint8

const (
	// SpanText is text in the default color.
	SpanText SpanKind = iota
	// SpanColor is text drawn in Span.Color.
	SpanColor
	// SpanQuad is an empty square placeholder of edge Span.Size.
	SpanQuad
)

// Span is a run of the decorated string.
type Span struct {
	Kind  SpanKind
	Text  string
	Color color.RGBA
	Size  float32
}

// Len returns the number of slots the span occupies.
func (s Span) Len() int {
	if s.Kind == SpanQuad {
		return 1
	}
	return utf8.RuneCountInString(s.Text)
}

// Decorated is rewritten text ready for the rasterizer.
// The zero value is the empty string.
type Decorated []Span

// Plain returns a Decorated holding s as uncolored text.
func Plain(s string) Decorated {
	if s == "" {
		return nil
	}
	return Decorated{{Kind: SpanText, Text: s}}
}

// Len returns the number of slots.
func (d Decorated) Len() int {
	n := 0
	for _, s := range d {
		n += s.Len()
	}
	return n
}

// String renders the textual form, with <color> and <quad> tags, for
// logging and display. Text is written as is, so plain text that spells a
// tag renders like the tag itself; compare with Key instead.
func (d Decorated) String() string {
	var b strings.Builder
	for _, s := range d {
		switch s.Kind {
		case SpanColor:
			fmt.Fprintf(&b, "<color=#%s>%s</color>", HexColor(s.Color), s.Text)
		case SpanQuad:
			b.WriteString("<quad size=")
			b.WriteString(strconv.FormatFloat(float64(s.Size), 'g', -1, 32))
			b.WriteString(">")
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Key returns an encoding of d that differs for any two Decorated values
// with different spans. It is meant for map and cache keys.
//
// Each span is its kind digit followed by, for color spans, the rrggbbaa
// color, for quads, the size and ';', and for text, the byte length, ':'
// and the text.
func (d Decorated) Key() string {
	var b strings.Builder
	for _, s := range d {
		b.WriteByte('0' + byte(s.Kind))
		switch s.Kind {
		case SpanQuad:
			b.WriteString(strconv.FormatFloat(float64(s.Size), 'g', -1, 32))
			b.WriteByte(';')
			continue
		case SpanColor:
			b.WriteString(HexColor(s.Color))
		}
		b.WriteString(strconv.Itoa(len(s.Text)))
		b.WriteByte(':')
		b.WriteString(s.Text)
	}
	return b.String()
}

// ObjectReplacement is the rune standing for a placeholder in Visible.
const ObjectReplacement = '\uFFFC'

// Visible returns the text a reader would see, one rune per slot, with
// placeholders shown as ObjectReplacement.
func (d Decorated) Visible() string {
	var b strings.Builder
	for _, s := range d {
		if s.Kind == SpanQuad {
			b.WriteRune(ObjectReplacement)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Slot is one rasterizable unit of a decorated string.
type Slot struct {
	// Rune is the character, or ObjectReplacement for a placeholder.
	Rune rune

	// Quad marks a placeholder of edge Size.
	Quad bool
	Size float32

	// Colored reports whether Color overrides the default text color.
	Colored bool
	Color   color.RGBA
}

// Slots expands d into one Slot per slot.
func (d Decorated) Slots() []Slot {
	out := make([]Slot, 0, d.Len())
	for _, s := range d {
		switch s.Kind {
		case SpanQuad:
			out = append(out, Slot{Rune: ObjectReplacement, Quad: true, Size: s.Size})
		default:
			colored := s.Kind == SpanColor
			for _, r := range s.Text {
				out = append(out, Slot{Rune: r, Colored: colored, Color: s.Color})
			}
		}
	}
	return out
}

// HexColor formats c as rrggbbaa, lowercase, without a leading '#'.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Builder appends spans left to right while tracking the slot count.
// The zero value is ready to use.
type Builder struct {
	spans []Span
	n     int
}

// Len returns the number of slots written so far.
func (b *Builder) Len() int { return b.n }

// WriteText appends uncolored text.
func (b *Builder) WriteText(s string) {
	if s == "" {
		return
	}
	if last := len(b.spans) - 1; last >= 0 && b.spans[last].Kind == SpanText {
		b.spans[last].Text += s
	} else {
		b.spans = append(b.spans, Span{Kind: SpanText, Text: s})
	}
	b.n += utf8.RuneCountInString(s)
}

// WriteColored appends text drawn in c. Empty text still emits the color
// span so that the String form records it.
func (b *Builder) WriteColored(s string, c color.RGBA) {
	b.spans = append(b.spans, Span{Kind: SpanColor, Text: s, Color: c})
	b.n += utf8.RuneCountInString(s)
}

// WriteQuad appends a placeholder of edge size.
func (b *Builder) WriteQuad(size float32) {
	b.spans = append(b.spans, Span{Kind: SpanQuad, Size: size})
	b.n++
}

// Decorated returns the built string.
func (b *Builder) Decorated() Decorated {
	if len(b.spans) == 0 {
		return nil
	}
	out := make(Decorated, len(b.spans))
	copy(out, b.spans)
	return out
}
