package markup

import (
	"image/color"

	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/internal/logx"
)

// DefaultLinkColor is the color of link descriptions unless configured.
var DefaultLinkColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// Options configures Rewrite.
type Options struct {
	// LinkColor colors link descriptions.
	LinkColor color.RGBA
}

// DefaultOptions returns the default rewrite options.
func DefaultOptions() Options {
	return Options{LinkColor: DefaultLinkColor}
}

// Rewritten is the result of Rewrite.
type Rewritten struct {
	Decorated Decorated

	// Emoji and Links are in source order, which is also ascending slot
	// order.
	Emoji []EmojiTag
	Links []HrefTag
}

// Rewrite replaces the markup tokens of raw, building the decorated string
// and its tag tables.
//
// With a nil db no markup is interpreted and the decorated string is raw
// itself. Emoji tokens whose id db does not know are kept as literal text.
func Rewrite(raw string, db emoji.Database, opts Options) Rewritten {
	if raw == "" {
		return Rewritten{}
	}
	if db == nil {
		return Rewritten{Decorated: Plain(raw)}
	}

	var (
		b     Builder
		out   Rewritten
		index int
	)
	for _, tok := range Scan(raw) {
		b.WriteText(raw[index:tok.Start])
		index = tok.End

		switch tok.Kind {
		case TokenEmoji:
			e, ok := db.Lookup(tok.ID)
			if !ok || e == nil {
				logx.L().Debug("markup: unknown emoji id", "id", tok.ID)
				b.WriteText(tok.Text)
				continue
			}
			out.Emoji = append(out.Emoji, EmojiTag{CharIndex: b.Len(), Emoji: e})
			b.WriteQuad(e.Extent())

		case TokenHref:
			begin := b.Len()
			b.WriteColored(tok.Description, opts.LinkColor)
			out.Links = append(out.Links, HrefTag{
				Begin:       begin,
				End:         b.Len(),
				Description: tok.Description,
				Target:      tok.Target,
			})
		}
	}
	b.WriteText(raw[index:])

	out.Decorated = b.Decorated()
	return out
}
