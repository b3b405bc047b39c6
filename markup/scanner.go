package markup

import (
	"regexp"
	"strings"
)

// TokenKind distinguishes the markup tokens.
type TokenKind uint8

const (
	// TokenEmoji is an emoji reference: [[DD]].
	TokenEmoji TokenKind = iota + 1
	// TokenHref is a link: [[description@target]].
	TokenHref
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEmoji:
		return "Emoji"
	case TokenHref:
		return "Href"
	default:
		return "Unknown"
	}
}

// Token is a markup token found in raw text.
type Token struct {
	Kind TokenKind

	// Start and End are the byte offsets of the token in the raw text.
	Start, End int

	// Text is the whole token, brackets included.
	Text string

	// ID is the emoji id (TokenEmoji only).
	ID string

	// Description and Target are the two halves of a link (TokenHref only).
	Description string
	Target      string
}

// pattern matches both markups. The emoji alternative comes first, so at a
// given position "[[12]]" is always an emoji, never a link.
var pattern = regexp.MustCompile(`(\[\[[0-9]{2}\]\])|(\[\[(.+?)@(.+?)\]\])`)

// Scan returns the markup tokens of raw in source order.
// Tokens never overlap.
func Scan(raw string) []Token {
	matches := pattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		text := raw[m[0]:m[1]]
		tok := Token{Start: m[0], End: m[1], Text: text}

		if m[2] >= 0 {
			tok.Kind = TokenEmoji
			tok.ID = text[2:4]
		} else {
			tok.Kind = TokenHref
			tok.Description, tok.Target = splitHref(text)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// splitHref strips every bracket pair from a link token and splits the
// remainder at its first "@".
func splitHref(token string) (description, target string) {
	content := strings.ReplaceAll(token, "[[", "")
	content = strings.ReplaceAll(content, "]]", "")
	description, target, _ = strings.Cut(content, "@")
	return description, target
}
