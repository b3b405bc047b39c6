package richtext

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned by ParseHex for malformed hex colors.
var ErrInvalidColor = errors.New("richtext: invalid hex color")

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA" with an optional
// leading '#'.
//
// The digits are straight (non-premultiplied) alpha, as in CSS. The result
// is premultiplied, as color.RGBA requires: "#ff000080" yields
// {128, 0, 0, 128}.
//
// Example:
//
//	c, err := richtext.ParseHex("#0000ff")
//	c, err := richtext.ParseHex("f80") // short form
func ParseHex(hex string) (color.RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint8
	v[3] = 255
	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	straight := color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
