package raster

import "golang.org/x/text/unicode/bidi"

// hasRightToLeft reports whether any run of text resolves to right-to-left
// under the Unicode bidi algorithm. The generator always lays quads out
// left to right in logical order, one per slot; this only feeds a log line.
func hasRightToLeft(text string) bool {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return false
	}
	ordering, err := p.Order()
	if err != nil {
		return false
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			return true
		}
	}
	return false
}
