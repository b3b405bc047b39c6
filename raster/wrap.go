package raster

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// WrapMode specifies how lines are broken when they exceed the container
// width.
type WrapMode uint8

const (
	// WrapWordChar breaks at word boundaries first, then falls back to
	// character boundaries for words longer than a line.
	WrapWordChar WrapMode = iota

	// WrapNone disables wrapping; only hard line breaks start new lines.
	WrapNone

	// WrapWord breaks at word boundaries only. Long words overflow.
	WrapWord

	// WrapChar breaks at any character boundary.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// breakOpportunity says whether a line may start at a rune.
type breakOpportunity uint8

const (
	breakNo breakOpportunity = iota
	breakAllowed
	breakMandatory
)

// graphemeStarts marks the runes that begin an extended grapheme cluster.
func graphemeStarts(runes []rune) []bool {
	starts := make([]bool, len(runes))
	gr := uniseg.NewGraphemes(string(runes))
	i := 0
	for gr.Next() {
		if i < len(starts) {
			starts[i] = true
		}
		i += len(gr.Runes())
	}
	return starts
}

// findBreakOpportunities returns, for each rune index i, the opportunity to
// break before rune i. Index 0 is always breakNo. A rune following '\n'
// is a mandatory break in every mode; otherwise lines never start inside a
// grapheme cluster.
func findBreakOpportunities(runes []rune, starts []bool, mode WrapMode) []breakOpportunity {
	n := len(runes)
	if n == 0 {
		return nil
	}

	breaks := make([]breakOpportunity, n)
	classes := make([]breakClass, n)
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}

	for i := 1; i < n; i++ {
		if runes[i-1] == '\n' {
			breaks[i] = breakMandatory
			continue
		}
		if mode == WrapNone || !starts[i] {
			continue
		}
		breaks[i] = computeBreak(runes, classes, i, mode)
	}
	return breaks
}

// computeBreak determines the break opportunity before position i.
func computeBreak(runes []rune, classes []breakClass, i int, mode WrapMode) breakOpportunity {
	prevClass := classes[i-1]
	currClass := classes[i]

	// No break before closing punctuation or after opening punctuation.
	if currClass == breakClose || prevClass == breakOpen {
		return breakNo
	}
	if prevClass == breakZero {
		return breakAllowed
	}

	switch mode {
	case WrapChar:
		return breakAllowed
	case WrapWord, WrapWordChar:
		// WrapWordChar falls back to characters in lineEnd.
		return computeWordBreak(runes[i-1], runes[i], prevClass, currClass)
	default:
		return breakNo
	}
}

func computeWordBreak(prevRune, currRune rune, prevClass, currClass breakClass) breakOpportunity {
	if prevClass == breakSpace {
		return breakAllowed
	}
	if prevClass == breakHyphen && currClass != breakHyphen {
		return breakAllowed
	}
	if currClass == breakIdeographic {
		return breakAllowed
	}
	if prevClass == breakIdeographic && currClass != breakClose {
		return breakAllowed
	}
	if isBreakBetweenCategories(prevRune, currRune) {
		return breakAllowed
	}
	return breakNo
}

func isBreakBetweenCategories(prev, curr rune) bool {
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		if curr != '\'' && curr != '.' && curr != ',' {
			return true
		}
	}
	if unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr) {
		return true
	}
	return false
}

// lineSpan is a half-open rune range [start, end) forming one visual line.
type lineSpan struct {
	start, end int
}

// wrapInfo holds what the line breaker needs to know about a text.
type wrapInfo struct {
	runes    []rune
	advances []float64
	breaks   []breakOpportunity
	starts   []bool
	maxWidth float64
	wrap     bool
	mode     WrapMode
}

// breakLines splits runes into visual lines. advances holds the width of
// each rune. With maxWidth <= 0 only hard breaks split lines.
//
// Every rune belongs to exactly one line, so spaces at a wrap point stay at
// the end of the line they follow and may hang past maxWidth. Text ending
// in '\n' produces a final empty line.
func breakLines(runes []rune, advances []float64, maxWidth float64, mode WrapMode) []lineSpan {
	n := len(runes)
	if n == 0 {
		return []lineSpan{{}}
	}

	starts := graphemeStarts(runes)
	w := &wrapInfo{
		runes:    runes,
		advances: advances,
		breaks:   findBreakOpportunities(runes, starts, mode),
		starts:   starts,
		maxWidth: maxWidth,
		wrap:     maxWidth > 0 && mode != WrapNone,
		mode:     mode,
	}

	lines := make([]lineSpan, 0, 4)
	for start := 0; start < n; {
		end := w.lineEnd(start)
		lines = append(lines, lineSpan{start: start, end: end})
		start = end
	}
	if runes[n-1] == '\n' {
		lines = append(lines, lineSpan{start: n, end: n})
	}
	return lines
}

// lineEnd returns the end of the line starting at lineStart.
func (w *wrapInfo) lineEnd(lineStart int) int {
	var width float64
	lastBreak := -1

	for i := lineStart; i < len(w.runes); i++ {
		if i > lineStart {
			switch w.breaks[i] {
			case breakMandatory:
				return i
			case breakAllowed:
				lastBreak = i
			}
		}

		width += w.advances[i]
		if w.wrap && width > w.maxWidth && i > lineStart && !unicode.IsSpace(w.runes[i]) {
			return w.breakPosition(i, lineStart, lastBreak)
		}
	}
	return len(w.runes)
}

// breakPosition picks where to break a line that overflowed at pos.
func (w *wrapInfo) breakPosition(pos, lineStart, lastBreak int) int {
	if lastBreak > lineStart {
		return lastBreak
	}

	switch w.mode {
	case WrapWord:
		// Overflow until the next opportunity.
		for j := pos + 1; j < len(w.breaks); j++ {
			if w.breaks[j] != breakNo {
				return j
			}
		}
		return len(w.breaks)
	default:
		// Character fallback, moved back to a cluster boundary. A line
		// holds at least one cluster.
		for j := pos; j > lineStart; j-- {
			if w.starts[j] {
				return j
			}
		}
		for j := pos + 1; j < len(w.starts); j++ {
			if w.starts[j] {
				return j
			}
		}
		return len(w.runes)
	}
}
