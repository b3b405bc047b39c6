// Package markup scans raw text for the two inline markups understood by
// richtext and rewrites it into a Decorated string for the rasterizer.
//
// The syntax is:
//
//	[[DD]]                  emoji with the two-digit id DD
//	[[description@target]]  link showing description, reporting target
//
// There is no escape sequence for a literal "[[". Text that does not form
// a token, emoji ids missing from the database and link tokens without an
// "@" are copied through unchanged.
//
// Positions recorded in tags count slots of the Decorated string: one slot
// per rune of text and one per emoji placeholder. Colors take no slots.
// The rasterizer emits exactly one quad per slot, so a tag's slot index
// times four is the index of its first vertex.
package markup
