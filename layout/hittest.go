package layout

import (
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/markup"
)

// HitTest returns the target of the first link with a box containing pt.
// Boxes include their min edges and exclude their max edges.
func HitTest(pt geom.Vec2, links []markup.HrefTag) (string, bool) {
	for _, tag := range links {
		for _, box := range tag.Boxes {
			if box.Contains(pt) {
				return tag.Target, true
			}
		}
	}
	return "", false
}
