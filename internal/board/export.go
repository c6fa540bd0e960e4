package board

import (
	"fmt"
	"strings"
)

// ShapeSummary renders the committed annotations as plain text, one per
// line, oldest first:
//
//	shape_01h455vb4pex5vsknk084sn02q rect (100,100)->(200,150)
func ShapeSummary(sc *Scene) string {
	var b strings.Builder
	for _, s := range sc.Shapes() {
		fmt.Fprintf(&b, "%s %s %s->%s\n", s.ID, s.Kind, fmtPoint(s.Start), fmtPoint(s.End))
	}
	return b.String()
}

// EntitySummary lists every entity that is away from its kick-off spot.
func EntitySummary(sc *Scene) string {
	start := NewScene().Entities()
	var b strings.Builder
	for i, e := range sc.Entities() {
		if e.Pos == start[i].Pos {
			continue
		}
		fmt.Fprintf(&b, "%s %s->%s\n", e.Label(), fmtPoint(start[i].Pos), fmtPoint(e.Pos))
	}
	return b.String()
}
