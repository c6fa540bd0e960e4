package board

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// DrawOp names a Surface method.
type DrawOp string

const (
	OpClear       DrawOp = "clear"
	OpFillRect    DrawOp = "fill_rect"
	OpStrokeRect  DrawOp = "stroke_rect"
	OpLine        DrawOp = "line"
	OpArc         DrawOp = "arc"
	OpFillCircle  DrawOp = "fill_circle"
	OpFillPolygon DrawOp = "fill_polygon"
	OpSpan        DrawOp = "span"
	OpText        DrawOp = "text"
)

// DrawCall is one recorded Surface call. Only the fields relevant to Op are
// set.
type DrawCall struct {
	Op     DrawOp
	Rect   Rect
	Points []Vec2
	Width  float64
	Start  float64
	End    float64
	Radius float64
	Text   string
	Color  color.RGBA
}

// Recorder is a Surface that stores calls in painter's order instead of
// drawing them. It backs headless tests and the replay report.
type Recorder struct {
	Calls []DrawCall
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

func (r *Recorder) add(c DrawCall) { r.Calls = append(r.Calls, c) }

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *Recorder) Clear(c color.Color) {
	r.add(DrawCall{Op: OpClear, Color: rgba(c)})
}

func (r *Recorder) FillRect(rc Rect, c color.Color) {
	r.add(DrawCall{Op: OpFillRect, Rect: rc, Color: rgba(c)})
}

func (r *Recorder) StrokeRect(rc Rect, width float64, c color.Color) {
	r.add(DrawCall{Op: OpStrokeRect, Rect: rc, Width: width, Color: rgba(c)})
}

func (r *Recorder) Line(a, b Vec2, width float64, c color.Color) {
	r.add(DrawCall{Op: OpLine, Points: []Vec2{a, b}, Width: width, Color: rgba(c)})
}

func (r *Recorder) Arc(bounds Rect, start, end, width float64, c color.Color) {
	r.add(DrawCall{Op: OpArc, Rect: bounds, Start: start, End: end, Width: width, Color: rgba(c)})
}

func (r *Recorder) FillCircle(center Vec2, radius float64, c color.Color) {
	r.add(DrawCall{Op: OpFillCircle, Points: []Vec2{center}, Radius: radius, Color: rgba(c)})
}

func (r *Recorder) FillPolygon(pts []Vec2, c color.Color) {
	cp := make([]Vec2, len(pts))
	copy(cp, pts)
	r.add(DrawCall{Op: OpFillPolygon, Points: cp, Color: rgba(c)})
}

func (r *Recorder) Span(x0, x1, y int, c color.Color) {
	r.add(DrawCall{
		Op:     OpSpan,
		Points: []Vec2{{X: float64(x0), Y: float64(y)}, {X: float64(x1), Y: float64(y)}},
		Color:  rgba(c),
	})
}

func (r *Recorder) Text(s string, pos Vec2, c color.Color) {
	r.add(DrawCall{Op: OpText, Points: []Vec2{pos}, Text: s, Color: rgba(c)})
}

// Filter returns the calls with the given op, in order.
func (r *Recorder) Filter(op DrawOp) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Histogram counts calls per op.
func (r *Recorder) Histogram() map[DrawOp]int {
	h := make(map[DrawOp]int)
	for _, c := range r.Calls {
		h[c.Op]++
	}
	return h
}

// HistogramString formats Histogram as "arc=3 clear=1 ..." sorted by op.
func (r *Recorder) HistogramString() string {
	h := r.Histogram()
	ops := make([]string, 0, len(h))
	for op := range h {
		ops = append(ops, string(op))
	}
	sort.Strings(ops)
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%s=%d", op, h[DrawOp(op)])
	}
	return strings.Join(parts, " ")
}
