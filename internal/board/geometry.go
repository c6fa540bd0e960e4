package board

import "math"

// Vec2 is a point or offset in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis-aligned rectangle. Containment is half-open on the
// right and bottom edges, so adjacent rects never share a pixel.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the centre point of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Left, Right, Top and Bottom return the edge coordinates of r.
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// RectFromCorners builds the normalised rect spanned by two opposite corners.
func RectFromCorners(a, b Vec2) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// SpanFunc receives one inclusive horizontal pixel run [x0, x1] on row y.
type SpanFunc func(x0, x1, y int)

// FillCircle rasterises a filled disc of radius r around (cx, cy) with the
// midpoint circle algorithm, emitting four symmetric spans per step.
// A negative radius draws nothing; r == 0 draws the centre pixel.
func FillCircle(cx, cy, r int, span SpanFunc) {
	if r < 0 {
		return
	}
	x, y := 0, r
	d := 1 - r
	for x <= y {
		span(cx-x, cx+x, cy-y)
		span(cx-x, cx+x, cy+y)
		span(cx-y, cx+y, cy-x)
		span(cx-y, cx+y, cy+x)

		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// Arrow head defaults used for committed arrows and the live preview.
const (
	arrowHeadLength = 10.0
	arrowHeadAngle  = math.Pi / 6 // 30°
)

// ArrowHead returns the two barb points of an arrow pointing from start to
// end. Each barb is length away from end, rotated ±angle off the reversed
// segment direction. The head triangle is {end, left, right}.
func ArrowHead(start, end Vec2, length, angle float64) (left, right Vec2) {
	theta := math.Atan2(end.Y-start.Y, end.X-start.X)
	left = Vec2{
		X: end.X - length*math.Cos(theta-angle),
		Y: end.Y - length*math.Sin(theta-angle),
	}
	right = Vec2{
		X: end.X - length*math.Cos(theta+angle),
		Y: end.Y - length*math.Sin(theta+angle),
	}
	return left, right
}

// ArcPoints samples an elliptical arc inscribed in bounds as a polyline of
// segments+1 points. Angles follow Surface.Arc: radians, counter-clockwise
// on screen, sweeping from start to end.
func ArcPoints(bounds Rect, start, end float64, segments int) []Vec2 {
	if segments < 1 {
		segments = 1
	}
	for end <= start {
		end += 2 * math.Pi
	}
	c := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	pts := make([]Vec2, segments+1)
	step := (end - start) / float64(segments)
	for i := range pts {
		a := start + step*float64(i)
		pts[i] = Vec2{X: c.X + rx*math.Cos(a), Y: c.Y - ry*math.Sin(a)}
	}
	return pts
}
