package board

import (
	"math"
	"testing"
)

type pixel struct{ x, y int }

func rasterDisc(cx, cy, r int) (map[pixel]bool, int) {
	px := map[pixel]bool{}
	spans := 0
	FillCircle(cx, cy, r, func(x0, x1, y int) {
		spans++
		for x := x0; x <= x1; x++ {
			px[pixel{x, y}] = true
		}
	})
	return px, spans
}

// midpointInside is the brute-force membership test for the midpoint disc:
// with m the larger and n the smaller absolute offset, a pixel is filled when
// the half-pixel point (n, m-½) lies strictly inside radius √(r²+¼).
func midpointInside(dx, dy, r int) bool {
	ax, ay := abs(dx), abs(dy)
	m, n := max(ax, ay), min(ax, ay)
	if r == 0 {
		return m == 0
	}
	return n*n+m*m-m < r*r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFillCircle_MatchesBruteForce(t *testing.T) {
	const cx, cy = 400, 325
	for _, r := range []int{0, 1, 2, 7, 10, 50} {
		got, _ := rasterDisc(cx, cy, r)
		for dy := -r - 2; dy <= r+2; dy++ {
			for dx := -r - 2; dx <= r+2; dx++ {
				want := midpointInside(dx, dy, r)
				if got[pixel{cx + dx, cy + dy}] != want {
					t.Fatalf("r=%d: pixel offset (%d,%d) filled=%v, expected %v", r, dx, dy, !want, want)
				}
			}
		}
		for p := range got {
			if abs(p.x-cx) > r || abs(p.y-cy) > r {
				t.Fatalf("r=%d: pixel (%d,%d) outside bounding square", r, p.x, p.y)
			}
		}
	}
}

func TestFillCircle_SmallRadiiMatchRoundedDistance(t *testing.T) {
	// For these radii the midpoint disc is exactly the set of pixels whose
	// Euclidean distance rounds to at most r. r=1 and r=50 are not among them.
	for _, r := range []int{0, 2, 3, 7, 10} {
		got, _ := rasterDisc(0, 0, r)
		for dy := -r - 1; dy <= r+1; dy++ {
			for dx := -r - 1; dx <= r+1; dx++ {
				want := math.Round(math.Hypot(float64(dx), float64(dy))) <= float64(r)
				if got[pixel{dx, dy}] != want {
					t.Fatalf("r=%d: offset (%d,%d) filled=%v, expected %v", r, dx, dy, got[pixel{dx, dy}], want)
				}
			}
		}
	}
}

func TestFillCircle_RadiusOneIsPlus(t *testing.T) {
	got, _ := rasterDisc(0, 0, 1)
	want := map[pixel]bool{{0, 0}: true, {1, 0}: true, {-1, 0}: true, {0, 1}: true, {0, -1}: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d pixels, got %d: %v", len(want), len(got), got)
	}
	for p := range want {
		if !got[p] {
			t.Fatalf("expected %v filled", p)
		}
	}
	for _, p := range []pixel{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		if got[p] {
			t.Fatalf("expected diagonal %v left empty", p)
		}
	}
}

func TestFillCircle_EightWaySymmetric(t *testing.T) {
	got, _ := rasterDisc(0, 0, 23)
	for p := range got {
		for _, q := range []pixel{
			{-p.x, p.y}, {p.x, -p.y}, {-p.x, -p.y},
			{p.y, p.x}, {-p.y, p.x}, {p.y, -p.x}, {-p.y, -p.x},
		} {
			if !got[q] {
				t.Fatalf("pixel %v filled but mirror %v is not", p, q)
			}
		}
	}
}

func TestFillCircle_NoHoles(t *testing.T) {
	got, _ := rasterDisc(0, 0, 31)
	for y := -31; y <= 31; y++ {
		minX, maxX, seen := 0, 0, false
		for x := -31; x <= 31; x++ {
			if got[pixel{x, y}] {
				if !seen {
					minX, seen = x, true
				}
				maxX = x
			}
		}
		if !seen {
			t.Fatalf("row %d is empty", y)
		}
		for x := minX; x <= maxX; x++ {
			if !got[pixel{x, y}] {
				t.Fatalf("row %d has a hole at x=%d", y, x)
			}
		}
	}
}

func TestFillCircle_LinearSteps(t *testing.T) {
	for _, r := range []int{1, 10, 100, 1000} {
		_, spans := rasterDisc(0, 0, r)
		if spans%4 != 0 {
			t.Fatalf("r=%d: expected spans in groups of four, got %d", r, spans)
		}
		if spans > 4*(r+1) {
			t.Fatalf("r=%d: expected at most %d spans, got %d", r, 4*(r+1), spans)
		}
	}
}

func TestFillCircle_NegativeRadiusDrawsNothing(t *testing.T) {
	got, spans := rasterDisc(5, 5, -3)
	if spans != 0 || len(got) != 0 {
		t.Fatalf("expected no output for negative radius, got %d spans", spans)
	}
}

func TestArrowHead_PointingRight(t *testing.T) {
	left, right := ArrowHead(Vec2{0, 0}, Vec2{10, 0}, 10, math.Pi/6)
	wantX := 10 - 10*math.Cos(math.Pi/6)
	if math.Abs(left.X-wantX) > 1e-9 || math.Abs(left.Y-5) > 1e-9 {
		t.Fatalf("expected left (%.3f,5), got (%.3f,%.3f)", wantX, left.X, left.Y)
	}
	if math.Abs(right.X-wantX) > 1e-9 || math.Abs(right.Y+5) > 1e-9 {
		t.Fatalf("expected right (%.3f,-5), got (%.3f,%.3f)", wantX, right.X, right.Y)
	}
}

func TestArrowHead_BarbsAtHeadLength(t *testing.T) {
	start, end := Vec2{120, 300}, Vec2{47, 211}
	left, right := ArrowHead(start, end, arrowHeadLength, arrowHeadAngle)
	if d := left.Dist(end); math.Abs(d-arrowHeadLength) > 1e-9 {
		t.Fatalf("left barb at distance %.6f, expected %.1f", d, arrowHeadLength)
	}
	if d := right.Dist(end); math.Abs(d-arrowHeadLength) > 1e-9 {
		t.Fatalf("right barb at distance %.6f, expected %.1f", d, arrowHeadLength)
	}
	// Barbs trail back towards start.
	if left.Dist(start) >= end.Dist(start) || right.Dist(start) >= end.Dist(start) {
		t.Fatal("expected barbs closer to start than the tip")
	}
}

func TestRectFromCorners_Normalises(t *testing.T) {
	r := RectFromCorners(Vec2{200, 150}, Vec2{100, 100})
	if r != (Rect{X: 100, Y: 100, W: 100, H: 50}) {
		t.Fatalf("expected {100 100 100 50}, got %+v", r)
	}
}

func TestRect_ContainsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 80, H: 30}
	if !r.Contains(Vec2{10, 10}) {
		t.Fatal("top-left corner should be inside")
	}
	if r.Contains(Vec2{90, 20}) || r.Contains(Vec2{20, 40}) {
		t.Fatal("right and bottom edges should be outside")
	}
}

func TestArcPoints_LeftDBulgesRight(t *testing.T) {
	// 270° → 90° counter-clockwise passes through 0° (screen right).
	pts := ArcPoints(Rect{X: 40, Y: 265, W: 120, H: 120}, 1.5*math.Pi, 0.5*math.Pi, 8)
	if len(pts) != 9 {
		t.Fatalf("expected 9 points, got %d", len(pts))
	}
	first, mid, last := pts[0], pts[4], pts[8]
	if math.Abs(first.X-100) > 1e-9 || math.Abs(first.Y-385) > 1e-9 {
		t.Fatalf("expected start at bottom (100,385), got %+v", first)
	}
	if math.Abs(mid.X-160) > 1e-9 || math.Abs(mid.Y-325) > 1e-9 {
		t.Fatalf("expected midpoint at right (160,325), got %+v", mid)
	}
	if math.Abs(last.X-100) > 1e-9 || math.Abs(last.Y-265) > 1e-9 {
		t.Fatalf("expected end at top (100,265), got %+v", last)
	}
}

func TestArcPoints_FullCircleCloses(t *testing.T) {
	pts := ArcPoints(Rect{X: 0, Y: 0, W: 20, H: 20}, 0, 2*math.Pi, 16)
	if pts[0].Dist(pts[16]) > 1e-9 {
		t.Fatalf("expected closed loop, got %+v and %+v", pts[0], pts[16])
	}
}
