package board

import (
	"fmt"
	"image/color"
	"math"
)

// Surface is the drawing backend the renderer calls into. Coordinates are
// canvas pixels. Arc angles are radians measured counter-clockwise as seen
// on screen (0 = right, π/2 = up) and sweep from start to end in that
// direction, inside the ellipse bounded by the given rect.
type Surface interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, width float64, c color.Color)
	Line(a, b Vec2, width float64, c color.Color)
	Arc(bounds Rect, start, end, width float64, c color.Color)
	FillCircle(center Vec2, radius float64, c color.Color)
	FillPolygon(pts []Vec2, c color.Color)
	// Span fills the inclusive pixel run [x0, x1] on row y.
	Span(x0, x1, y int, c color.Color)
	// Text draws s with its top-left corner at pos.
	Text(s string, pos Vec2, c color.Color)
}

// Render draws one frame. The order is fixed: background, toolbar, field,
// committed shapes, entities (ball last), then the live preview so that it
// is never hidden. Render reads ctx only.
func Render(ctx *SceneContext, s Surface) {
	s.Clear(colorBackground)
	drawToolbar(ctx, s)
	drawField(s, FieldRect)
	for _, sh := range ctx.Scene.Shapes() {
		drawShape(s, sh.Kind, sh.Start, sh.End, shapeStrokeWidth, sh.Color)
	}
	drawEntities(ctx.Scene, s)
	if ctx.State.Armed() {
		drawShape(s, ctx.State.Mode.shapeKind(), ctx.State.Anchor, ctx.Pointer, previewStrokeWidth, DefaultShapeColor)
	}
}

func drawToolbar(ctx *SceneContext, s Surface) {
	s.FillRect(ToolbarRect, colorToolbar)
	for _, b := range toolButtons {
		s.FillRect(b.rect, b.fill)
		if ctx.State.Mode == modeFor(b.kind) {
			s.StrokeRect(b.rect, 2, colorLabel)
		}
		s.Text(b.label, Vec2{X: b.rect.X + 10, Y: b.rect.Y + 5}, colorLabel)
	}
	if !ctx.ShowStatus {
		return
	}
	status := fmt.Sprintf("tool: %s  shapes: %d", ctx.State.Mode, len(ctx.Scene.Shapes()))
	if e, ok := ctx.Log.Last(); ok {
		status += "  | " + e.String()
	}
	s.Text(status, Vec2{X: 200, Y: 18}, colorLabel)
}

// drawField paints the pitch and its markings, all proportional to f.
func drawField(s Surface, f Rect) {
	s.FillRect(f, colorField)
	s.StrokeRect(f, boundaryWidth, colorMarking)

	c := f.Center()
	s.Line(Vec2{X: c.X, Y: f.Top()}, Vec2{X: c.X, Y: f.Bottom()}, markingWidth, colorMarking)
	s.Arc(Rect{X: c.X - centerCircleR, Y: c.Y - centerCircleR, W: 2 * centerCircleR, H: 2 * centerCircleR},
		0, 2*math.Pi, markingWidth, colorMarking)

	boxY := f.Top() + f.H*penaltyBoxTopFrac
	boxH := f.H * penaltyBoxHFrac
	s.StrokeRect(Rect{X: f.Left(), Y: boxY, W: penaltyBoxDepth, H: boxH}, markingWidth, colorMarking)
	s.StrokeRect(Rect{X: f.Right() - penaltyBoxDepth, Y: boxY, W: penaltyBoxDepth, H: boxH}, markingWidth, colorMarking)

	// D arcs bulge from each penalty box towards the centre.
	leftD := Vec2{X: f.Left() + penaltyBoxDepth, Y: c.Y}
	rightD := Vec2{X: f.Right() - penaltyBoxDepth, Y: c.Y}
	s.Arc(squareAround(leftD, dArcRadius), 1.5*math.Pi, 0.5*math.Pi, markingWidth, colorMarking)
	s.Arc(squareAround(rightD, dArcRadius), 0.5*math.Pi, 1.5*math.Pi, markingWidth, colorMarking)

	s.StrokeRect(Rect{X: f.Left() - goalDepth, Y: c.Y - goalWidth/2, W: goalDepth, H: goalWidth}, markingWidth, colorMarking)
	s.StrokeRect(Rect{X: f.Right(), Y: c.Y - goalWidth/2, W: goalDepth, H: goalWidth}, markingWidth, colorMarking)
}

func squareAround(c Vec2, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

// drawShape renders a committed shape or the preview of one.
func drawShape(s Surface, kind ShapeKind, start, end Vec2, width float64, c color.Color) {
	switch kind {
	case ShapeRectangle:
		s.StrokeRect(RectFromCorners(start, end), width, c)
	case ShapeArrow:
		s.Line(start, end, width, c)
		left, right := ArrowHead(start, end, arrowHeadLength, arrowHeadAngle)
		s.FillPolygon([]Vec2{end, left, right}, c)
	}
}

// drawEntities draws players with the surface's circle fill and the ball
// with FillCircle spans. Arena order puts the ball on top.
func drawEntities(sc *Scene, s Surface) {
	for _, e := range sc.Entities() {
		if e.Kind == KindBall {
			c := e.Color
			FillCircle(int(e.Pos.X), int(e.Pos.Y), int(e.Radius), func(x0, x1, y int) {
				s.Span(x0, x1, y, c)
			})
			continue
		}
		s.FillCircle(e.Pos, e.Radius, e.Color)
	}
}
