package game

import (
	"image/color"

	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// arcSegments is the polyline resolution for a full turn of arc.
const arcSegments = 64

// screenSurface draws board primitives onto an ebiten image. dst is set
// by Draw each frame.
type screenSurface struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

func newScreenSurface() *screenSurface {
	return &screenSurface{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *screenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *screenSurface) FillRect(r board.Rect, c color.Color) {
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *screenSurface) StrokeRect(r board.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, false)
}

func (s *screenSurface) Line(a, b board.Vec2, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

func (s *screenSurface) Arc(bounds board.Rect, start, end, width float64, c color.Color) {
	pts := board.ArcPoints(bounds, start, end, arcSegments)
	for i := 1; i < len(pts); i++ {
		s.Line(pts[i-1], pts[i], width, c)
	}
}

func (s *screenSurface) FillCircle(center board.Vec2, radius float64, c color.Color) {
	vector.FillCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (s *screenSurface) FillPolygon(pts []board.Vec2, c color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(s.dst, &path, &vector.FillOptions{}, op)
}

func (s *screenSurface) Span(x0, x1, y int, c color.Color) {
	vector.FillRect(s.dst, float32(x0), float32(y), float32(x1-x0+1), 1, c, false)
}

func (s *screenSurface) Text(str string, pos board.Vec2, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}
