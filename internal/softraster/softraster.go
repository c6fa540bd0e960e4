// Package softraster renders board frames on the CPU with gogpu/gg, for
// headless snapshots and pixel tests.
package softraster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelSize   = 13.0
	arcSegments = 64
)

// Canvas is a board.Surface backed by a gg software context.
type Canvas struct {
	dc   *gg.Context
	face text.Face
}

// New creates a canvas the size of the board.
func New() (*Canvas, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("softraster: load font: %w", err)
	}
	c := &Canvas{
		dc:   gg.NewContext(board.CanvasWidth, board.CanvasHeight),
		face: src.Face(labelSize),
	}
	c.dc.SetFont(c.face)
	return c, nil
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("softraster: encode png: %w", err)
	}
	return nil
}

// Render draws one board frame onto a new canvas.
func Render(ctx *board.SceneContext) (*Canvas, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	board.Render(ctx, c)
	return c, nil
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil {
		board.Logger().Warn("softraster fill failed", "err", err)
	}
}

func (c *Canvas) stroke(width float64) {
	c.dc.SetLineWidth(width)
	if err := c.dc.Stroke(); err != nil {
		board.Logger().Warn("softraster stroke failed", "err", err)
	}
}

func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(0, 0, board.CanvasWidth, board.CanvasHeight)
	c.fill()
}

func (c *Canvas) FillRect(r board.Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.fill()
}

func (c *Canvas) StrokeRect(r board.Rect, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.stroke(width)
}

func (c *Canvas) Line(a, b board.Vec2, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.stroke(width)
}

// Arc maps the on-screen counter-clockwise sweep onto gg's y-down angles.
// Non-square bounds fall back to a polyline.
func (c *Canvas) Arc(bounds board.Rect, start, end, width float64, col color.Color) {
	c.dc.SetColor(col)
	if bounds.W == bounds.H {
		ctr := bounds.Center()
		c.dc.DrawArc(ctr.X, ctr.Y, bounds.W/2, -end, -start)
		c.stroke(width)
		return
	}
	pts := board.ArcPoints(bounds, start, end, arcSegments)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.stroke(width)
}

func (c *Canvas) FillCircle(center board.Vec2, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.fill()
}

func (c *Canvas) FillPolygon(pts []board.Vec2, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.dc.SetColor(col)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.fill()
}

func (c *Canvas) Span(x0, x1, y int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x0), float64(y), float64(x1-x0+1), 1)
	c.fill()
}

// Text positions s by its top-left corner; gg draws from the baseline.
func (c *Canvas) Text(s string, pos board.Vec2, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawString(s, pos.X, pos.Y+labelSize)
}
