package game

import (
	"fmt"

	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerSample is the mouse state observed in one tick. down and up are
// the button edges ebiten reports for the tick; a click shorter than a tick
// can set both while pressed reads false.
type pointerSample struct {
	x, y     int
	pressed  bool
	down, up bool
}

// pointerEvents diffs two consecutive samples into board events: a move if
// the cursor changed position, then a down and/or up on a button edge.
func pointerEvents(prev, cur pointerSample, out []board.Event) []board.Event {
	x, y := float64(cur.x), float64(cur.y)
	if cur.x != prev.x || cur.y != prev.y {
		out = append(out, board.PointerMove(x, y))
	}
	if cur.down || (cur.pressed && !prev.pressed) {
		out = append(out, board.PointerDown(x, y))
	}
	if cur.up || (!cur.pressed && prev.pressed) {
		out = append(out, board.PointerUp(x, y))
	}
	return out
}

// toolKeys maps keyboard shortcuts to the toolbar buttons.
var toolKeys = [...]struct {
	key  ebiten.Key
	tool board.ShapeKind
}{
	{ebiten.KeyR, board.ShapeRectangle},
	{ebiten.KeyL, board.ShapeArrow},
}

// pollInput appends this tick's events to out. Keys that only touch the
// frontend (status toggle, clipboard) are handled in place.
func (g *Game) pollInput(out []board.Event) []board.Event {
	if ebiten.IsWindowBeingClosed() {
		return append(out, board.Quit())
	}

	mx, my := ebiten.CursorPosition()
	cur := pointerSample{
		x:       mx,
		y:       my,
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		down:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		up:      inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	out = pointerEvents(g.prevPointer, cur, out)
	g.prevPointer = cur

	for _, tk := range toolKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			out = append(out, board.SelectTool(tk.tool))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		out = append(out, board.Cancel())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.session.ShowStatus = !g.session.ShowStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyShapes()
	}
	return out
}

// copyShapes puts the shape summary on the system clipboard.
func (g *Game) copyShapes() {
	if !g.cfg.Clipboard {
		return
	}
	n := len(g.session.Scene.Shapes())
	if err := g.writeClipboard(board.ShapeSummary(g.session.Scene)); err != nil {
		// atotto needs xclip, xsel or wl-clipboard on Linux.
		board.Logger().Warn("clipboard copy failed", "err", err)
		g.session.Log.Add(board.ActionSystem, "clipboard unavailable")
		return
	}
	g.session.Log.Add(board.ActionSystem, fmt.Sprintf("copied %d shapes", n))
}
