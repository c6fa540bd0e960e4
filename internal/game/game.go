package game

import (
	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/Garsondee/Tactical-Board/internal/config"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a board session to ebiten's run loop. Update turns this
// frame's input into queued board events and drains them; Draw renders the
// board onto the screen surface.
type Game struct {
	cfg     *config.Config
	session *board.SceneContext
	surface *screenSurface

	prevPointer pointerSample
	pending     []board.Event

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error
}

// New creates a game with a fresh board.
func New(cfg *config.Config) *Game {
	ctx := board.NewSceneContext()
	ctx.ShowStatus = cfg.ShowStatus
	return &Game{
		cfg:            cfg,
		session:        ctx,
		surface:        newScreenSurface(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Update runs once per tick. Events are drained in arrival order; a quit
// event ends the run loop before anything after it is processed.
func (g *Game) Update() error {
	g.pending = g.pollInput(g.pending[:0])
	if g.session.Drain(g.pending) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	board.Render(g.session, g.surface)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return board.CanvasWidth, board.CanvasHeight
}

// Board exposes the session for tools that drive the game headlessly.
func (g *Game) Board() *board.SceneContext {
	return g.session
}
