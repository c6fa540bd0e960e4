package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/Garsondee/Tactical-Board/internal/config"
	"github.com/Garsondee/Tactical-Board/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lvl, _ := cfg.Level() // validated by Load
	board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(board.CanvasWidth*cfg.WindowScale), int(board.CanvasHeight*cfg.WindowScale))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
