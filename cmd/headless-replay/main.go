package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Garsondee/Tactical-Board/internal/board"
	"github.com/Garsondee/Tactical-Board/internal/softraster"
)

type replayResult struct {
	events    int
	applied   int
	quit      bool
	shapes    string
	moved     string
	histogram string
	recent    []board.ActionEntry
}

func main() {
	var opts options
	flag.StringVar(&opts.script, "script", "", "gesture script, e.g. \"tool:rect down:100,100 up:200,150\"")
	flag.StringVar(&opts.scriptFile, "file", "", "read the gesture script from a file instead")
	flag.StringVar(&opts.pngPath, "png", "", "write the final frame to this PNG path")
	flag.BoolVar(&opts.verbose, "v", false, "log every state change to stderr")
	flag.Parse()

	if opts.verbose {
		board.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	script     string
	scriptFile string
	pngPath    string
	verbose    bool
}

func run(w io.Writer, opts options) error {
	script := opts.script
	if opts.scriptFile != "" {
		data, err := os.ReadFile(opts.scriptFile)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script = string(data)
	}
	if strings.TrimSpace(script) == "" {
		return errors.New("-script or -file is required")
	}

	events, err := board.ParseScript(script)
	if err != nil {
		return err
	}

	ctx := board.NewSceneContext()
	printReport(w, replay(ctx, events))

	if opts.pngPath != "" {
		if err := writePNG(ctx, opts.pngPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nframe written to %s\n", opts.pngPath)
	}
	return nil
}

// replay drains events into ctx and captures what one frame of the result
// would draw.
func replay(ctx *board.SceneContext, events []board.Event) replayResult {
	quit := ctx.Drain(events)
	applied := len(events)
	if quit {
		applied = quitIndex(events) + 1
	}

	var rec board.Recorder
	board.Render(ctx, &rec)

	return replayResult{
		events:    len(events),
		applied:   applied,
		quit:      quit,
		shapes:    board.ShapeSummary(ctx.Scene),
		moved:     board.EntitySummary(ctx.Scene),
		histogram: rec.HistogramString(),
		recent:    ctx.Log.Recent(),
	}
}

func quitIndex(events []board.Event) int {
	for i, ev := range events {
		if ev.Kind == board.EventQuit {
			return i
		}
	}
	return len(events) - 1
}

func printReport(w io.Writer, res replayResult) {
	fmt.Fprintf(w, "=== Board Replay Report ===\n")
	fmt.Fprintf(w, "events=%d applied=%d quit=%v\n\n", res.events, res.applied, res.quit)

	fmt.Fprintf(w, "-- shapes --\n%s", orNone(res.shapes))
	fmt.Fprintf(w, "\n-- moved --\n%s", orNone(res.moved))
	fmt.Fprintf(w, "\n-- draw calls --\n%s\n", res.histogram)

	fmt.Fprintf(w, "\n-- actions --\n")
	if len(res.recent) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for _, e := range res.recent {
		fmt.Fprintln(w, e.String())
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)\n"
	}
	return s
}

func writePNG(ctx *board.SceneContext, path string) error {
	c, err := softraster.Render(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
