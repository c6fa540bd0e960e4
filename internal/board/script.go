package board

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript turns a whitespace-separated gesture script into events.
//
//	tool:rect down:100,100 move:150,120 up:200,150 cancel quit
//
// Recognised steps: down/move/up with "x,y", tool with rect|arrow, cancel
// and quit.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for i, step := range strings.Fields(script) {
		verb, arg, _ := strings.Cut(step, ":")
		switch verb {
		case "down", "move", "up":
			p, err := parsePoint(arg)
			if err != nil {
				return nil, fmt.Errorf("step %d %q: %w", i+1, step, err)
			}
			switch verb {
			case "down":
				events = append(events, PointerDown(p.X, p.Y))
			case "move":
				events = append(events, PointerMove(p.X, p.Y))
			default:
				events = append(events, PointerUp(p.X, p.Y))
			}
		case "tool":
			switch arg {
			case "rect":
				events = append(events, SelectTool(ShapeRectangle))
			case "arrow", "line":
				events = append(events, SelectTool(ShapeArrow))
			default:
				return nil, fmt.Errorf("step %d %q: unknown tool %q", i+1, step, arg)
			}
		case "cancel":
			events = append(events, Cancel())
		case "quit":
			events = append(events, Quit())
		default:
			return nil, fmt.Errorf("step %d %q: unknown verb %q", i+1, step, verb)
		}
	}
	return events, nil
}

func parsePoint(s string) (Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vec2{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Vec2{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Vec2{}, fmt.Errorf("bad y: %w", err)
	}
	return Vec2{X: x, Y: y}, nil
}
