package board

import (
	"fmt"
	"log/slog"
)

// SceneContext bundles everything one board session owns. The frame loop
// holds exactly one and passes it to Apply and Render; tests build their own.
type SceneContext struct {
	Scene   *Scene
	State   State
	Pointer Vec2 // last known pointer position, drives the live preview
	Log     *ActionLog

	// ShowStatus toggles the toolbar status text.
	ShowStatus bool
}

// NewSceneContext returns a fresh board with players in their start columns.
func NewSceneContext() *SceneContext {
	return &SceneContext{
		Scene:      NewScene(),
		State:      IdleState(),
		Log:        NewActionLog(),
		ShowStatus: true,
	}
}

// Drain applies queued events in order. It stops at the first Quit event,
// leaving the rest unprocessed, and reports whether one was seen.
func (c *SceneContext) Drain(events []Event) (quit bool) {
	for _, ev := range events {
		if ev.Kind == EventQuit {
			Logger().Debug("quit requested")
			return true
		}
		c.Apply(ev)
	}
	return false
}

// Apply runs one event through Transition and carries out its effect.
func (c *SceneContext) Apply(ev Event) {
	switch ev.Kind {
	case EventPointerDown, EventPointerMove, EventPointerUp:
		c.Pointer = ev.Pos
	}

	prev := c.State
	next, eff := Transition(prev, c.Scene, ev)
	c.State = next

	switch eff.Kind {
	case EffectMove:
		c.Scene.MoveEntity(eff.Entity, eff.Pos)
	case EffectCommit:
		s := c.Scene.AddShape(eff.Shape)
		c.Log.Add(ActionShape, fmt.Sprintf("%s %s->%s", s.Kind, fmtPoint(s.Start), fmtPoint(s.End)))
		Logger().Info("shape committed",
			slog.String("id", s.ID),
			slog.String("kind", s.Kind.String()),
			slog.Float64("x0", s.Start.X), slog.Float64("y0", s.Start.Y),
			slog.Float64("x1", s.End.X), slog.Float64("y1", s.End.Y))
	}

	c.logStateChange(prev, next, ev)
}

// logStateChange records tool switches, drags and cancels.
func (c *SceneContext) logStateChange(prev, next State, ev Event) {
	if next.Mode != prev.Mode && next.Mode != ModeNone {
		c.Log.Add(ActionTool, "selected "+next.Mode.String())
		Logger().Info("tool selected", slog.String("mode", next.Mode.String()))
	}
	if ev.Kind == EventCancel && prev.Mode != ModeNone {
		c.Log.Add(ActionCancel, "left "+prev.Mode.String())
	}
	if next.HasAnchor && !prev.HasAnchor {
		Logger().Debug("gesture armed", slog.Float64("x", next.Anchor.X), slog.Float64("y", next.Anchor.Y))
	}
	if prev.Drag.Valid() && next.Drag != prev.Drag {
		e := c.Scene.Entity(prev.Drag)
		c.Log.Add(ActionDrag, fmt.Sprintf("%s to %s", e.Label(), fmtPoint(e.Pos)))
		Logger().Debug("drag released", slog.String("entity", e.Label()))
	}
	if next.Drag.Valid() && next.Drag != prev.Drag {
		Logger().Debug("drag started", slog.String("entity", c.Scene.Entity(next.Drag).Label()))
	}
}

func fmtPoint(p Vec2) string {
	return fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y)
}
