package board

// Mode is the active annotation tool.
type Mode int

const (
	ModeNone Mode = iota
	ModeDrawRectangle
	ModeDrawArrow
)

// String returns the tool name shown in the toolbar status.
func (m Mode) String() string {
	switch m {
	case ModeDrawRectangle:
		return "rect"
	case ModeDrawArrow:
		return "arrow"
	default:
		return "none"
	}
}

// modeFor maps a tool to the drawing mode it enters.
func modeFor(k ShapeKind) Mode {
	if k == ShapeArrow {
		return ModeDrawArrow
	}
	return ModeDrawRectangle
}

// shapeKind returns the shape a drawing mode produces. Only meaningful when
// m != ModeNone.
func (m Mode) shapeKind() ShapeKind {
	if m == ModeDrawArrow {
		return ShapeArrow
	}
	return ShapeRectangle
}

// EventKind enumerates queued input events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventSelectTool
	EventCancel
)

// Event is one queued input. Pos is set for pointer events, Tool for
// EventSelectTool.
type Event struct {
	Kind EventKind
	Pos  Vec2
	Tool ShapeKind
}

// PointerDown, PointerMove and PointerUp build pointer events.
func PointerDown(x, y float64) Event { return Event{Kind: EventPointerDown, Pos: Vec2{X: x, Y: y}} }
func PointerMove(x, y float64) Event { return Event{Kind: EventPointerMove, Pos: Vec2{X: x, Y: y}} }
func PointerUp(x, y float64) Event   { return Event{Kind: EventPointerUp, Pos: Vec2{X: x, Y: y}} }

// SelectTool is the keyboard equivalent of clicking a tool button.
func SelectTool(k ShapeKind) Event { return Event{Kind: EventSelectTool, Tool: k} }

// Cancel leaves any drawing mode and drops the current gesture.
func Cancel() Event { return Event{Kind: EventCancel} }

// Quit ends the frame loop.
func Quit() Event { return Event{Kind: EventQuit} }

// State is the interaction state between events.
//
//	Idle:                 Mode == ModeNone, Drag invalid
//	Dragging(ref):        Mode == ModeNone, Drag valid
//	Drawing(mode):        Mode != ModeNone, !HasAnchor
//	Drawing(mode, armed): Mode != ModeNone, HasAnchor
type State struct {
	Mode      Mode
	Drag      EntityRef
	Anchor    Vec2
	HasAnchor bool
}

// IdleState is the starting state.
func IdleState() State {
	return State{Mode: ModeNone, Drag: NoEntity}
}

// Armed reports whether a shape gesture is waiting for pointer-up.
func (s State) Armed() bool {
	return s.Mode != ModeNone && s.HasAnchor
}

// EffectKind is the scene mutation a transition asks for.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectMove
	EffectCommit
)

// Effect describes a scene mutation. Transition never touches the scene;
// SceneContext.Apply carries the effect out.
type Effect struct {
	Kind   EffectKind
	Entity EntityRef
	Pos    Vec2
	Shape  AnnotationShape
}

// Transition computes the next state for ev. The scene is read for hit
// testing only. Out-of-field pointer positions are ignored, never errors.
func Transition(st State, sc *Scene, ev Event) (State, Effect) {
	none := Effect{Kind: EffectNone, Entity: NoEntity}

	switch ev.Kind {
	case EventSelectTool:
		return State{Mode: modeFor(ev.Tool), Drag: NoEntity}, none

	case EventCancel:
		return IdleState(), none

	case EventPointerDown:
		t := HitTest(sc, st.Mode, ev.Pos)
		switch t.Kind {
		case TargetTool:
			// Pre-empts any drag or half-drawn shape.
			return State{Mode: modeFor(t.Tool), Drag: NoEntity}, none
		case TargetField:
			if st.Mode != ModeNone && !st.HasAnchor {
				st.Anchor = ev.Pos
				st.HasAnchor = true
			}
		case TargetBall, TargetPlayer:
			st.Drag = t.Entity
		}
		return st, none

	case EventPointerMove:
		if st.Drag.Valid() && FieldRect.Contains(ev.Pos) {
			return st, Effect{Kind: EffectMove, Entity: st.Drag, Pos: ev.Pos}
		}
		return st, none

	case EventPointerUp:
		eff := none
		if st.Armed() {
			eff = Effect{
				Kind:   EffectCommit,
				Entity: NoEntity,
				Shape: AnnotationShape{
					Kind:  st.Mode.shapeKind(),
					Start: st.Anchor,
					End:   ev.Pos,
					Color: DefaultShapeColor,
				},
			}
			st.Mode = ModeNone
			st.Anchor = Vec2{}
			st.HasAnchor = false
		}
		st.Drag = NoEntity
		return st, eff
	}
	return st, none
}
