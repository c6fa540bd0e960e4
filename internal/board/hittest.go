package board

// TargetKind classifies what a pointer-down landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTool
	TargetBall
	TargetPlayer
	TargetField
)

// Target is the resolved hit for a pointer position.
type Target struct {
	Kind   TargetKind
	Tool   ShapeKind // valid when Kind == TargetTool
	Entity EntityRef // valid when Kind is TargetBall or TargetPlayer
}

// HitTest resolves pos to at most one target. Tool buttons win everywhere;
// inside the field the ball beats players, and players are tried in arena
// order with the first match winning. Entities are only pickable when no
// drawing mode is active.
func HitTest(sc *Scene, mode Mode, pos Vec2) Target {
	for _, b := range toolButtons {
		if b.rect.Contains(pos) {
			return Target{Kind: TargetTool, Tool: b.kind, Entity: NoEntity}
		}
	}
	if !FieldRect.Contains(pos) {
		return Target{Kind: TargetNone, Entity: NoEntity}
	}
	if mode != ModeNone {
		return Target{Kind: TargetField, Entity: NoEntity}
	}

	ball := sc.Entity(sc.Ball())
	if pos.Dist(ball.Pos) <= ball.Radius {
		return Target{Kind: TargetBall, Entity: sc.Ball()}
	}
	for i, e := range sc.Entities() {
		if e.Kind != KindPlayer {
			continue
		}
		if pos.Dist(e.Pos) <= e.Radius {
			return Target{Kind: TargetPlayer, Entity: EntityRef(i)}
		}
	}
	return Target{Kind: TargetField, Entity: NoEntity}
}
