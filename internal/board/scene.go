package board

import (
	"fmt"
	"image/color"

	"go.jetify.com/typeid/v2"
)

// EntityKind distinguishes the draggable markers.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindBall
)

// Team identifies which side a player belongs to. The ball has NoTeam.
type Team int

const (
	NoTeam Team = iota
	TeamA
	TeamB
)

// String returns a short label for log lines.
func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return "-"
	}
}

// Entity is a circular marker on the field.
type Entity struct {
	Kind   EntityKind
	Team   Team
	Number int // 1-based shirt number within the team; 0 for the ball
	Pos    Vec2
	Radius float64
	Color  color.RGBA
}

// Label returns "A7", "B11" or "ball".
func (e Entity) Label() string {
	if e.Kind == KindBall {
		return "ball"
	}
	return fmt.Sprintf("%s%d", e.Team, e.Number)
}

// EntityRef is an index into the scene's entity arena.
type EntityRef int

// NoEntity is the zero selection.
const NoEntity EntityRef = -1

// Valid reports whether ref points at an entity.
func (r EntityRef) Valid() bool { return r >= 0 }

// ShapeKind is the type of an annotation and doubles as the drawing tool.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeArrow
)

// String returns the lowercase tool name.
func (k ShapeKind) String() string {
	if k == ShapeArrow {
		return "arrow"
	}
	return "rect"
}

// AnnotationShape is a committed user drawing. It is never changed after
// AddShape.
type AnnotationShape struct {
	ID    string
	Kind  ShapeKind
	Start Vec2
	End   Vec2
	Color color.RGBA
}

// shapeIDPrefix tags annotation IDs.
const shapeIDPrefix = "shape"

// Scene owns every entity and annotation on the board.
type Scene struct {
	entities []Entity
	ball     EntityRef
	shapes   []AnnotationShape
}

// NewScene places both teams in their starting columns and the ball at the
// centre spot. Entities are stored team A first, then team B, then the ball.
func NewScene() *Scene {
	sc := &Scene{entities: make([]Entity, 0, 2*PlayersPerSide+1)}
	sc.spawnTeam(TeamA, 0.25, colorTeamA)
	sc.spawnTeam(TeamB, 0.75, colorTeamB)
	sc.ball = EntityRef(len(sc.entities))
	sc.entities = append(sc.entities, Entity{
		Kind:   KindBall,
		Team:   NoTeam,
		Pos:    FieldRect.Center(),
		Radius: BallRadius,
		Color:  colorBall,
	})
	return sc
}

// spawnTeam lays a team out as a vertical column at xFrac of the field width.
func (sc *Scene) spawnTeam(team Team, xFrac float64, c color.RGBA) {
	f := FieldRect
	step := (f.H - 2*playerMargin) / float64(PlayersPerSide-1)
	for i := 0; i < PlayersPerSide; i++ {
		sc.entities = append(sc.entities, Entity{
			Kind:   KindPlayer,
			Team:   team,
			Number: i + 1,
			Pos:    Vec2{X: f.X + f.W*xFrac, Y: f.Y + playerMargin + float64(i)*step},
			Radius: PlayerRadius,
			Color:  c,
		})
	}
}

// Entities returns the arena in render order, ball last. The slice is shared;
// callers must not modify it.
func (sc *Scene) Entities() []Entity { return sc.entities }

// Entity returns the entity at ref.
func (sc *Scene) Entity(ref EntityRef) Entity { return sc.entities[ref] }

// Ball returns the ref of the ball.
func (sc *Scene) Ball() EntityRef { return sc.ball }

// Shapes returns the committed annotations, oldest first.
func (sc *Scene) Shapes() []AnnotationShape { return sc.shapes }

// AddShape appends a committed annotation, assigning an ID if it has none,
// and returns the stored copy.
func (sc *Scene) AddShape(s AnnotationShape) AnnotationShape {
	if s.ID == "" {
		s.ID = typeid.MustGenerate(shapeIDPrefix).String()
	}
	sc.shapes = append(sc.shapes, s)
	return s
}

// MoveEntity sets the position of ref. Bounds are the caller's concern.
func (sc *Scene) MoveEntity(ref EntityRef, pos Vec2) {
	sc.entities[ref].Pos = pos
}
