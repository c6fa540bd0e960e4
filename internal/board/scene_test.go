package board

import (
	"strings"
	"testing"
)

func TestNewScene_Layout(t *testing.T) {
	sc := NewScene()
	ents := sc.Entities()
	if len(ents) != 2*PlayersPerSide+1 {
		t.Fatalf("expected %d entities, got %d", 2*PlayersPerSide+1, len(ents))
	}
	for i := 0; i < PlayersPerSide; i++ {
		if ents[i].Team != TeamA || ents[i].Kind != KindPlayer {
			t.Fatalf("entity %d: expected team A player, got %+v", i, ents[i])
		}
		if ents[PlayersPerSide+i].Team != TeamB {
			t.Fatalf("entity %d: expected team B player, got %+v", PlayersPerSide+i, ents[PlayersPerSide+i])
		}
	}
	last := ents[len(ents)-1]
	if last.Kind != KindBall || sc.Ball() != EntityRef(len(ents)-1) {
		t.Fatalf("expected ball last, got %+v", last)
	}
	if last.Pos != (Vec2{400, 325}) || last.Radius != BallRadius {
		t.Fatalf("expected ball at (400,325) r=7, got %+v", last)
	}
}

func TestNewScene_PlayerColumns(t *testing.T) {
	ents := NewScene().Entities()
	if ents[0].Pos != (Vec2{200, 80}) {
		t.Fatalf("expected A1 at (200,80), got %+v", ents[0].Pos)
	}
	if ents[10].Pos != (Vec2{200, 570}) {
		t.Fatalf("expected A11 at (200,570), got %+v", ents[10].Pos)
	}
	if ents[11].Pos != (Vec2{600, 80}) {
		t.Fatalf("expected B1 at (600,80), got %+v", ents[11].Pos)
	}
	for _, e := range ents {
		if !FieldRect.Contains(e.Pos) {
			t.Fatalf("%s starts outside the field at %+v", e.Label(), e.Pos)
		}
	}
}

func TestScene_MoveEntityDoesNotClamp(t *testing.T) {
	sc := NewScene()
	sc.MoveEntity(3, Vec2{-50, 900})
	if sc.Entity(3).Pos != (Vec2{-50, 900}) {
		t.Fatalf("expected model to accept any position, got %+v", sc.Entity(3).Pos)
	}
}

func TestScene_AddShapeKeepsOrderAndAssignsID(t *testing.T) {
	sc := NewScene()
	a := sc.AddShape(AnnotationShape{Kind: ShapeRectangle, Start: Vec2{1, 2}, End: Vec2{3, 4}})
	b := sc.AddShape(AnnotationShape{ID: "fixed", Kind: ShapeArrow})
	shapes := sc.Shapes()
	if len(shapes) != 2 || shapes[0].Kind != ShapeRectangle || shapes[1].Kind != ShapeArrow {
		t.Fatalf("expected [rect arrow], got %+v", shapes)
	}
	if !strings.HasPrefix(a.ID, shapeIDPrefix+"_") {
		t.Fatalf("expected generated id with prefix %q, got %q", shapeIDPrefix, a.ID)
	}
	if b.ID != "fixed" {
		t.Fatalf("expected caller id kept, got %q", b.ID)
	}
}

func TestEntity_Label(t *testing.T) {
	sc := NewScene()
	if got := sc.Entity(0).Label(); got != "A1" {
		t.Fatalf("expected A1, got %s", got)
	}
	if got := sc.Entity(21).Label(); got != "B11" {
		t.Fatalf("expected B11, got %s", got)
	}
	if got := sc.Entity(sc.Ball()).Label(); got != "ball" {
		t.Fatalf("expected ball, got %s", got)
	}
}
