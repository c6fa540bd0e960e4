package board

import (
	"strings"
	"testing"
)

func TestParseScript_AllVerbs(t *testing.T) {
	events, err := ParseScript("tool:rect down:100,100 move:150,120 up:200,150 tool:arrow cancel quit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Event{
		SelectTool(ShapeRectangle),
		PointerDown(100, 100),
		PointerMove(150, 120),
		PointerUp(200, 150),
		SelectTool(ShapeArrow),
		Cancel(),
		Quit(),
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
}

func TestParseScript_Errors(t *testing.T) {
	for _, script := range []string{"jump:1,2", "down:1", "up:a,2", "tool:circle"} {
		_, err := ParseScript(script)
		if err == nil {
			t.Fatalf("expected error for %q", script)
		}
		if !strings.Contains(err.Error(), "step 1") {
			t.Fatalf("expected step number in error, got %v", err)
		}
	}
}

func TestParseScript_Empty(t *testing.T) {
	events, err := ParseScript("   ")
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events and no error, got %v, %v", events, err)
	}
}
