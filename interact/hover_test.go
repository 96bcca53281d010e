package interact

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestHoverTransitions(t *testing.T) {
	var h Hover
	if _, ok := h.Index(); ok || h.State() != Idle {
		t.Fatal("zero Hover is not idle")
	}

	h.Enter(2, gg.Pt(10, 10))
	if i, ok := h.Index(); !ok || i != 2 {
		t.Fatalf("after Enter(2): Index = %d, %v", i, ok)
	}

	// entering another item replaces the hover without passing through idle
	h.Enter(3, gg.Pt(20, 20))
	if !h.Is(3) || h.Is(2) {
		t.Fatal("Enter(3) did not replace hovered item")
	}

	// a stale leave for the previous item is ignored
	h.Leave(2)
	if !h.Is(3) {
		t.Fatal("Leave(2) cleared hover of item 3")
	}

	h.Move(gg.Pt(25, 30))
	if h.Pointer() != gg.Pt(25, 30) {
		t.Errorf("Pointer = %v, want (25, 30)", h.Pointer())
	}

	h.Leave(3)
	if h.State() != Idle {
		t.Fatal("Leave(3) did not return to idle")
	}

	h.Move(gg.Pt(99, 99))
	if h.Pointer() != (gg.Point{}) {
		t.Error("Move while idle changed the pointer")
	}

	h.Enter(1, gg.Pt(0, 0))
	h.Clear()
	if h.State() != Idle {
		t.Error("Clear did not return to idle")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Hovering.String() != "hovering" {
		t.Errorf("State strings = %q, %q", Idle, Hovering)
	}
}
