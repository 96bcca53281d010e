package interact

import "github.com/gogpu/gg"

// State is the hover state.
type State int

const (
	Idle State = iota
	Hovering
)

func (s State) String() string {
	if s == Hovering {
		return "hovering"
	}
	return "idle"
}

// Hover tracks which item, if any, is under the pointer.
//
// Each transition is a single assignment of the whole value, so a reader
// never observes an index from one event with the pointer of another.
// The zero value is Idle.
type Hover struct {
	state   State
	index   int
	pointer gg.Point
}

// Enter moves to Hovering(i) at pointer p.
func (h *Hover) Enter(i int, p gg.Point) {
	*h = Hover{state: Hovering, index: i, pointer: p}
}

// Leave returns to Idle when i is the hovered item. Leaving an item that is
// not hovered is ignored.
func (h *Hover) Leave(i int) {
	if h.state == Hovering && h.index == i {
		*h = Hover{}
	}
}

// Move updates the pointer position while hovering.
func (h *Hover) Move(p gg.Point) {
	if h.state == Hovering {
		h.pointer = p
	}
}

// Clear returns to Idle unconditionally.
func (h *Hover) Clear() { *h = Hover{} }

// Index returns the hovered item.
func (h Hover) Index() (int, bool) {
	return h.index, h.state == Hovering
}

// State returns the current state.
func (h Hover) State() State { return h.state }

// Pointer returns the last pointer position seen while hovering.
func (h Hover) Pointer() gg.Point { return h.pointer }

// Is reports whether item i is hovered.
func (h Hover) Is(i int) bool {
	return h.state == Hovering && h.index == i
}
