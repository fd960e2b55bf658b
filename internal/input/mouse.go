package input

import (
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// PointerPhase is the edge a mouse event represents.
type PointerPhase int

const (
	PointerNone PointerPhase = iota // hover or wheel
	PointerDown
	PointerMove
	PointerUp
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "none"
	}
}

// PointerEvent is a mouse edge in terminal cells.
type PointerEvent struct {
	Phase PointerPhase
	Cell  types.Point
	// Button is the pressed button; on PointerUp, the one released.
	Button tcell.ButtonMask
}

// Primary reports whether the left button is involved.
func (e PointerEvent) Primary() bool {
	return e.Button&tcell.Button1 != 0
}

const trackedButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// MouseTracker turns tcell's button-state mouse events into down, move and up
// edges. tcell reports which buttons are held; releases show up as an event
// with no buttons.
type MouseTracker struct {
	pressed tcell.ButtonMask
	last    types.Point
}

// NewMouseTracker creates a tracker with no button held.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{}
}

// Track classifies ev.
func (t *MouseTracker) Track(ev *tcell.EventMouse) PointerEvent {
	x, y := ev.Position()
	cell := types.Point{X: x, Y: y}
	buttons := ev.Buttons() & trackedButtons

	var out PointerEvent
	switch {
	case t.pressed == 0 && buttons != 0:
		t.pressed = buttons
		out = PointerEvent{Phase: PointerDown, Cell: cell, Button: buttons}
	case t.pressed != 0 && buttons == 0:
		out = PointerEvent{Phase: PointerUp, Cell: cell, Button: t.pressed}
		t.pressed = 0
	case t.pressed != 0 && cell != t.last:
		out = PointerEvent{Phase: PointerMove, Cell: cell, Button: t.pressed}
	default:
		out = PointerEvent{Phase: PointerNone, Cell: cell}
	}
	t.last = cell
	return out
}

// Pressed reports whether a tracked button is held.
func (t *MouseTracker) Pressed() bool {
	return t.pressed != 0
}
