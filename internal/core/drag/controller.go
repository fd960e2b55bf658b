// Package drag implements the pointer drag state machine: Idle -> Dragging
// -> Idle. It only computes positions; applying them and saving history is
// the caller's job.
package drag

import (
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller tracks at most one dragged element by ID.
type Controller struct {
	state  State
	target string
	offset types.Point // pointer minus element top-left at grab time
}

// NewController returns an idle controller.
func NewController() *Controller {
	return &Controller{}
}

// Begin starts dragging id. pointer and elementOrigin must be in the same
// coordinate space; their difference is the grab point that later moves
// preserve. Calling Begin while dragging retargets the controller.
func (c *Controller) Begin(id string, pointer, elementOrigin types.Point) {
	c.state = Dragging
	c.target = id
	c.offset = pointer.Sub(elementOrigin)
	logger.DebugTagf("drag", "begin %q offset %v", id, c.offset)
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Target returns the dragged element ID while dragging.
func (c *Controller) Target() (string, bool) {
	return c.target, c.state == Dragging
}

// Offset returns the recorded grab offset.
func (c *Controller) Offset() types.Point {
	return c.offset
}

// Position computes the element's new top-left in canvas coordinates for a
// pointer at the given screen position, clamped so the element stays inside
// the canvas.
func (c *Controller) Position(pointer, canvasOrigin types.Point, element, canvas types.Size) types.Point {
	raw := pointer.Sub(canvasOrigin).Sub(c.offset)
	return types.Point{
		X: types.Clamp(raw.X, canvas.W-element.W),
		Y: types.Clamp(raw.Y, canvas.H-element.H),
	}
}

// End finishes the drag and returns the element that was being dragged.
func (c *Controller) End() (string, bool) {
	if c.state != Dragging {
		return "", false
	}
	id := c.target
	c.reset()
	logger.DebugTagf("drag", "end %q", id)
	return id, true
}

// Cancel drops any drag in progress.
func (c *Controller) Cancel() {
	if c.state == Dragging {
		logger.DebugTagf("drag", "cancel %q", c.target)
	}
	c.reset()
}

func (c *Controller) reset() {
	c.state = Idle
	c.target = ""
	c.offset = types.Point{}
}
