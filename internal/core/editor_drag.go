package core

import (
	"fmt"

	"github.com/bethropolis/canvaspad/internal/core/drag"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
)

// BeginDrag grabs the element with id at the screen pixel pointer. The
// element is selected and focused. The canvas is captured so the whole drag
// becomes a single undo point on release.
func (e *Editor) BeginDrag(id string, pointer types.Point) error {
	el, ok := e.canvas.Find(id)
	if !ok {
		return fmt.Errorf("begin drag: no element %q", id)
	}
	snap, err := e.canvas.Snapshot()
	if err != nil {
		return fmt.Errorf("begin drag: %w", err)
	}
	e.Select(id)
	origin := e.origin.Add(e.Bounds(el).Origin())
	e.drag.Begin(id, pointer, origin)
	e.dragStart = snap
	logger.DebugTagf("drag", "begin %s pointer=%s offset=%s", id, pointer, e.drag.Offset())
	return nil
}

// DragTo moves the dragged element so the grab offset stays under pointer,
// clamped inside the canvas. No history is recorded while moving.
func (e *Editor) DragTo(pointer types.Point) bool {
	id, ok := e.drag.Target()
	if !ok {
		return false
	}
	el, ok := e.canvas.Find(id)
	if !ok {
		e.drag.Cancel()
		e.dragStart = nil
		return false
	}
	size := e.measurer.Measure(el.Text, el.Style)
	pos := e.drag.Position(pointer, e.origin, size, e.size)
	if el.Origin(size.W) == pos {
		return false
	}
	el.MoveOrigin(pos, size.W)
	return true
}

// EndDrag releases the element and records exactly one undo point holding
// the canvas from before the drag.
func (e *Editor) EndDrag() (bool, error) {
	id, ok := e.drag.End()
	if !ok {
		return false, nil
	}
	snap := e.dragStart
	e.dragStart = nil
	if snap == nil {
		return false, fmt.Errorf("end drag: no snapshot for %s", id)
	}
	e.history.Push(snap)
	logger.DebugTagf("drag", "end %s", id)
	e.dispatch(event.TypeElementChanged, event.ElementData{ID: id})
	return true, nil
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.drag.State() == drag.Dragging
}
