package core

import (
	"errors"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
)

// ErrDragInProgress is returned by operations that would record history in
// the middle of a drag.
var ErrDragInProgress = errors.New("drag in progress")

// CreateElement places an empty element at canvas position (x, y) with
// default style, appends it on top, and selects and focuses it. It does not
// touch history.
func (e *Editor) CreateElement(x, y, fontSizePx int, fontFamily string) *canvas.Element {
	el := canvas.NewElement(x, y, canvas.DefaultStyle(fontSizePx, fontFamily))
	e.canvas.Append(el)
	logger.DebugTagf("core", "created element %s at (%d,%d) %dpx %s", el.ID, x, y, fontSizePx, fontFamily)
	e.dispatch(event.TypeElementCreated, event.ElementData{ID: el.ID})
	e.Select(el.ID)
	return el
}

// PlaceElement is the empty-canvas click: one undo point, then a new element
// at p using the toolbar size and family. It fails while a drag is in
// progress, since the drag's own undo point must stay on top.
func (e *Editor) PlaceElement(p types.Point) (*canvas.Element, error) {
	if e.Dragging() {
		return nil, ErrDragInProgress
	}
	if err := e.Save(); err != nil {
		return nil, err
	}
	return e.CreateElement(p.X, p.Y, e.fontSizePx, e.fontFamily), nil
}
