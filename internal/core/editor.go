// Package core holds the headless editor state: the canvas, its history, the
// selection and the drag controller, plus every operation that changes them.
// Nothing in here knows about the terminal.
package core

import (
	"fmt"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/core/clipboard"
	"github.com/bethropolis/canvaspad/internal/core/drag"
	"github.com/bethropolis/canvaspad/internal/core/history"
	"github.com/bethropolis/canvaspad/internal/core/selection"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
)

// Options configures a new Editor.
type Options struct {
	FontSizePx   int
	FontFamily   string
	FontSizes    []int
	FontFamilies []string
	HistoryLimit int
	// Clipboard is optional; an internal-only register is used when nil.
	Clipboard *clipboard.Manager
}

// Editor is the application state. Every mutation of the canvas goes
// through it.
type Editor struct {
	canvas    *canvas.Canvas
	history   *history.Manager
	selection *selection.Manager
	drag      *drag.Controller
	clipboard *clipboard.Manager
	measurer  canvas.Measurer
	events    *event.Manager

	// Toolbar values applied to new elements.
	fontSizePx   int
	fontFamily   string
	fontSizes    []int
	fontFamilies []string

	origin types.Point // canvas top-left in screen pixels
	size   types.Size  // canvas size in pixels

	dragStart canvas.Snapshot // canvas as it was when the current drag began
}

// NewEditor creates an editor over an empty canvas. events may be nil.
func NewEditor(opts Options, measurer canvas.Measurer, events *event.Manager) *Editor {
	c := canvas.New()
	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.NewManager(nil)
	}
	e := &Editor{
		canvas:       c,
		history:      history.NewManager(c, opts.HistoryLimit, events),
		selection:    selection.NewManager(),
		drag:         drag.NewController(),
		clipboard:    cb,
		measurer:     measurer,
		events:       events,
		fontSizePx:   opts.FontSizePx,
		fontFamily:   opts.FontFamily,
		fontSizes:    append([]int(nil), opts.FontSizes...),
		fontFamilies: append([]string(nil), opts.FontFamilies...),
	}
	if e.fontSizePx <= 0 {
		e.fontSizePx = 20
	}
	return e
}

// SetGeometry places the canvas on screen. Both values are in pixels.
func (e *Editor) SetGeometry(origin types.Point, size types.Size) {
	e.origin = origin
	e.size = size
}

// CanvasOrigin returns the canvas top-left corner in screen pixels.
func (e *Editor) CanvasOrigin() types.Point { return e.origin }

// CanvasSize returns the canvas size in pixels.
func (e *Editor) CanvasSize() types.Size { return e.size }

// Canvas returns the live canvas. Callers must not mutate it directly.
func (e *Editor) Canvas() *canvas.Canvas { return e.canvas }

// History returns the snapshot history.
func (e *Editor) History() *history.Manager { return e.history }

// Measurer returns the measurer used for hit testing and clamping.
func (e *Editor) Measurer() canvas.Measurer { return e.measurer }

// FontSize returns the toolbar font size.
func (e *Editor) FontSize() int { return e.fontSizePx }

// FontFamily returns the toolbar font family.
func (e *Editor) FontFamily() string { return e.fontFamily }

// Bounds returns the element's visual box in canvas pixels.
func (e *Editor) Bounds(el *canvas.Element) types.Rect {
	return canvas.Bounds(el, e.measurer)
}

// ElementAt returns the topmost element under the canvas point p.
func (e *Editor) ElementAt(p types.Point) (*canvas.Element, bool) {
	return e.canvas.ElementAt(p, e.measurer)
}

// Selected resolves the selected ID against the live canvas.
func (e *Editor) Selected() (*canvas.Element, bool) {
	id, ok := e.selection.Selected()
	if !ok {
		return nil, false
	}
	return e.canvas.Find(id)
}

// Focused resolves the element receiving typed text.
func (e *Editor) Focused() (*canvas.Element, bool) {
	id, ok := e.selection.Focused()
	if !ok {
		return nil, false
	}
	return e.canvas.Find(id)
}

// Select selects and focuses the element with id. It reports whether the
// element exists.
func (e *Editor) Select(id string) bool {
	if !e.canvas.Has(id) {
		return false
	}
	changed := e.selection.Select(id)
	e.selection.Focus(id)
	if changed {
		e.dispatch(event.TypeSelectionChanged, event.SelectionData{ID: id})
	}
	return true
}

// Deselect clears selection and focus.
func (e *Editor) Deselect() bool {
	if !e.selection.Clear() {
		return false
	}
	e.dispatch(event.TypeSelectionChanged, event.SelectionData{})
	return true
}

// Blur stops routing typed text to the focused element. The selection stays.
func (e *Editor) Blur() bool {
	if _, ok := e.selection.Focused(); !ok {
		return false
	}
	e.selection.Blur()
	return true
}

// Save records the current canvas as an undo point.
func (e *Editor) Save() error {
	if err := e.history.Save(); err != nil {
		logger.Errorf("Editor.Save: %v", err)
		return err
	}
	return nil
}

// Undo restores the last saved state. Selection and focus are re-resolved
// against the restored tree.
func (e *Editor) Undo() (bool, error) {
	ok, err := e.history.Undo()
	if err != nil {
		return false, fmt.Errorf("undo: %w", err)
	}
	if ok {
		e.afterRestore()
	}
	return ok, nil
}

// Redo reapplies the last undone state.
func (e *Editor) Redo() (bool, error) {
	ok, err := e.history.Redo()
	if err != nil {
		return false, fmt.Errorf("redo: %w", err)
	}
	if ok {
		e.afterRestore()
	}
	return ok, nil
}

// afterRestore drops state that may point at discarded elements.
func (e *Editor) afterRestore() {
	if e.drag.State() == drag.Dragging {
		logger.DebugTagf("core", "restore cancelled drag in progress")
		e.drag.Cancel()
		e.dragStart = nil
	}
	if e.selection.Resolve(e.canvas.Has) {
		e.dispatch(event.TypeSelectionChanged, event.SelectionData{})
	}
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.events != nil {
		e.events.Dispatch(t, data)
	}
}
