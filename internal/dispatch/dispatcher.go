// Package dispatch routes pointer gestures and key actions to the editor and
// reports the outcome on the status line.
package dispatch

import (
	"github.com/bethropolis/canvaspad/internal/core"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/input"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
)

// Notifier shows short feedback to the user.
type Notifier interface {
	SetTemporaryMessage(format string, args ...interface{})
}

// ExportFunc writes the canvas somewhere and returns where.
type ExportFunc func() (string, error)

// Config holds dependencies for the Dispatcher.
type Config struct {
	Editor       *core.Editor
	EventManager *event.Manager // optional
	Notifier     Notifier
	Export       ExportFunc      // optional; export reports unavailable when nil
	QuitSignal   chan<- struct{} // closed once on quit
}

// Dispatcher turns input into editor operations.
type Dispatcher struct {
	editor     *core.Editor
	events     *event.Manager
	notifier   Notifier
	export     ExportFunc
	quitSignal chan<- struct{}

	pending  *types.Point // canvas point of a press on empty canvas
	quitting bool
}

// New creates a Dispatcher.
func New(cfg Config) *Dispatcher {
	if cfg.Editor == nil || cfg.Notifier == nil || cfg.QuitSignal == nil {
		panic("dispatch.New: missing required dependencies in Config")
	}
	return &Dispatcher{
		editor:     cfg.Editor,
		events:     cfg.EventManager,
		notifier:   cfg.Notifier,
		export:     cfg.Export,
		quitSignal: cfg.QuitSignal,
	}
}

// Click handles a completed click at canvas point p: an element under the
// pointer is selected, otherwise a new element is placed there. Pointer
// input only reaches Click for presses on empty canvas; a press on an
// element starts a drag instead, which selects it and saves on release.
func (d *Dispatcher) Click(p types.Point) bool {
	if el, ok := d.editor.ElementAt(p); ok {
		return d.editor.Select(el.ID)
	}
	if _, err := d.editor.PlaceElement(p); err != nil {
		d.notifier.SetTemporaryMessage("Could not add text: %v", err)
		return false
	}
	return true
}

// PointerDown handles a primary press at screen pixel p. Pressing an element
// starts dragging it; pressing empty canvas arms a click for the release.
func (d *Dispatcher) PointerDown(p types.Point) bool {
	d.pending = nil
	local := p.Sub(d.editor.CanvasOrigin())
	if !d.insideCanvas(local) {
		return false
	}
	if el, ok := d.editor.ElementAt(local); ok {
		if err := d.editor.BeginDrag(el.ID, p); err != nil {
			logger.Warnf("Dispatcher: %v", err)
			return false
		}
		return true
	}
	d.pending = &local
	return false
}

// PointerMove follows the pointer while dragging.
func (d *Dispatcher) PointerMove(p types.Point) bool {
	if !d.editor.Dragging() {
		return false
	}
	return d.editor.DragTo(p)
}

// PointerUp finishes a drag or fires the armed click.
func (d *Dispatcher) PointerUp(p types.Point) bool {
	if d.editor.Dragging() {
		d.editor.DragTo(p)
		if _, err := d.editor.EndDrag(); err != nil {
			d.notifier.SetTemporaryMessage("Move failed: %v", err)
		}
		return true
	}
	if d.pending == nil {
		return false
	}
	at := *d.pending
	d.pending = nil
	return d.Click(at)
}

func (d *Dispatcher) insideCanvas(p types.Point) bool {
	size := d.editor.CanvasSize()
	return p.X >= 0 && p.Y >= 0 && p.X < size.W && p.Y < size.H
}

// HandleAction executes a key or toolbar action. It returns true when the
// screen needs to be redrawn.
func (d *Dispatcher) HandleAction(ev input.ActionEvent) bool {
	switch ev.Action {
	case input.ActionQuit:
		d.quit()
		return false

	case input.ActionInsertRune:
		text := ev.Text
		if text == "" {
			text = string(ev.Rune)
		}
		return d.editor.InsertText(text)
	case input.ActionInsertNewLine:
		return d.editor.InsertNewline()
	case input.ActionDeleteCharBackward:
		return d.editor.DeleteBackward()
	case input.ActionEscape:
		if d.editor.Blur() {
			return true
		}
		return d.editor.Deselect()

	case input.ActionToggleBold:
		return d.style(d.editor.ToggleBold())
	case input.ActionToggleItalic:
		return d.style(d.editor.ToggleItalic())
	case input.ActionToggleUnderline:
		return d.style(d.editor.ToggleUnderline())
	case input.ActionCenterAlign:
		return d.style(d.editor.CenterAlign())
	case input.ActionFontSizeUp:
		return d.toolbarValue(d.editor.CycleFontSize(1))
	case input.ActionFontSizeDown:
		return d.toolbarValue(d.editor.CycleFontSize(-1))
	case input.ActionFontFamilyNext:
		return d.toolbarValue(d.editor.CycleFontFamily(1))
	case input.ActionFontFamilyPrev:
		return d.toolbarValue(d.editor.CycleFontFamily(-1))

	case input.ActionUndo:
		undone, err := d.editor.Undo()
		switch {
		case err != nil:
			d.notifier.SetTemporaryMessage("Undo failed: %v", err)
			logger.Debugf("Undo error: %v", err)
			return true
		case !undone:
			d.notifier.SetTemporaryMessage("Nothing to undo")
			return true
		}
		d.notifier.SetTemporaryMessage("Undo completed")
		return true
	case input.ActionRedo:
		redone, err := d.editor.Redo()
		switch {
		case err != nil:
			d.notifier.SetTemporaryMessage("Redo failed: %v", err)
			logger.Debugf("Redo error: %v", err)
			return true
		case !redone:
			d.notifier.SetTemporaryMessage("Nothing to redo")
			return true
		}
		d.notifier.SetTemporaryMessage("Redo completed")
		return true

	case input.ActionCopy:
		copied, err := d.editor.Copy()
		switch {
		case err != nil:
			d.notifier.SetTemporaryMessage("Copy failed: %v", err)
		case copied:
			d.notifier.SetTemporaryMessage("Text copied to clipboard")
		default:
			d.notifier.SetTemporaryMessage("Nothing selected to copy")
		}
		return true
	case input.ActionPaste:
		pasted, err := d.editor.Paste()
		switch {
		case err != nil:
			d.notifier.SetTemporaryMessage("Paste failed: %v", err)
		case !pasted:
			d.notifier.SetTemporaryMessage("Nothing to paste")
		}
		return true

	case input.ActionExport:
		d.runExport()
		return true
	}
	return false
}

// style reports the result of an operation on the selected element.
func (d *Dispatcher) style(changed bool, err error) bool {
	if err != nil {
		d.notifier.SetTemporaryMessage("Style change failed: %v", err)
		return true
	}
	return changed
}

// toolbarValue is like style, but the toolbar itself changes even when no
// element is selected.
func (d *Dispatcher) toolbarValue(_ bool, err error) bool {
	if err != nil {
		d.notifier.SetTemporaryMessage("Style change failed: %v", err)
	}
	return true
}

func (d *Dispatcher) runExport() {
	if d.export == nil {
		d.notifier.SetTemporaryMessage("Export unavailable")
		return
	}
	path, err := d.export()
	if d.events != nil {
		d.events.Dispatch(event.TypeCanvasExported, event.ExportData{Path: path, Err: err})
	}
	if err != nil {
		logger.Warnf("Export failed: %v", err)
		d.notifier.SetTemporaryMessage("Export failed: %v", err)
		return
	}
	d.notifier.SetTemporaryMessage("Exported to %s", path)
}

func (d *Dispatcher) quit() {
	if d.quitting {
		return
	}
	d.quitting = true
	close(d.quitSignal)
}
