package app

import (
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/input"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/toolbar"
	"github.com/gdamore/tcell/v2"
)

// subscribe registers the app-level event handlers.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeElementCreated, a.handleElementCreated)
	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	a.eventManager.Subscribe(event.TypeHistoryRestored, a.handleHistoryRestored)
	a.eventManager.Subscribe(event.TypeCanvasExported, a.handleCanvasExported)
}

func (a *App) handleElementCreated(e event.Event) bool {
	if data, ok := e.Data.(event.ElementData); ok {
		logger.DebugTagf("app", "element created: %s (%d total)", data.ID, a.editor.Canvas().Len())
	}
	return false
}

func (a *App) handleSelectionChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionData); ok {
		logger.DebugTagf("app", "selection: %q", data.ID)
	}
	return false
}

func (a *App) handleHistoryRestored(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryData); ok {
		logger.DebugTagf("app", "history restored (redo=%t): undo %d redo %d", data.Redo, data.UndoDepth, data.RedoDepth)
	}
	return false
}

func (a *App) handleCanvasExported(e event.Event) bool {
	if data, ok := e.Data.(event.ExportData); ok && data.Err == nil {
		logger.Infof("Canvas exported to %s", data.Path)
	}
	return false
}

// handleEvent processes one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.applyLayout()
		return true
	case *tcell.EventPaste:
		return a.handlePaste(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	}
	return false
}

// handlePaste collects the keys between the paste markers and inserts them
// as one piece of text.
func (a *App) handlePaste(ev *tcell.EventPaste) bool {
	if ev.Start() {
		a.pasting = true
		a.pasteBuf = a.pasteBuf[:0]
		return false
	}
	a.pasting = false
	text := string(a.pasteBuf)
	a.pasteBuf = a.pasteBuf[:0]
	if text == "" {
		return false
	}
	return a.dispatcher.HandleAction(input.ActionEvent{Action: input.ActionInsertRune, Text: text})
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.pasting {
		switch ev.Key() {
		case tcell.KeyRune:
			a.pasteBuf = append(a.pasteBuf, ev.Rune())
		case tcell.KeyEnter:
			a.pasteBuf = append(a.pasteBuf, '\n')
		case tcell.KeyTab:
			a.pasteBuf = append(a.pasteBuf, '\t')
		}
		return false
	}
	action := a.inputProcessor.ProcessEvent(ev)
	if action.Action == input.ActionUnknown {
		return false
	}
	logger.DebugTagf("input", "key %s -> %s", ev.Name(), action.Action)
	return a.dispatcher.HandleAction(action)
}

func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	pe := a.mouse.Track(ev)
	if pe.Phase == input.PointerNone {
		return false
	}

	// The toolbar reacts to presses; the canvas only to the primary button.
	if pe.Phase == input.PointerDown && pe.Cell.Y == 0 && !a.editor.Dragging() {
		secondary := pe.Button&(tcell.Button2|tcell.Button3) != 0
		action, ok := toolbar.HitTest(a.tools, pe.Cell.X, secondary)
		if !ok {
			return false
		}
		logger.DebugTagf("input", "toolbar %s", action.Action)
		return a.dispatcher.HandleAction(action)
	}
	if !pe.Primary() {
		return false
	}

	p := a.layout.PixelOf(pe.Cell)
	switch pe.Phase {
	case input.PointerDown:
		if !a.layout.InCanvas(pe.Cell) {
			return false
		}
		return a.dispatcher.PointerDown(p)
	case input.PointerMove:
		return a.dispatcher.PointerMove(p)
	case input.PointerUp:
		return a.dispatcher.PointerUp(p)
	}
	return false
}
