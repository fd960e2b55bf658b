// Package event provides a small synchronous, typed event bus.
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Canvas model events
	TypeElementCreated   // a new element was placed
	TypeElementChanged   // style, position or text of an element changed
	TypeSelectionChanged // the selected element changed (or was cleared)

	// History events
	TypeHistorySaved    // a snapshot was pushed on the undo stack
	TypeHistoryRestored // undo or redo replaced the canvas

	TypeCanvasExported // a PNG export finished (successfully or not)

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:          "unknown",
	TypeElementCreated:   "element-created",
	TypeElementChanged:   "element-changed",
	TypeSelectionChanged: "selection-changed",
	TypeHistorySaved:     "history-saved",
	TypeHistoryRestored:  "history-restored",
	TypeCanvasExported:   "canvas-exported",
	TypeAppReady:         "app-ready",
	TypeAppQuit:          "app-quit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// ElementData identifies the element an event is about.
type ElementData struct {
	ID string
}

// SelectionData carries the new selection; ID is empty when cleared.
type SelectionData struct {
	ID string
}

// HistoryData reports stack depths after the change.
type HistoryData struct {
	UndoDepth int
	RedoDepth int
	// Redo is set on TypeHistoryRestored when the restore came from Redo.
	Redo bool
}

// ExportData describes a finished export.
type ExportData struct {
	Path string
	Err  error
}

// AppReadyData is sent once the UI is up.
type AppReadyData struct{}

// AppQuitData is sent just before the UI shuts down.
type AppQuitData struct{}
