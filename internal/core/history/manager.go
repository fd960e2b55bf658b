// Package history provides whole-canvas undo/redo over snapshot stacks.
package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
)

const DefaultMaxHistory = 50

// Source is the document the history captures and restores.
type Source interface {
	Snapshot() (canvas.Snapshot, error)
	Restore(canvas.Snapshot) error
}

// Manager keeps a bounded undo stack and an unbounded redo stack.
type Manager struct {
	source     Source
	events     *event.Manager
	undo       []canvas.Snapshot
	redo       []canvas.Snapshot
	maxHistory int
	mutex      sync.Mutex
}

// NewManager creates a history manager. events may be nil.
func NewManager(source Source, maxHistory int, events *event.Manager) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		source:     source,
		events:     events,
		undo:       make([]canvas.Snapshot, 0, maxHistory+1),
		redo:       make([]canvas.Snapshot, 0),
		maxHistory: maxHistory,
	}
}

// Save captures the current canvas onto the undo stack and clears redo.
// Callers save right before they mutate, so the top of the undo stack is
// always the state an undo should return to.
func (m *Manager) Save() error {
	snap, err := m.source.Snapshot()
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	m.Push(snap)
	return nil
}

// Push records a snapshot captured earlier (for example when a drag began)
// and clears redo.
func (m *Manager) Push(snap canvas.Snapshot) {
	m.mutex.Lock()
	m.pushUndo(snap)
	m.redo = m.redo[:0]
	data := m.depths(false)
	m.mutex.Unlock()

	logger.DebugTagf("history", "saved snapshot (%d bytes), undo=%d", len(snap), data.UndoDepth)
	m.dispatch(event.TypeHistorySaved, data)
}

// pushUndo appends snap, evicting the oldest entry past the cap.
func (m *Manager) pushUndo(snap canvas.Snapshot) {
	m.undo = append(m.undo, snap)
	if over := len(m.undo) - m.maxHistory; over > 0 {
		m.undo = append(m.undo[:0], m.undo[over:]...)
	}
}

// Undo restores the most recent saved state. It returns false when there is
// nothing to undo.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	if len(m.undo) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "nothing to undo")
		return false, nil
	}

	current, err := m.source.Snapshot()
	if err != nil {
		m.mutex.Unlock()
		return false, fmt.Errorf("undo failed: %w", err)
	}
	last := len(m.undo) - 1
	target := m.undo[last]
	if err := m.source.Restore(target); err != nil {
		m.mutex.Unlock()
		return false, fmt.Errorf("undo failed: %w", err)
	}
	m.undo = m.undo[:last]
	m.redo = append(m.redo, current)
	data := m.depths(false)
	m.mutex.Unlock()

	logger.DebugTagf("history", "undo applied, undo=%d redo=%d", data.UndoDepth, data.RedoDepth)
	m.dispatch(event.TypeHistoryRestored, data)
	return true, nil
}

// Redo reapplies the most recently undone state. It returns false when there
// is nothing to redo.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	if len(m.redo) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "nothing to redo")
		return false, nil
	}

	current, err := m.source.Snapshot()
	if err != nil {
		m.mutex.Unlock()
		return false, fmt.Errorf("redo failed: %w", err)
	}
	last := len(m.redo) - 1
	target := m.redo[last]
	if err := m.source.Restore(target); err != nil {
		m.mutex.Unlock()
		return false, fmt.Errorf("redo failed: %w", err)
	}
	m.redo = m.redo[:last]
	m.pushUndo(current)
	data := m.depths(true)
	m.mutex.Unlock()

	logger.DebugTagf("history", "redo applied, undo=%d redo=%d", data.UndoDepth, data.RedoDepth)
	m.dispatch(event.TypeHistoryRestored, data)
	return true, nil
}

// Clear drops both stacks.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undo = m.undo[:0]
	m.redo = m.redo[:0]
	logger.DebugTagf("history", "cleared")
}

// CanUndo reports whether Undo would do anything.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo) > 0
}

// CanRedo reports whether Redo would do anything.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redo) > 0
}

// UndoDepth returns the number of undoable states.
func (m *Manager) UndoDepth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo)
}

// RedoDepth returns the number of redoable states.
func (m *Manager) RedoDepth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redo)
}

// MaxHistory returns the undo cap.
func (m *Manager) MaxHistory() int {
	return m.maxHistory
}

func (m *Manager) depths(redo bool) event.HistoryData {
	return event.HistoryData{UndoDepth: len(m.undo), RedoDepth: len(m.redo), Redo: redo}
}

// dispatch runs outside the lock so handlers may query the manager.
func (m *Manager) dispatch(t event.Type, data event.HistoryData) {
	if m.events != nil {
		m.events.Dispatch(t, data)
	}
}
