// Package selection tracks which element is selected and which receives
// typed text. Both are stored as element IDs so that a whole-canvas restore
// never leaves a reference to a discarded element.
package selection

import "github.com/bethropolis/canvaspad/internal/logger"

// Manager holds the selected and focused element IDs. Empty means none.
type Manager struct {
	selected string
	focused  string
}

// NewManager creates a manager with nothing selected.
func NewManager() *Manager {
	return &Manager{}
}

// Select makes id the selected element. It reports whether the selection
// changed.
func (m *Manager) Select(id string) bool {
	if m.selected == id {
		return false
	}
	m.selected = id
	logger.DebugTagf("selection", "selected %q", id)
	return true
}

// Selected returns the selected element ID.
func (m *Manager) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// Focus routes typed text to id.
func (m *Manager) Focus(id string) {
	m.focused = id
}

// Focused returns the element receiving typed text.
func (m *Manager) Focused() (string, bool) {
	return m.focused, m.focused != ""
}

// Blur stops routing typed text. The selection is kept.
func (m *Manager) Blur() {
	m.focused = ""
}

// Clear drops both selection and focus. It reports whether anything was
// selected.
func (m *Manager) Clear() bool {
	had := m.selected != ""
	m.selected = ""
	m.focused = ""
	return had
}

// Resolve re-checks the stored IDs against the live tree, clearing any whose
// element no longer exists. It reports whether the selection was cleared.
func (m *Manager) Resolve(exists func(id string) bool) bool {
	if m.focused != "" && !exists(m.focused) {
		m.focused = ""
	}
	if m.selected != "" && !exists(m.selected) {
		logger.DebugTagf("selection", "selected element %q vanished after restore", m.selected)
		m.selected = ""
		return true
	}
	return false
}
