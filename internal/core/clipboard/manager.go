// Package clipboard moves element text to and from the clipboard. The
// system clipboard is used when available; an internal register always
// holds the last copy so paste keeps working without one.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/canvaspad/internal/logger"
)

// Backend is a text clipboard.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemBackend) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System returns the OS clipboard, or nil when no clipboard utility is
// installed.
func System() Backend {
	if clipboard.Unsupported {
		logger.Warnf("clipboard: system clipboard unsupported, using internal register")
		return nil
	}
	return systemBackend{}
}

// Manager handles clipboard operations.
type Manager struct {
	backend  Backend
	register string
}

// NewManager creates a manager over backend. A nil backend keeps text in the
// internal register only.
func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend}
}

// Copy stores text. A failing system clipboard is logged and the register
// still receives the text.
func (m *Manager) Copy(text string) error {
	m.register = text
	if m.backend == nil {
		return nil
	}
	if err := m.backend.WriteAll(text); err != nil {
		logger.Warnf("clipboard: system write failed: %v", err)
	}
	return nil
}

// Text returns the clipboard contents, preferring the system clipboard.
func (m *Manager) Text() (string, error) {
	if m.backend != nil {
		text, err := m.backend.ReadAll()
		if err == nil && text != "" {
			return text, nil
		}
		if err != nil {
			logger.Warnf("clipboard: system read failed: %v", err)
		}
	}
	return m.register, nil
}
