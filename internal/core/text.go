package core

import (
	"strings"

	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/rivo/uniseg"
)

// Text edits go to the focused element and are not undo points: the next
// save captures them.

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// InsertText appends s to the focused element.
func (e *Editor) InsertText(s string) bool {
	el, ok := e.Focused()
	if !ok || s == "" {
		return false
	}
	el.Text += newlines.Replace(s)
	e.dispatch(event.TypeElementChanged, event.ElementData{ID: el.ID})
	return true
}

// InsertNewline starts a new line in the focused element.
func (e *Editor) InsertNewline() bool {
	return e.InsertText("\n")
}

// DeleteBackward removes the last grapheme cluster of the focused element.
func (e *Editor) DeleteBackward() bool {
	el, ok := e.Focused()
	if !ok || el.Text == "" {
		return false
	}
	el.Text = trimLastGrapheme(el.Text)
	e.dispatch(event.TypeElementChanged, event.ElementData{ID: el.ID})
	return true
}

// Copy puts the selected element's text on the clipboard.
func (e *Editor) Copy() (bool, error) {
	el, ok := e.Selected()
	if !ok || el.Text == "" {
		return false, nil
	}
	if err := e.clipboard.Copy(el.Text); err != nil {
		return false, err
	}
	logger.DebugTagf("core", "copied %d bytes from %s", len(el.Text), el.ID)
	return true, nil
}

// Paste types the clipboard text into the focused element.
func (e *Editor) Paste() (bool, error) {
	if _, ok := e.Focused(); !ok {
		return false, nil
	}
	text, err := e.clipboard.Text()
	if err != nil {
		return false, err
	}
	return e.InsertText(text), nil
}

func trimLastGrapheme(s string) string {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return s[:last]
}
