package core

import (
	"testing"

	"github.com/bethropolis/canvaspad/internal/core/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypingIsCapturedByNextSave(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	depth := e.History().UndoDepth()

	assert.True(t, e.InsertText("hi"))
	assert.True(t, e.InsertNewline())
	assert.True(t, e.InsertText("there"))
	assert.Equal(t, "hi\nthere", el.Text)
	assert.Equal(t, depth, e.History().UndoDepth(), "typing is not an undo point")

	_, err := e.ToggleBold()
	require.NoError(t, err)
	_, err = e.Undo()
	require.NoError(t, err)

	restored, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "hi\nthere", restored.Text)
}

func TestInsertNormalizesLineEndings(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	e.InsertText("a\r\nb\rc")
	assert.Equal(t, "a\nb\nc", el.Text)
}

func TestDeleteBackwardRemovesGraphemeCluster(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	e.InsertText("ok👍🏽")

	assert.True(t, e.DeleteBackward())
	assert.Equal(t, "ok", el.Text)
	assert.True(t, e.DeleteBackward())
	assert.True(t, e.DeleteBackward())
	assert.Empty(t, el.Text)
	assert.False(t, e.DeleteBackward())
}

func TestTypingNeedsFocus(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	require.True(t, e.Blur())

	assert.False(t, e.InsertText("x"))
	assert.Empty(t, el.Text)
	_, selected := e.Selected()
	assert.True(t, selected, "blur keeps the selection")
}

func TestCopyPaste(t *testing.T) {
	e, _ := newTestEditor(t)
	source := place(t, e, 10, 10)
	e.InsertText("copy me")

	ok, err := e.Copy()
	require.NoError(t, err)
	require.True(t, ok)

	target := place(t, e, 200, 200)
	ok, err = e.Paste()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "copy me", target.Text)
	assert.Equal(t, "copy me", source.Text)
}

type failingBackend struct{}

func (failingBackend) ReadAll() (string, error) {
	return "", assert.AnError
}

func (failingBackend) WriteAll(string) error {
	return assert.AnError
}

func TestClipboardFallsBackToRegister(t *testing.T) {
	m := clipboard.NewManager(failingBackend{})
	require.NoError(t, m.Copy("kept"))
	text, err := m.Text()
	require.NoError(t, err)
	assert.Equal(t, "kept", text)
}
