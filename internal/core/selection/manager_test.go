package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAndClear(t *testing.T) {
	m := NewManager()
	_, ok := m.Selected()
	assert.False(t, ok)

	assert.True(t, m.Select("a"))
	assert.False(t, m.Select("a"))
	m.Focus("a")

	id, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	assert.True(t, m.Clear())
	_, ok = m.Focused()
	assert.False(t, ok)
	assert.False(t, m.Clear())
}

func TestBlurKeepsSelection(t *testing.T) {
	m := NewManager()
	m.Select("a")
	m.Focus("a")

	m.Blur()

	_, focused := m.Focused()
	id, selected := m.Selected()
	assert.False(t, focused)
	assert.True(t, selected)
	assert.Equal(t, "a", id)
}

func TestResolve(t *testing.T) {
	live := map[string]bool{"kept": true}
	exists := func(id string) bool { return live[id] }

	m := NewManager()
	m.Select("kept")
	m.Focus("kept")
	assert.False(t, m.Resolve(exists))
	id, _ := m.Selected()
	assert.Equal(t, "kept", id)

	m.Select("gone")
	m.Focus("gone")
	assert.True(t, m.Resolve(exists))
	_, selected := m.Selected()
	_, focused := m.Focused()
	assert.False(t, selected)
	assert.False(t, focused)
}
