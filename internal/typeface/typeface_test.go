package typeface

import (
	"testing"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFamilies(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{FamilyGo, FamilyGoMono, FamilyGoSmallcaps}, r.Families())
	assert.Equal(t, FamilyGoMono, r.Resolve("go mono"))
	assert.Equal(t, FamilyGoMono, r.Resolve("Courier New"))
	assert.Equal(t, FamilyGo, r.Resolve("Arial"))
	assert.Equal(t, FamilyGo, r.Resolve("Nonexistent"))
}

func TestFaceIsCachedPerVariant(t *testing.T) {
	r := NewRegistry()
	style := canvas.DefaultStyle(20, FamilyGo)

	regular, err := r.Face(style)
	require.NoError(t, err)
	again, err := r.Face(style)
	require.NoError(t, err)
	assert.Same(t, regular, again)

	style.FontWeight = canvas.WeightBold
	bold, err := r.Face(style)
	require.NoError(t, err)
	assert.NotSame(t, regular, bold)

	_, err = r.Face(canvas.DefaultStyle(0, FamilyGo))
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	m := NewMeasurer(NewRegistry(), 4)
	style := canvas.DefaultStyle(20, FamilyGo)
	lineHeight := m.LineHeight(style)
	require.Positive(t, lineHeight)

	empty := m.Measure("", style)
	assert.Equal(t, caretWidth+8, empty.W)
	assert.Equal(t, lineHeight+8, empty.H)

	short := m.Measure("hi", style)
	long := m.Measure("hello world", style)
	assert.Greater(t, long.W, short.W)
	assert.Equal(t, short.H, long.H)

	twoLines := m.Measure("hello world\nhi", style)
	assert.Equal(t, long.W, twoLines.W, "width is the widest line")
	assert.Equal(t, 2*lineHeight+8, twoLines.H)

	bigger := m.Measure("hello world", canvas.DefaultStyle(40, FamilyGo))
	assert.Greater(t, bigger.W, long.W)
	assert.Greater(t, bigger.H, long.H)
}

func TestMonospaceAdvances(t *testing.T) {
	m := NewMeasurer(NewRegistry(), 0)
	style := canvas.DefaultStyle(16, FamilyGoMono)
	assert.Equal(t, m.Measure("iiii", style).W, m.Measure("MMMM", style).W)
}
