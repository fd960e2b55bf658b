package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/core"
	"github.com/bethropolis/canvaspad/internal/theme"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellMeasurer sizes text as if every rune were one 8x16 cell.
type cellMeasurer struct{}

func (cellMeasurer) Measure(text string, _ canvas.Style) types.Size {
	lines := strings.Split(text, "\n")
	widest := 1
	for _, line := range lines {
		widest = max(widest, utf8.RuneCountInString(line))
	}
	return types.Size{W: widest * 8, H: len(lines) * 16}
}

func setup(t *testing.T) (tcell.SimulationScreen, *core.Editor, Layout) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	t.Cleanup(sim.Fini)
	sim.SetSize(40, 10)

	l := NewLayout(40, 10, 8, 16, 0)
	ed := core.NewEditor(core.Options{FontSizePx: 20, FontFamily: "Go"}, cellMeasurer{}, nil)
	ed.SetGeometry(l.CanvasOrigin(), l.CanvasSize())
	return sim, ed, l
}

func cellAt(sim tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, width, _ := sim.GetContents()
	return cells[y*width+x]
}

func TestLayoutGeometry(t *testing.T) {
	l := NewLayout(80, 24, 8, 16, 4)
	assert.Equal(t, 22, l.Rows)
	assert.Equal(t, 23, l.StatusRow())
	assert.Equal(t, types.Point{X: 0, Y: 16}, l.CanvasOrigin())
	assert.Equal(t, types.Size{W: 640, H: 352}, l.CanvasSize())
	assert.Equal(t, types.Point{X: 24, Y: 48}, l.PixelOf(types.Point{X: 3, Y: 3}))
	assert.True(t, l.InCanvas(types.Point{X: 0, Y: 1}))
	assert.False(t, l.InCanvas(types.Point{X: 0, Y: 0}), "toolbar row")
	assert.False(t, l.InCanvas(types.Point{X: 0, Y: 23}), "status row")
}

func TestCellRectRoundsOutward(t *testing.T) {
	l := NewLayout(80, 24, 8, 16, 0)
	x0, y0, x1, y1 := l.cellRect(types.Rect{X: 4, Y: 20, W: 10, H: 16})
	assert.Equal(t, []int{0, 1, 2, 3}, []int{x0, y0, x1, y1})

	x0, _, _, _ = l.cellRect(types.Rect{X: -4, Y: 0, W: 8, H: 16})
	assert.Equal(t, -1, x0)
}

func TestCanvasDrawsElementText(t *testing.T) {
	sim, ed, l := setup(t)
	_, err := ed.PlaceElement(types.Point{X: 16, Y: 32})
	require.NoError(t, err)
	ed.InsertText("hi")
	_, err = ed.ToggleBold()
	require.NoError(t, err)

	th := theme.CanvasDark
	Canvas(sim, ed, l, &th)
	sim.Show()

	// Canvas pixel (16, 32) is screen pixel (16, 48), cell (2, 3).
	assert.Equal(t, 'h', cellAt(sim, 2, 3).Runes[0])
	assert.Equal(t, 'i', cellAt(sim, 3, 3).Runes[0])
	_, _, attrs := cellAt(sim, 2, 3).Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 4, x)
	assert.Equal(t, 3, y)
}

func TestCanvasHidesCursorWithoutFocus(t *testing.T) {
	sim, ed, l := setup(t)
	_, err := ed.PlaceElement(types.Point{X: 0, Y: 0})
	require.NoError(t, err)
	ed.Blur()

	th := theme.CanvasDark
	Canvas(sim, ed, l, &th)
	sim.Show()

	_, _, visible := sim.GetCursor()
	assert.False(t, visible)
}

func TestCanvasCentersLines(t *testing.T) {
	sim, ed, l := setup(t)
	_, err := ed.PlaceElement(types.Point{X: 0, Y: 0})
	require.NoError(t, err)
	ed.InsertText("abcd\nab")
	_, err = ed.CenterAlign()
	require.NoError(t, err)

	th := theme.CanvasDark
	Canvas(sim, ed, l, &th)
	sim.Show()

	// The 4-cell box is centered on pixel 160 (cell 20), so it spans cells
	// 18..21 and the short line sits one cell in.
	assert.Equal(t, 'a', cellAt(sim, 18, 1).Runes[0])
	assert.Equal(t, 'a', cellAt(sim, 19, 2).Runes[0])
}
