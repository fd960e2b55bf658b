package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulation(t *testing.T) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(sim, tcell.StyleDefault)
	require.NoError(t, err)
	sim.SetSize(20, 4)
	t.Cleanup(ui.Close)
	return ui, sim
}

func cellText(sim tcell.SimulationScreen, y, from, to int) string {
	cells, width, _ := sim.GetContents()
	out := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) > 0 {
			out = append(out, cell.Runes[0])
		}
	}
	return string(out)
}

func TestDrawTextClipsAtMaxX(t *testing.T) {
	ui, sim := newSimulation(t)
	end := DrawText(ui.Screen(), 2, 1, 0, 6, "canvas", tcell.StyleDefault)
	ui.Show()

	assert.Equal(t, 6, end)
	assert.Equal(t, "canv", cellText(sim, 1, 2, 6))
}

func TestDrawTextWideClusters(t *testing.T) {
	ui, sim := newSimulation(t)
	end := DrawText(ui.Screen(), 0, 0, 0, 20, "日本", tcell.StyleDefault)
	ui.Show()

	assert.Equal(t, 4, end)
	assert.Equal(t, 4, TextWidth("日本"))
	cells, _, _ := sim.GetContents()
	assert.Equal(t, '日', cells[0].Runes[0])
	assert.Equal(t, '本', cells[2].Runes[0])
}

func TestDrawTextSkipsLeftOfMinX(t *testing.T) {
	ui, sim := newSimulation(t)
	Fill(ui.Screen(), 0, 2, 20, tcell.StyleDefault)
	end := DrawText(ui.Screen(), -2, 2, 0, 20, "abcd", tcell.StyleDefault)
	ui.Show()

	assert.Equal(t, 2, end)
	assert.Equal(t, "cd", cellText(sim, 2, 0, 2))
}
