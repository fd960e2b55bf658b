package drag

import (
	"testing"

	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	origin  = types.Point{X: 0, Y: 16}
	canvasS = types.Size{W: 640, H: 320}
	elemS   = types.Size{W: 80, H: 24}
)

func TestDragPreservesGrabPoint(t *testing.T) {
	c := NewController()
	// Element top-left at canvas (100, 50) => screen (100, 66); grab 10px in.
	c.Begin("el", types.Point{X: 110, Y: 70}, types.Point{X: 100, Y: 66})
	require.Equal(t, Dragging, c.State())
	assert.Equal(t, types.Point{X: 10, Y: 4}, c.Offset())

	got := c.Position(types.Point{X: 210, Y: 120}, origin, elemS, canvasS)
	assert.Equal(t, types.Point{X: 200, Y: 100}, got)
}

func TestDragClampsToCanvas(t *testing.T) {
	c := NewController()
	c.Begin("el", types.Point{X: 5, Y: 21}, types.Point{X: 0, Y: 16})

	tests := []struct {
		name    string
		pointer types.Point
		want    types.Point
	}{
		{"past left and top", types.Point{X: -50, Y: -50}, types.Point{X: 0, Y: 0}},
		{"past right and bottom", types.Point{X: 2000, Y: 2000}, types.Point{X: 560, Y: 296}},
		{"inside", types.Point{X: 305, Y: 121}, types.Point{X: 300, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Position(tt.pointer, origin, elemS, canvasS))
		})
	}
}

func TestElementLargerThanCanvasPinsToOrigin(t *testing.T) {
	c := NewController()
	c.Begin("wide", types.Point{}, types.Point{})

	got := c.Position(types.Point{X: 300, Y: 300}, types.Point{}, types.Size{W: 900, H: 400}, canvasS)

	assert.Equal(t, types.Point{X: 0, Y: 0}, got)
}

func TestEndAndCancel(t *testing.T) {
	c := NewController()
	_, ok := c.End()
	assert.False(t, ok, "ending while idle is a no-op")

	c.Begin("a", types.Point{}, types.Point{})
	c.Begin("b", types.Point{X: 3}, types.Point{})
	id, ok := c.Target()
	assert.True(t, ok)
	assert.Equal(t, "b", id)

	id, ok = c.End()
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	assert.Equal(t, Idle, c.State())

	c.Begin("c", types.Point{}, types.Point{})
	c.Cancel()
	_, ok = c.Target()
	assert.False(t, ok)
	assert.Equal(t, "idle", c.State().String())
}
