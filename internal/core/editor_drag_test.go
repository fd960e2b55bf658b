package core

import (
	"testing"

	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragKeepsGrabOffset(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 100, 50)

	// Grab 10px right and 4px below the element's top-left corner.
	require.NoError(t, e.BeginDrag(el.ID, types.Point{X: 110, Y: 70}))
	assert.True(t, e.Dragging())

	assert.True(t, e.DragTo(types.Point{X: 210, Y: 120}))
	assert.Equal(t, 200, el.X)
	assert.Equal(t, 100, el.Y)
}

func TestDragClampsAndSavesOnceOnRelease(t *testing.T) {
	e, events := newTestEditor(t)
	el := place(t, e, 100, 50)
	before := snapshot(t, e)
	depth := e.History().UndoDepth()

	saves := 0
	events.Subscribe(event.TypeHistorySaved, func(event.Event) bool { saves++; return false })

	require.NoError(t, e.BeginDrag(el.ID, types.Point{X: 105, Y: 71}))

	e.DragTo(types.Point{X: -500, Y: -500})
	assert.Equal(t, 0, el.X)
	assert.Equal(t, 0, el.Y)

	e.DragTo(types.Point{X: 5000, Y: 5000})
	assert.Equal(t, canvasSize.W-80, el.X)
	assert.Equal(t, canvasSize.H-24, el.Y)

	e.DragTo(types.Point{X: 300, Y: 200})
	assert.Zero(t, saves, "moves do not record history")

	ok, err := e.EndDrag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, e.Dragging())
	assert.Equal(t, 1, saves)
	assert.Equal(t, depth+1, e.History().UndoDepth())

	ok, err = e.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, before.Equal(snapshot(t, e)), "undo returns to the pre-drag position")
}

func TestReleaseWithoutMovementStillSaves(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 100, 50)
	depth := e.History().UndoDepth()

	require.NoError(t, e.BeginDrag(el.ID, types.Point{X: 101, Y: 67}))
	ok, err := e.EndDrag()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, depth+1, e.History().UndoDepth())
}

func TestEndDragWhenIdle(t *testing.T) {
	e, _ := newTestEditor(t)
	ok, err := e.EndDrag()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, e.DragTo(types.Point{X: 10, Y: 10}))
}

func TestBeginDragSelectsElement(t *testing.T) {
	e, _ := newTestEditor(t)
	first := place(t, e, 10, 10)
	second := place(t, e, 200, 200)
	require.Equal(t, second.ID, func() string { s, _ := e.Selected(); return s.ID }())

	require.NoError(t, e.BeginDrag(first.ID, types.Point{X: 12, Y: 28}))
	sel, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, first.ID, sel.ID)

	assert.Error(t, e.BeginDrag("missing", types.Point{}))
}

func TestDragCenteredElementStaysInside(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	_, err := e.CenterAlign()
	require.NoError(t, err)

	bounds := e.Bounds(el)
	grab := e.CanvasOrigin().Add(bounds.Origin()).Add(types.Point{X: 5, Y: 5})
	require.NoError(t, e.BeginDrag(el.ID, grab))

	e.DragTo(types.Point{X: -100, Y: 100})
	assert.Equal(t, 0, e.Bounds(el).X)
	assert.Equal(t, 40, el.X, "anchor sits half a width right of the box")

	e.DragTo(types.Point{X: 9000, Y: 100})
	assert.Equal(t, canvasSize.W-80, e.Bounds(el).X)
}

func TestUndoDuringDragCancelsIt(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 10, 10)
	require.NoError(t, e.BeginDrag(el.ID, types.Point{X: 12, Y: 28}))

	ok, err := e.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, e.Dragging())

	ok, err = e.EndDrag()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, e.History().CanRedo(), "no save slipped in after the undo")
}

func TestStyleDuringDragKeepsHistoryInOrder(t *testing.T) {
	e, _ := newTestEditor(t)
	el := place(t, e, 100, 50)
	beforeDrag := snapshot(t, e)
	depth := e.History().UndoDepth()

	require.NoError(t, e.BeginDrag(el.ID, types.Point{X: 100, Y: 66}))
	e.DragTo(types.Point{X: 300, Y: 166})

	changed, err := e.ToggleBold()
	require.NoError(t, err)
	assert.False(t, changed, "style changes wait until the drag ends")
	assert.False(t, el.Style.Bold())

	_, err = e.PlaceElement(types.Point{X: 5, Y: 5})
	assert.ErrorIs(t, err, ErrDragInProgress)
	assert.Equal(t, 1, e.Canvas().Len())

	e.DragTo(types.Point{X: 400, Y: 266})
	ok, err := e.EndDrag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, depth+1, e.History().UndoDepth())

	changed, err = e.ToggleBold()
	require.NoError(t, err)
	require.True(t, changed)
	afterDrag, _ := e.Canvas().Find(el.ID)
	assert.Equal(t, 400, afterDrag.X)

	_, err = e.Undo()
	require.NoError(t, err)
	moved, ok := e.Canvas().Find(el.ID)
	require.True(t, ok)
	assert.Equal(t, 400, moved.X)
	assert.Equal(t, 250, moved.Y)
	assert.False(t, moved.Style.Bold())

	_, err = e.Undo()
	require.NoError(t, err)
	assert.True(t, beforeDrag.Equal(snapshot(t, e)), "second undo returns to before the drag")
}
