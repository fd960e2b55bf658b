// Package render draws the canvas rows of the terminal.
package render

import "github.com/bethropolis/canvaspad/internal/types"

// Layout splits the screen into the toolbar row, the canvas rows and the
// status row, and maps between cells and pixels.
type Layout struct {
	CellW, CellH int
	Padding      int // element text padding in pixels
	Width        int // screen columns
	Top          int // first canvas row
	Rows         int // canvas rows
}

// NewLayout computes the layout for a width x height cell screen.
func NewLayout(width, height, cellW, cellH, padding int) Layout {
	return Layout{
		CellW:   cellW,
		CellH:   cellH,
		Padding: padding,
		Width:   width,
		Top:     1,
		Rows:    max(0, height-2),
	}
}

// StatusRow returns the row of the status bar.
func (l Layout) StatusRow() int {
	return l.Top + l.Rows
}

// CanvasOrigin is the canvas top-left in screen pixels.
func (l Layout) CanvasOrigin() types.Point {
	return types.Point{X: 0, Y: l.Top * l.CellH}
}

// CanvasSize is the canvas size in pixels.
func (l Layout) CanvasSize() types.Size {
	return types.Size{W: l.Width * l.CellW, H: l.Rows * l.CellH}
}

// PixelOf maps a screen cell to the screen pixel at its top-left corner.
func (l Layout) PixelOf(cell types.Point) types.Point {
	return types.Point{X: cell.X * l.CellW, Y: cell.Y * l.CellH}
}

// InCanvas reports whether a screen cell lies in the canvas rows.
func (l Layout) InCanvas(cell types.Point) bool {
	return cell.Y >= l.Top && cell.Y < l.Top+l.Rows && cell.X >= 0 && cell.X < l.Width
}

// cellRect maps a screen pixel rectangle to the cells it touches.
func (l Layout) cellRect(r types.Rect) (x0, y0, x1, y1 int) {
	x0 = floorDiv(r.X, l.CellW)
	y0 = floorDiv(r.Y, l.CellH)
	x1 = ceilDiv(r.X+r.W, l.CellW)
	y1 = ceilDiv(r.Y+r.H, l.CellH)
	return
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
