package render

import (
	"strings"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/core"
	"github.com/bethropolis/canvaspad/internal/theme"
	"github.com/bethropolis/canvaspad/internal/tui"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Canvas draws every element in paint order inside the canvas rows and
// places the terminal cursor at the end of the focused element's text.
func Canvas(screen tcell.Screen, ed *core.Editor, l Layout, th *theme.Theme) {
	bottom := l.Top + l.Rows
	for y := l.Top; y < bottom; y++ {
		tui.Fill(screen, 0, y, l.Width, th.GetStyle(theme.StyleCanvas))
	}

	selectedID, focusedID := "", ""
	if el, ok := ed.Selected(); ok {
		selectedID = el.ID
	}
	if el, ok := ed.Focused(); ok {
		focusedID = el.ID
	}

	caretShown := false
	for _, el := range ed.Canvas().Elements() {
		name := theme.StyleElement
		switch el.ID {
		case focusedID:
			name = theme.StyleElementFocused
		case selectedID:
			name = theme.StyleElementSelected
		}
		caret, ok := drawElement(screen, ed, el, l, th.GetStyle(name))
		if el.ID == focusedID && ok {
			screen.ShowCursor(caret.X, caret.Y)
			caretShown = true
		}
	}
	if !caretShown {
		screen.HideCursor()
	}
}

// drawElement paints the element's box and text. It returns the caret cell
// after the last character and whether that cell is on the canvas.
func drawElement(screen tcell.Screen, ed *core.Editor, el *canvas.Element, l Layout, style tcell.Style) (types.Point, bool) {
	bounds := ed.Bounds(el)
	origin := l.CanvasOrigin()
	box := types.Rect{X: origin.X + bounds.X, Y: origin.Y + bounds.Y, W: bounds.W, H: bounds.H}
	x0, y0, x1, y1 := l.cellRect(box)
	bottom := l.Top + l.Rows

	style = style.
		Bold(el.Style.Bold()).
		Italic(el.Style.Italic()).
		Underline(el.Style.Underline())

	for y := max(y0, l.Top); y < min(y1, bottom); y++ {
		left := max(x0, 0)
		tui.Fill(screen, left, y, min(x1, l.Width)-left, style)
	}

	textX := floorDiv(box.X+l.Padding, l.CellW)
	textY := floorDiv(box.Y+l.Padding, l.CellH)
	inner := x1 - x0 - 2*(l.Padding/l.CellW)

	caret := types.Point{X: textX, Y: textY}
	for i, line := range strings.Split(el.Text, "\n") {
		y := textY + i
		x := textX
		if el.Style.TextAlign == canvas.AlignCenter {
			x += max(0, (inner-tui.TextWidth(line))/2)
		}
		end := x + tui.TextWidth(line)
		if y >= l.Top && y < bottom {
			end = tui.DrawText(screen, x, y, 0, l.Width, line, style)
		}
		caret = types.Point{X: end, Y: y}
	}
	visible := caret.Y >= l.Top && caret.Y < bottom && caret.X >= 0 && caret.X < l.Width
	return caret, visible
}
