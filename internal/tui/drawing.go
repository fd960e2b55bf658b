package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Fill paints width cells starting at (x, y) with spaces in style.
func Fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// DrawText draws text at (x, y) grapheme by grapheme, stopping before
// maxX. Clusters left of minX are skipped but still advance the column. It
// returns the column after the last cluster, drawn or not.
func DrawText(screen tcell.Screen, x, y, minX, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		if x+width > maxX {
			break
		}
		if x >= minX {
			screen.SetContent(x, y, runes[0], runes[1:], style)
			for w := 1; w < width; w++ {
				screen.SetContent(x+w, y, ' ', nil, style)
			}
		}
		x += width
	}
	return x
}

// TextWidth returns the cell width of text.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}
