package core

import (
	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/samber/lo"
)

// SetFontSize changes the toolbar size and, when an element is selected,
// applies it and records an undo point. Non-positive sizes are ignored.
func (e *Editor) SetFontSize(px int) (bool, error) {
	if px <= 0 {
		return false, nil
	}
	e.fontSizePx = px
	return e.updateSelected("font-size", func(el *canvas.Element) {
		el.Style.FontSizePx = px
	})
}

// SetFontFamily changes the toolbar family and applies it to the selection.
func (e *Editor) SetFontFamily(name string) (bool, error) {
	if name == "" {
		return false, nil
	}
	e.fontFamily = name
	return e.updateSelected("font-family", func(el *canvas.Element) {
		el.Style.FontFamily = name
	})
}

// ToggleBold flips the selected element between normal and bold.
func (e *Editor) ToggleBold() (bool, error) {
	return e.updateSelected("bold", func(el *canvas.Element) {
		if el.Style.Bold() {
			el.Style.FontWeight = canvas.WeightNormal
		} else {
			el.Style.FontWeight = canvas.WeightBold
		}
	})
}

// ToggleItalic flips the selected element between normal and italic.
func (e *Editor) ToggleItalic() (bool, error) {
	return e.updateSelected("italic", func(el *canvas.Element) {
		if el.Style.Italic() {
			el.Style.FontStyle = canvas.StyleNormal
		} else {
			el.Style.FontStyle = canvas.StyleItalic
		}
	})
}

// ToggleUnderline flips the selected element's underline.
func (e *Editor) ToggleUnderline() (bool, error) {
	return e.updateSelected("underline", func(el *canvas.Element) {
		if el.Style.Underline() {
			el.Style.TextDecoration = canvas.DecorationNone
		} else {
			el.Style.TextDecoration = canvas.DecorationUnderline
		}
	})
}

// CenterAlign centers the selected element horizontally on the canvas. It
// is one-way: calling it again changes nothing but still records a save.
func (e *Editor) CenterAlign() (bool, error) {
	return e.updateSelected("center", func(el *canvas.Element) {
		el.Style.TextAlign = canvas.AlignCenter
		el.Style.Centered = true
		el.X = e.size.W / 2
	})
}

// CycleFontSize moves step entries through the configured sizes.
func (e *Editor) CycleFontSize(step int) (bool, error) {
	if len(e.fontSizes) == 0 {
		return false, nil
	}
	return e.SetFontSize(e.fontSizes[cycle(lo.IndexOf(e.fontSizes, e.fontSizePx), step, len(e.fontSizes))])
}

// CycleFontFamily moves step entries through the configured families.
func (e *Editor) CycleFontFamily(step int) (bool, error) {
	if len(e.fontFamilies) == 0 {
		return false, nil
	}
	return e.SetFontFamily(e.fontFamilies[cycle(lo.IndexOf(e.fontFamilies, e.fontFamily), step, len(e.fontFamilies))])
}

// cycle returns the index step places from current, wrapping. An unknown
// current value starts from the first entry.
func cycle(current, step, n int) int {
	if current < 0 {
		if step > 0 {
			return 0
		}
		return n - 1
	}
	return ((current+step)%n + n) % n
}

// updateSelected saves, then mutates the selected element. Without a
// selection, or while a drag is in progress, nothing is saved or changed.
func (e *Editor) updateSelected(what string, mutate func(el *canvas.Element)) (bool, error) {
	el, ok := e.Selected()
	if !ok {
		logger.DebugTagf("core", "%s ignored, nothing selected", what)
		return false, nil
	}
	if e.Dragging() {
		logger.DebugTagf("core", "%s ignored, drag in progress", what)
		return false, nil
	}
	if err := e.Save(); err != nil {
		return false, err
	}
	mutate(el)
	logger.DebugTagf("core", "%s applied to %s", what, el.ID)
	e.dispatch(event.TypeElementChanged, event.ElementData{ID: el.ID})
	return true, nil
}
