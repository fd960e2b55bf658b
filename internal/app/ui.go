package app

import (
	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/render"
	"github.com/bethropolis/canvaspad/internal/statusbar"
	"github.com/bethropolis/canvaspad/internal/toolbar"
)

// applyLayout recomputes the screen split and hands the canvas geometry to
// the editor.
func (a *App) applyLayout() {
	width, height := a.tuiManager.Size()
	c := a.cfg.Canvas
	a.layout = render.NewLayout(width, height, c.CellWidth, c.CellHeight, c.Padding)
	a.editor.SetGeometry(a.layout.CanvasOrigin(), a.layout.CanvasSize())
	size := a.layout.CanvasSize()
	logger.DebugTagf("draw", "layout %dx%d cells, canvas %dx%d px at %s",
		width, height, size.W, size.H, a.layout.CanvasOrigin())
}

// draw clears the screen and redraws all components.
func (a *App) draw() {
	th := a.themeManager.Current()
	screen := a.tuiManager.Screen()

	a.tuiManager.Clear()
	a.tools = toolbar.Layout(a.toolbarState())
	toolbar.Draw(screen, 0, a.layout.Width, a.tools, th)
	render.Canvas(screen, a.editor, a.layout, th)
	a.statusBar.SetInfo(a.statusInfo())
	a.statusBar.Draw(screen, a.layout.StatusRow(), a.layout.Width)
	a.tuiManager.Show()
}

func (a *App) toolbarState() toolbar.State {
	h := a.editor.History()
	s := toolbar.State{
		FontSize:   a.editor.FontSize(),
		FontFamily: a.editor.FontFamily(),
		CanUndo:    h.CanUndo(),
		CanRedo:    h.CanRedo(),
	}
	if el, ok := a.editor.Selected(); ok {
		s.HasSelection = true
		s.Bold = el.Style.Bold()
		s.Italic = el.Style.Italic()
		s.Underline = el.Style.Underline()
		s.Centered = el.Style.TextAlign == canvas.AlignCenter
	}
	return s
}

func (a *App) statusInfo() statusbar.Info {
	h := a.editor.History()
	info := statusbar.Info{
		Elements:  a.editor.Canvas().Len(),
		Dragging:  a.editor.Dragging(),
		UndoDepth: h.UndoDepth(),
		RedoDepth: h.RedoDepth(),
	}
	el, ok := a.editor.Selected()
	if !ok {
		return info
	}
	info.SelectedID = el.ID
	info.Position = a.editor.Bounds(el).Origin()
	info.FontSize = el.Style.FontSizePx
	info.FontFamily = el.Style.FontFamily
	info.Flags = styleFlags(el.Style)
	_, info.Focused = a.editor.Focused()
	return info
}

func styleFlags(s canvas.Style) []string {
	var flags []string
	if s.Bold() {
		flags = append(flags, "bold")
	}
	if s.Italic() {
		flags = append(flags, "italic")
	}
	if s.Underline() {
		flags = append(flags, "underline")
	}
	if s.TextAlign == canvas.AlignCenter {
		flags = append(flags, "center")
	}
	return flags
}
