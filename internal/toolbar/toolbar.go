// Package toolbar lays out and draws the control row above the canvas and
// maps clicks on it to actions.
package toolbar

import (
	"fmt"

	"github.com/bethropolis/canvaspad/internal/input"
	"github.com/bethropolis/canvaspad/internal/theme"
	"github.com/bethropolis/canvaspad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// State is what the toolbar reflects: the values for new elements and the
// style of the selected element.
type State struct {
	FontSize     int
	FontFamily   string
	HasSelection bool
	Bold         bool
	Italic       bool
	Underline    bool
	Centered     bool
	CanUndo      bool
	CanRedo      bool
}

// Item is one laid-out control. Cells [X, X+Width) belong to it. Alt is the
// action for a secondary click, ActionUnknown when unused.
type Item struct {
	Label   string
	X       int
	Width   int
	Action  input.Action
	Alt     input.Action
	Active  bool
	Enabled bool
}

const gap = 1

// Layout places the controls left to right.
func Layout(s State) []Item {
	items := []Item{
		{Label: fmt.Sprintf(" Size: %d ", s.FontSize), Action: input.ActionFontSizeUp, Alt: input.ActionFontSizeDown, Enabled: true},
		{Label: fmt.Sprintf(" Font: %s ", s.FontFamily), Action: input.ActionFontFamilyNext, Alt: input.ActionFontFamilyPrev, Enabled: true},
		{Label: "[B]", Action: input.ActionToggleBold, Active: s.Bold, Enabled: s.HasSelection},
		{Label: "[I]", Action: input.ActionToggleItalic, Active: s.Italic, Enabled: s.HasSelection},
		{Label: "[U]", Action: input.ActionToggleUnderline, Active: s.Underline, Enabled: s.HasSelection},
		{Label: "[Center]", Action: input.ActionCenterAlign, Active: s.Centered, Enabled: s.HasSelection},
		{Label: "[Undo]", Action: input.ActionUndo, Enabled: s.CanUndo},
		{Label: "[Redo]", Action: input.ActionRedo, Enabled: s.CanRedo},
		{Label: "[Export]", Action: input.ActionExport, Enabled: true},
	}
	x := 0
	for i := range items {
		items[i].X = x
		items[i].Width = tui.TextWidth(items[i].Label)
		x += items[i].Width + gap
	}
	return items
}

// HitTest returns the action for a click at column x. Disabled controls
// still report their action; the editor treats it as a no-op.
func HitTest(items []Item, x int, secondary bool) (input.ActionEvent, bool) {
	for _, it := range items {
		if x < it.X || x >= it.X+it.Width {
			continue
		}
		action := it.Action
		if secondary && it.Alt != input.ActionUnknown {
			action = it.Alt
		}
		return input.ActionEvent{Action: action}, true
	}
	return input.ActionEvent{}, false
}

// Draw renders the toolbar on row y.
func Draw(screen tcell.Screen, y, width int, items []Item, th *theme.Theme) {
	bar := th.GetStyle(theme.StyleToolbar)
	tui.Fill(screen, 0, y, width, bar)
	for _, it := range items {
		style := th.GetStyle(theme.StyleToolbarButton)
		switch {
		case it.Active:
			style = th.GetStyle(theme.StyleToolbarActive)
		case !it.Enabled:
			style = th.GetStyle(theme.StyleToolbarDisabled)
		}
		tui.DrawText(screen, it.X, y, 0, width, it.Label, style)
	}
}
