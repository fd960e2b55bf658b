// Package input turns tcell key and mouse events into editor intents.
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// Text editing of the focused element
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteCharBackward
	ActionEscape // blur, or deselect when nothing is focused

	// Style controls
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline
	ActionCenterAlign
	ActionFontSizeUp
	ActionFontSizeDown
	ActionFontFamilyNext
	ActionFontFamilyPrev

	// History
	ActionUndo
	ActionRedo

	// Clipboard
	ActionCopy
	ActionPaste

	ActionExport
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "insert-newline",
	ActionDeleteCharBackward: "delete-backward",
	ActionEscape:             "escape",
	ActionToggleBold:         "toggle-bold",
	ActionToggleItalic:       "toggle-italic",
	ActionToggleUnderline:    "toggle-underline",
	ActionCenterAlign:        "center-align",
	ActionFontSizeUp:         "font-size-up",
	ActionFontSizeDown:       "font-size-down",
	ActionFontFamilyNext:     "font-family-next",
	ActionFontFamilyPrev:     "font-family-prev",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionCopy:               "copy",
	ActionPaste:              "paste",
	ActionExport:             "export",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune   // ActionInsertRune
	Text   string // bracketed paste content for ActionInsertRune
}
