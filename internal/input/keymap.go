package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions; ModKeymap adds modifier combinations.
type Keymap map[tcell.Key]Action
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyEscape] = ActionEscape

	p.keymap[tcell.KeyCtrlB] = ActionToggleBold
	p.keymap[tcell.KeyCtrlT] = ActionToggleItalic // Ctrl+I is Tab in terminals
	p.keymap[tcell.KeyCtrlU] = ActionToggleUnderline
	p.keymap[tcell.KeyCtrlL] = ActionCenterAlign
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlE] = ActionExport
	p.keymap[tcell.KeyCtrlQ] = ActionQuit

	p.keymap[tcell.KeyF5] = ActionFontSizeDown
	p.keymap[tcell.KeyF6] = ActionFontSizeUp
	p.keymap[tcell.KeyF7] = ActionFontFamilyPrev
	p.keymap[tcell.KeyF8] = ActionFontFamilyNext

	// Ctrl+Shift+Z as the second redo binding.
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = Keymap{
		tcell.KeyCtrlZ: ActionRedo,
	}
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// KeyCtrlA..KeyCtrlZ already imply Ctrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
