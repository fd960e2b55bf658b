// Package statusbar draws the bottom row: selection details, history depth
// and short-lived messages.
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/canvaspad/internal/tui"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// Info is the editor state shown when no message is active.
type Info struct {
	Elements   int
	SelectedID string
	Position   types.Point
	FontSize   int
	FontFamily string
	Flags      []string // active style flags of the selection, e.g. "bold"
	Focused    bool
	Dragging   bool
	UndoDepth  int
	RedoDepth  int
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	info Info

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetStyles replaces the styles, used after a theme change.
func (sb *StatusBar) SetStyles(def, message tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config.StyleDefault = def
	sb.config.StyleMessage = message
}

// SetInfo updates the default status line content.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line that Draw would show and whether it is a message.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	return sb.defaultText(), false
}

func (sb *StatusBar) defaultText() string {
	in := sb.info
	var b strings.Builder
	if in.SelectedID != "" {
		id := in.SelectedID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(&b, "%s at %d,%d  %dpx %s", id, in.Position.X, in.Position.Y, in.FontSize, in.FontFamily)
		if len(in.Flags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(in.Flags, " "))
		}
		if in.Focused {
			b.WriteString(" -- EDIT")
		}
		if in.Dragging {
			b.WriteString(" -- DRAG")
		}
	} else {
		fmt.Fprintf(&b, "%d elements -- click to add text", in.Elements)
	}
	fmt.Fprintf(&b, "  | undo %d redo %d", in.UndoDepth, in.RedoDepth)
	return b.String()
}

// Draw renders the status bar onto row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int) {
	if width <= 0 {
		return
	}
	text, isMessage := sb.Text()

	sb.mu.RLock()
	style := sb.config.StyleDefault
	if isMessage {
		style = sb.config.StyleMessage
	}
	sb.mu.RUnlock()

	tui.Fill(screen, 0, y, width, style)
	tui.DrawText(screen, 0, y, 0, width, text, style)
}
