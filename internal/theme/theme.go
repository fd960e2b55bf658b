// Package theme holds named tcell styles for the toolbar, canvas and status
// bar, with built-in themes and TOML theme files.
package theme

import (
	"strings"

	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the UI. Dotted names fall back to their base.
const (
	StyleDefault          = "Default"
	StyleToolbar          = "Toolbar"
	StyleToolbarButton    = "Toolbar.button"
	StyleToolbarActive    = "Toolbar.active"
	StyleToolbarDisabled  = "Toolbar.disabled"
	StyleCanvas           = "Canvas"
	StyleElement          = "Element"
	StyleElementSelected  = "Element.selected"
	StyleElementFocused   = "Element.focused"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBar.message"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, then its base name (before the first
// dot), then Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

var CanvasDark = newCanvasDark()

var CanvasLight = newCanvasLight()

func newCanvasDark() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	blue := tcell.NewHexColor(0x61afef)
	paper := tcell.NewHexColor(0x1f2329)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return Theme{
		Name:   "Canvas Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleToolbar:          bar,
			StyleToolbarButton:    bar.Foreground(blue),
			StyleToolbarActive:    bar.Foreground(yellow).Bold(true).Reverse(true),
			StyleToolbarDisabled:  bar.Foreground(muted),
			StyleCanvas:           tcell.StyleDefault.Background(paper).Foreground(foreground),
			StyleElement:          tcell.StyleDefault.Background(paper).Foreground(foreground),
			StyleElementSelected:  tcell.StyleDefault.Background(muted).Foreground(tcell.ColorWhite),
			StyleElementFocused:   tcell.StyleDefault.Background(blue).Foreground(tcell.ColorBlack),
			StyleStatusBar:        bar,
			StyleStatusBarMessage: bar.Bold(true),
		},
	}
}

func newCanvasLight() Theme {
	bar := tcell.StyleDefault.Background(tcell.NewHexColor(0xd0d4da)).Foreground(tcell.ColorBlack)
	paper := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

	return Theme{
		Name:   "Canvas Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          paper,
			StyleToolbar:          bar,
			StyleToolbarButton:    bar.Foreground(tcell.NewHexColor(0x1f5fbf)),
			StyleToolbarActive:    bar.Bold(true).Reverse(true),
			StyleToolbarDisabled:  bar.Foreground(tcell.ColorGray),
			StyleCanvas:           paper,
			StyleElement:          paper,
			StyleElementSelected:  paper.Background(tcell.NewHexColor(0xdfe7f5)),
			StyleElementFocused:   paper.Background(tcell.NewHexColor(0xb7cdf0)),
			StyleStatusBar:        bar,
			StyleStatusBarMessage: bar.Bold(true),
		},
	}
}
