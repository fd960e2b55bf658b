// Package app wires the editor core to the terminal and runs the UI loop.
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/canvaspad/internal/config"
	"github.com/bethropolis/canvaspad/internal/core"
	"github.com/bethropolis/canvaspad/internal/core/clipboard"
	"github.com/bethropolis/canvaspad/internal/dispatch"
	"github.com/bethropolis/canvaspad/internal/event"
	"github.com/bethropolis/canvaspad/internal/export"
	"github.com/bethropolis/canvaspad/internal/input"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/render"
	"github.com/bethropolis/canvaspad/internal/statusbar"
	"github.com/bethropolis/canvaspad/internal/theme"
	"github.com/bethropolis/canvaspad/internal/toolbar"
	"github.com/bethropolis/canvaspad/internal/tui"
	"github.com/bethropolis/canvaspad/internal/typeface"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *core.Editor
	dispatcher     *dispatch.Dispatcher
	inputProcessor *input.InputProcessor
	mouse          *input.MouseTracker
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	themeManager   *theme.Manager
	exporter       *export.Exporter

	layout   render.Layout
	tools    []toolbar.Item
	pasting  bool
	pasteBuf []rune

	quit   chan struct{}
	events chan tcell.Event
}

// NewApp creates the application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return NewAppWithScreen(cfg, s)
}

// NewAppWithScreen creates the application on s, which is initialized here.
func NewAppWithScreen(cfg *config.Config, s tcell.Screen) (*App, error) {
	themeManager := theme.NewManager(config.ThemesDir())
	applyThemeConfig(themeManager, cfg.Theme)
	activeTheme := themeManager.Current()

	tuiManager, err := tui.NewWithScreen(s, activeTheme.GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	registry := typeface.NewRegistry()
	measurer := typeface.NewMeasurer(registry, cfg.Canvas.Padding)

	var backend clipboard.Backend
	if cfg.Editor.SystemClipboard {
		backend = clipboard.System()
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(core.Options{
		FontSizePx:   cfg.Editor.DefaultFontSize,
		FontFamily:   cfg.Editor.DefaultFontFamily,
		FontSizes:    cfg.Editor.FontSizes,
		FontFamilies: cfg.Editor.FontFamilies,
		HistoryLimit: cfg.Editor.HistoryLimit,
		Clipboard:    clipboard.NewManager(backend),
	}, measurer, eventManager)

	sbConfig := statusbar.DefaultConfig()
	sbConfig.StyleDefault = activeTheme.GetStyle(theme.StyleStatusBar)
	sbConfig.StyleMessage = activeTheme.GetStyle(theme.StyleStatusBarMessage)
	sbConfig.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(sbConfig)

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         editor,
		inputProcessor: input.NewInputProcessor(),
		mouse:          input.NewMouseTracker(),
		statusBar:      statusBar,
		eventManager:   eventManager,
		themeManager:   themeManager,
		exporter:       export.New(registry, measurer, cfg.Export.Directory, config.ExportFilePrefix),
		quit:           make(chan struct{}),
		events:         make(chan tcell.Event, 16),
	}
	a.dispatcher = dispatch.New(dispatch.Config{
		Editor:       editor,
		EventManager: eventManager,
		Notifier:     statusBar,
		Export:       a.export,
		QuitSignal:   a.quit,
	})
	a.subscribe()
	a.applyLayout()
	return a, nil
}

func applyThemeConfig(m *theme.Manager, tc config.ThemeConfig) {
	if tc.File != "" {
		t, err := m.LoadFile(tc.File)
		if err != nil {
			logger.Warnf("App: %v", err)
		} else {
			tc.Name = t.Name
		}
	}
	if tc.Name == "" {
		return
	}
	if err := m.SetTheme(tc.Name); err != nil {
		logger.Warnf("App: %v (available: %v)", err, m.ListThemes())
	}
}

// export runs on the UI goroutine: font faces are shared with the measurer
// and are not safe for concurrent use.
func (a *App) export() (string, error) {
	return a.exporter.Export(a.editor.Canvas(), a.editor.CanvasSize())
}

// Run starts the event poller and the main loop. It returns when the user
// quits or the screen goes away.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("canvaspad - click to add text | Ctrl+E export | Ctrl+Q quit")
	a.draw()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	showingMessage := true

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.draw()
			}
		case <-ticker.C:
			// Redraw once when a temporary message expires.
			_, isMessage := a.statusBar.Text()
			if showingMessage && !isMessage {
				a.draw()
			}
			showingMessage = isMessage
		}
	}
}

// pollEvents forwards terminal events to the main loop so that all state
// stays on one goroutine.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// Editor exposes the editor core.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Theme returns the active theme.
func (a *App) Theme() *theme.Theme {
	return a.themeManager.Current()
}
