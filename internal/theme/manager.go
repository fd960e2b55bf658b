package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/samber/lo"
)

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
	mutex       sync.RWMutex
}

// NewManager creates a manager with the built-in themes and every *.toml
// file in themesDir. An empty or missing directory is fine.
func NewManager(themesDir string) *Manager {
	mgr := &Manager{themes: make(map[string]*Theme)}

	for _, builtin := range []*Theme{&CanvasDark, &CanvasLight} {
		mgr.themes[strings.ToLower(builtin.Name)] = builtin
	}
	mgr.activeTheme = &CanvasDark

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(themesDir); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	return mgr
}

// LoadThemesFromDir loads every .toml file in dir. Broken files are logged
// and skipped.
func (m *Manager) LoadThemesFromDir(dir string) error {
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Theme directory '%s' does not exist. No custom themes loaded.", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		if _, err := m.LoadFile(filepath.Join(dir, file.Name())); err != nil {
			logger.Warnf("%v", err)
			continue
		}
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes.", loadedCount)
	return nil
}

// LoadFile loads one theme file and registers it. A theme with the same
// name replaces the existing one.
func (m *Manager) LoadFile(path string) (*Theme, error) {
	theme, err := LoadThemeFromFile(path)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := strings.ToLower(theme.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' from '%s' overrides existing theme '%s'", theme.Name, path, existing.Name)
		if m.activeTheme == existing {
			m.activeTheme = theme
		}
	}
	m.themes[key] = theme
	return theme, nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := lo.MapToSlice(m.themes, func(_ string, t *Theme) string { return t.Name })
	slices.Sort(names)
	return names
}
