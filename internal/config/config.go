// Package config loads canvaspad settings: built-in defaults, then the TOML
// config file, then command-line flags, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/samber/lo"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Canvas CanvasConfig  `toml:"canvas"`
	Editor EditorConfig  `toml:"editor"`
	Export ExportConfig  `toml:"export"`
	Theme  ThemeConfig   `toml:"theme"`
}

// CanvasConfig maps terminal cells to pixels.
type CanvasConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	Padding    int `toml:"padding"`
}

// EditorConfig holds editing defaults.
type EditorConfig struct {
	DefaultFontSize   int      `toml:"default_font_size"`
	FontSizes         []int    `toml:"font_sizes"`
	DefaultFontFamily string   `toml:"default_font_family"`
	FontFamilies      []string `toml:"font_families"`
	HistoryLimit      int      `toml:"history_limit"`
	SystemClipboard   bool     `toml:"system_clipboard"`
}

// ExportConfig controls PNG export.
type ExportConfig struct {
	Directory string `toml:"directory"`
}

// ThemeConfig selects the UI theme. File, when set, is loaded and activated;
// otherwise Name picks a built-in or themes-dir theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Canvas: CanvasConfig{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			Padding:    DefaultPadding,
		},
		Editor: EditorConfig{
			DefaultFontSize:   DefaultFontSize,
			FontSizes:         slices.Clone(DefaultFontSizes),
			DefaultFontFamily: DefaultFontFamily,
			FontFamilies:      slices.Clone(DefaultFontFamilies),
			HistoryLimit:      DefaultHistory,
			SystemClipboard:   true,
		},
		Export: ExportConfig{Directory: "."},
	}
}

// DefaultPath returns ~/.config/canvaspad/config.toml, or "" when the user
// config dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// ThemesDir returns the directory scanned for theme files.
func ThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ThemesDirName)
}

// Load builds the effective configuration. An empty path means DefaultPath.
// A missing file is not an error; flags may be nil. The logger is usually
// not initialized yet, so problems are returned rather than logged.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	var loadErr error
	if path != "" {
		loadErr = cfg.loadFile(path)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, loadErr
}

// loadFile decodes path over the current values, so keys missing from the
// file keep their defaults.
func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return fmt.Errorf("config file '%s': unrecognized keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}

	if c.Canvas.CellWidth <= 0 {
		c.Canvas.CellWidth = defaults.Canvas.CellWidth
	}
	if c.Canvas.CellHeight <= 0 {
		c.Canvas.CellHeight = defaults.Canvas.CellHeight
	}
	if c.Canvas.Padding < 0 {
		c.Canvas.Padding = defaults.Canvas.Padding
	}

	if c.Editor.DefaultFontSize <= 0 {
		c.Editor.DefaultFontSize = defaults.Editor.DefaultFontSize
	}
	sizes := lo.Uniq(lo.Filter(c.Editor.FontSizes, func(px int, _ int) bool { return px > 0 }))
	if !slices.Contains(sizes, c.Editor.DefaultFontSize) {
		sizes = append(sizes, c.Editor.DefaultFontSize)
	}
	slices.Sort(sizes)
	c.Editor.FontSizes = sizes

	c.Editor.DefaultFontFamily = strings.TrimSpace(c.Editor.DefaultFontFamily)
	if c.Editor.DefaultFontFamily == "" {
		c.Editor.DefaultFontFamily = defaults.Editor.DefaultFontFamily
	}
	families := lo.Uniq(lo.Compact(lo.Map(c.Editor.FontFamilies, func(f string, _ int) string {
		return strings.TrimSpace(f)
	})))
	if !slices.Contains(families, c.Editor.DefaultFontFamily) {
		families = append([]string{c.Editor.DefaultFontFamily}, families...)
	}
	c.Editor.FontFamilies = families

	if c.Editor.HistoryLimit <= 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}

	if c.Export.Directory == "" {
		c.Export.Directory = defaults.Export.Directory
	}
}
