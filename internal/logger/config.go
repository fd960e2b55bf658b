// Package logger wraps log/slog with printf-style helpers and record filtering
// by tag, package and file.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// Level is the minimum level to log: debug, info, warn or error.
	Level string `toml:"level"`

	// FilePath is the log destination. Empty discards output, "-" means stderr.
	FilePath string `toml:"file"`

	// EnabledTags only lets through records carrying one of these tags.
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops records with these tags. Wins over EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only lets through records logged from these packages
	// (the immediate directory name, e.g. "core", "history").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages drops records from these packages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only lets through records logged from these base file names.
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles drops records from these files.
	DisabledFiles []string `toml:"disabled_files"`

	level               slog.Level
	enabledTagsSet      map[string]struct{}
	disabledTagsSet     map[string]struct{}
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
	enabledFilesSet     map[string]struct{}
	disabledFilesSet    map[string]struct{}
}

// NewConfig returns a Config with default values.
func NewConfig() Config {
	return Config{
		Level:    "info",
		FilePath: "",
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// process converts the string settings into lookup sets.
func (c *Config) process() {
	c.level = ParseLevel(c.Level)
	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
	c.enabledFilesSet = sliceToSet(c.EnabledFiles)
	c.disabledFilesSet = sliceToSet(c.DisabledFiles)
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil // nil map means "no filter"
	}
	return set
}
