package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags. Only flags the user
// actually set override the configuration.
type Flags struct {
	fs *pflag.FlagSet

	ConfigFilePath  string
	Version         bool
	LogLevel        string
	LogFilePath     string
	EnableTags      []string
	DisableTags     []string
	EnablePkgs      []string
	DisablePkgs     []string
	FontSize        int
	FontFamily      string
	HistoryLimit    int
	ExportDir       string
	Theme           string
	SystemClipboard bool
}

// NewFlags defines the command-line flags on a fresh flag set.
func NewFlags() *Flags {
	f := &Flags{fs: pflag.NewFlagSet(AppName, pflag.ContinueOnError)}
	fs := f.fs
	fs.StringVarP(&f.ConfigFilePath, "config", "c", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.BoolVarP(&f.Version, "version", "v", false, "Show version information and exit")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr)")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "Only log records with these tags")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "Drop log records with these tags")
	fs.StringSliceVar(&f.EnablePkgs, "log-packages", nil, "Only log records from these packages")
	fs.StringSliceVar(&f.DisablePkgs, "log-disable-packages", nil, "Drop log records from these packages")
	fs.IntVar(&f.FontSize, "font-size", 0, "Default font size in pixels for new elements")
	fs.StringVar(&f.FontFamily, "font-family", "", "Default font family for new elements")
	fs.IntVar(&f.HistoryLimit, "history-limit", 0, "Maximum number of undo steps")
	fs.StringVar(&f.ExportDir, "export-dir", "", "Directory PNG exports are written to")
	fs.StringVar(&f.Theme, "theme", "", "Theme name, or path to a TOML theme file")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", true, "Use the system clipboard")
	return f
}

// Parse parses args (without the program name).
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Args returns the non-flag arguments.
func (f *Flags) Args() []string {
	return f.fs.Args()
}

// Usage returns the flag help text.
func (f *Flags) Usage() string {
	return f.fs.FlagUsages()
}

// ApplyOverrides copies every flag the user set onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.Level = f.LogLevel
		case "logfile":
			cfg.Logger.FilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = f.EnableTags
		case "log-disable-tags":
			cfg.Logger.DisabledTags = f.DisableTags
		case "log-packages":
			cfg.Logger.EnabledPackages = f.EnablePkgs
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = f.DisablePkgs
		case "font-size":
			cfg.Editor.DefaultFontSize = f.FontSize
		case "font-family":
			cfg.Editor.DefaultFontFamily = f.FontFamily
		case "history-limit":
			cfg.Editor.HistoryLimit = f.HistoryLimit
		case "export-dir":
			cfg.Export.Directory = f.ExportDir
		case "theme":
			if isThemeFile(f.Theme) {
				cfg.Theme.File = f.Theme
			} else {
				cfg.Theme.Name = f.Theme
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		}
	})
}

func isThemeFile(value string) bool {
	return strings.HasSuffix(strings.ToLower(value), ".toml")
}
