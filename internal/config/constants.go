package config

import "time"

const (
	AppName               = "canvaspad"
	DefaultConfigFileName = "config.toml"
	ThemesDirName         = "themes"
	ExportFilePrefix      = "canvaspad"
)

// Pixel size of one terminal cell.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Padding around element text, in pixels.
const DefaultPadding = 4

const (
	DefaultFontSize   = 20
	DefaultFontFamily = "Go"
	DefaultHistory    = 50
)

// Status Bar
const MessageTimeout = 4 * time.Second

var (
	DefaultFontSizes    = []int{12, 14, 16, 20, 24, 28, 36, 48}
	DefaultFontFamilies = []string{"Go", "Go Mono", "Go Smallcaps"}
)
