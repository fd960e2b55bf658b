package typeface

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/types"
	"golang.org/x/image/font"
)

const caretWidth = 2

// Measurer sizes text blocks with real font metrics.
type Measurer struct {
	registry *Registry
	padding  int
}

// NewMeasurer returns a measurer that adds padding pixels on every side.
func NewMeasurer(registry *Registry, padding int) *Measurer {
	if padding < 0 {
		padding = 0
	}
	return &Measurer{registry: registry, padding: padding}
}

// Padding returns the per-side padding.
func (m *Measurer) Padding() int {
	return m.padding
}

// Measure returns the pixel size of text rendered in style. Empty text is
// one caret wide so a fresh element can still be grabbed.
func (m *Measurer) Measure(text string, style canvas.Style) types.Size {
	lines := strings.Split(text, "\n")

	face, err := m.registry.Face(style)
	if err != nil {
		logger.Warnf("Measure: %v, estimating", err)
		return m.estimate(lines, style)
	}

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	if width == 0 {
		width = caretWidth
	}
	lineHeight := face.Metrics().Height.Ceil()
	return types.Size{
		W: width + 2*m.padding,
		H: len(lines)*lineHeight + 2*m.padding,
	}
}

// LineHeight returns the distance between baselines for style.
func (m *Measurer) LineHeight(style canvas.Style) int {
	face, err := m.registry.Face(style)
	if err != nil {
		return max(1, style.FontSizePx*6/5)
	}
	return face.Metrics().Height.Ceil()
}

func (m *Measurer) estimate(lines []string, style canvas.Style) types.Size {
	size := max(1, style.FontSizePx)
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line)*size/2)
	}
	if width == 0 {
		width = caretWidth
	}
	return types.Size{
		W: width + 2*m.padding,
		H: len(lines)*size*6/5 + 2*m.padding,
	}
}
