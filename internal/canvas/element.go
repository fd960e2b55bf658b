// Package canvas holds the document model: an ordered list of styled text
// elements plus whole-canvas snapshots.
package canvas

import (
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/google/uuid"
)

// FontWeight is either normal or bold.
type FontWeight string

// FontStyle is either normal or italic.
type FontStyle string

// TextDecoration is either none or underline.
type TextDecoration string

// TextAlign is either left or center.
type TextAlign string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"

	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"

	DecorationNone      TextDecoration = "none"
	DecorationUnderline TextDecoration = "underline"

	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
)

// Style is the full set of inline style attributes of an element.
type Style struct {
	FontSizePx     int            `json:"fontSize"`
	FontFamily     string         `json:"fontFamily"`
	FontWeight     FontWeight     `json:"fontWeight"`
	FontStyle      FontStyle      `json:"fontStyle"`
	TextDecoration TextDecoration `json:"textDecoration"`
	TextAlign      TextAlign      `json:"textAlign"`
	// Centered shifts the visual box left by half its width, so X becomes the
	// horizontal center instead of the left edge.
	Centered bool `json:"centered,omitempty"`
}

// DefaultStyle returns the style of a freshly placed element.
func DefaultStyle(fontSizePx int, fontFamily string) Style {
	return Style{
		FontSizePx:     fontSizePx,
		FontFamily:     fontFamily,
		FontWeight:     WeightNormal,
		FontStyle:      StyleNormal,
		TextDecoration: DecorationNone,
		TextAlign:      AlignLeft,
	}
}

// Bold reports whether the weight is bold.
func (s Style) Bold() bool { return s.FontWeight == WeightBold }

// Italic reports whether the style is italic.
func (s Style) Italic() bool { return s.FontStyle == StyleItalic }

// Underline reports whether the text is underlined.
func (s Style) Underline() bool { return s.TextDecoration == DecorationUnderline }

// Element is one user-placed text block.
type Element struct {
	ID    string `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// NewElement returns an element with a fresh identifier and empty text.
func NewElement(x, y int, style Style) *Element {
	return &Element{
		ID:    uuid.NewString(),
		X:     x,
		Y:     y,
		Style: style,
	}
}

// Origin returns the top-left corner of the element's visual box for the
// given measured width.
func (e *Element) Origin(width int) types.Point {
	if e.Style.Centered {
		return types.Point{X: e.X - width/2, Y: e.Y}
	}
	return types.Point{X: e.X, Y: e.Y}
}

// MoveOrigin positions the element so that its visual box starts at p.
func (e *Element) MoveOrigin(p types.Point, width int) {
	if e.Style.Centered {
		e.X = p.X + width/2
	} else {
		e.X = p.X
	}
	e.Y = p.Y
}
