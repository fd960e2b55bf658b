package canvas

import (
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/samber/lo"
)

// Measurer reports the rendered pixel size of a text block in a given style.
type Measurer interface {
	Measure(text string, style Style) types.Size
}

// Canvas is the root container. Element order is paint order.
type Canvas struct {
	elements []*Element
}

// New creates an empty canvas.
func New() *Canvas {
	return &Canvas{elements: make([]*Element, 0)}
}

// Append adds el on top of every other element.
func (c *Canvas) Append(el *Element) {
	c.elements = append(c.elements, el)
}

// Elements returns the live elements in paint order. The slice must not be
// modified by callers.
func (c *Canvas) Elements() []*Element {
	return c.elements
}

// Len returns the number of elements.
func (c *Canvas) Len() int {
	return len(c.elements)
}

// IndexOf returns the paint index of the element with id, or -1.
func (c *Canvas) IndexOf(id string) int {
	_, idx, ok := lo.FindIndexOf(c.elements, func(el *Element) bool { return el.ID == id })
	if !ok {
		return -1
	}
	return idx
}

// Find returns the live element with id.
func (c *Canvas) Find(id string) (*Element, bool) {
	idx := c.IndexOf(id)
	if idx < 0 {
		return nil, false
	}
	return c.elements[idx], true
}

// Has reports whether an element with id is on the canvas.
func (c *Canvas) Has(id string) bool {
	return c.IndexOf(id) >= 0
}

// Bounds returns the element's visual box in canvas pixels.
func Bounds(el *Element, m Measurer) types.Rect {
	size := m.Measure(el.Text, el.Style)
	origin := el.Origin(size.W)
	return types.Rect{X: origin.X, Y: origin.Y, W: size.W, H: size.H}
}

// ElementAt returns the topmost element whose box contains p.
func (c *Canvas) ElementAt(p types.Point, m Measurer) (*Element, bool) {
	for i := len(c.elements) - 1; i >= 0; i-- {
		if Bounds(c.elements[i], m).Contains(p) {
			return c.elements[i], true
		}
	}
	return nil, false
}
