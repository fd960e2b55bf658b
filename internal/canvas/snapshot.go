package canvas

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is an opaque serialized copy of the whole element tree.
type Snapshot []byte

// Equal reports whether two snapshots describe the same canvas.
func (s Snapshot) Equal(other Snapshot) bool {
	return bytes.Equal(s, other)
}

type document struct {
	Elements []*Element `json:"elements"`
}

// Snapshot serializes every element, in order, with all styles and text.
func (c *Canvas) Snapshot() (Snapshot, error) {
	data, err := json.Marshal(document{Elements: c.elements})
	if err != nil {
		return nil, fmt.Errorf("snapshot canvas: %w", err)
	}
	return Snapshot(data), nil
}

// Restore replaces the whole element tree with the contents of s. Elements
// held from before the call are no longer part of the canvas afterwards. On
// error the canvas is left unchanged.
func (c *Canvas) Restore(s Snapshot) error {
	var doc document
	if err := json.Unmarshal(s, &doc); err != nil {
		return fmt.Errorf("restore canvas: %w", err)
	}
	elements := make([]*Element, 0, len(doc.Elements))
	for _, el := range doc.Elements {
		if el == nil {
			return fmt.Errorf("restore canvas: null element")
		}
		elements = append(elements, el)
	}
	c.elements = elements
	return nil
}
