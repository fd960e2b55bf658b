// Package export renders the canvas to a PNG image.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/bethropolis/canvaspad/internal/typeface"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// ErrEmptyCanvas is returned when there is nothing to draw.
var ErrEmptyCanvas = errors.New("nothing to export")

// Exporter draws elements with the same faces and sizes used for editing.
type Exporter struct {
	registry *typeface.Registry
	measurer *typeface.Measurer
	dir      string
	prefix   string
	now      func() time.Time
}

// New creates an exporter writing files named <prefix>-<timestamp>.png into
// dir.
func New(registry *typeface.Registry, measurer *typeface.Measurer, dir, prefix string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{
		registry: registry,
		measurer: measurer,
		dir:      dir,
		prefix:   prefix,
		now:      time.Now,
	}
}

// Export writes the canvas to a new timestamped file and returns its path.
func (x *Exporter) Export(c *canvas.Canvas, size types.Size) (string, error) {
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory '%s': %w", x.dir, err)
	}
	name := fmt.Sprintf("%s-%s.png", x.prefix, x.now().Format("20060102-150405"))
	path := filepath.Join(x.dir, name)
	if err := x.PNG(path, c, size); err != nil {
		return "", err
	}
	return path, nil
}

// PNG renders the canvas and saves it at path.
func (x *Exporter) PNG(path string, c *canvas.Canvas, size types.Size) error {
	dc, err := x.draw(c, size)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	logger.Infof("Exported %d elements to %s", c.Len(), path)
	return nil
}

// Render draws the canvas into an image without saving it.
func (x *Exporter) Render(c *canvas.Canvas, size types.Size) (image.Image, error) {
	dc, err := x.draw(c, size)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (x *Exporter) draw(c *canvas.Canvas, size types.Size) (*gg.Context, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCanvas
	}
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", size.W, size.H)
	}

	dc := gg.NewContext(size.W, size.H)
	dc.SetColor(color.White)
	dc.Clear()

	for _, el := range c.Elements() {
		if err := x.drawElement(dc, el); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func (x *Exporter) drawElement(dc *gg.Context, el *canvas.Element) error {
	face, err := x.registry.Face(el.Style)
	if err != nil {
		return fmt.Errorf("element %s: %w", el.ID, err)
	}
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	bounds := canvas.Bounds(el, x.measurer)
	pad := x.measurer.Padding()
	lineHeight := x.measurer.LineHeight(el.Style)
	ascent := face.Metrics().Ascent.Ceil()
	inner := bounds.W - 2*pad

	for i, line := range strings.Split(el.Text, "\n") {
		lineW := font.MeasureString(face, line).Ceil()
		lx := bounds.X + pad
		if el.Style.TextAlign == canvas.AlignCenter {
			lx += max(0, (inner-lineW)/2)
		}
		baseline := bounds.Y + pad + ascent + i*lineHeight

		dc.DrawString(line, float64(lx), float64(baseline))
		if el.Style.Underline() && lineW > 0 {
			y := float64(baseline + 2)
			dc.SetLineWidth(max(1, float64(el.Style.FontSizePx)/14))
			dc.DrawLine(float64(lx), y, float64(lx+lineW), y)
			dc.Stroke()
		}
	}
	return nil
}
