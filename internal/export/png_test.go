package export

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/typeface"
	"github.com/bethropolis/canvaspad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExporter(t *testing.T) *Exporter {
	t.Helper()
	registry := typeface.NewRegistry()
	x := New(registry, typeface.NewMeasurer(registry, 4), t.TempDir(), "canvaspad")
	x.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return x
}

func sampleCanvas() *canvas.Canvas {
	c := canvas.New()
	el := canvas.NewElement(10, 10, canvas.DefaultStyle(24, typeface.FamilyGo))
	el.Text = "Hello"
	el.Style.TextDecoration = canvas.DecorationUnderline
	c.Append(el)
	return c
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRenderDrawsText(t *testing.T) {
	x := newExporter(t)
	img, err := x.Render(sampleCanvas(), types.Size{W: 200, H: 80})
	require.NoError(t, err)

	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
	assert.True(t, isWhite(img.At(199, 79)), "background is white")

	inked := 0
	for y := 10; y < 50; y++ {
		for px := 10; px < 100; px++ {
			if !isWhite(img.At(px, y)) {
				inked++
			}
		}
	}
	assert.Positive(t, inked, "the text box contains ink")
}

func TestExportWritesTimestampedFile(t *testing.T) {
	x := newExporter(t)
	path, err := x.Export(sampleCanvas(), types.Size{W: 120, H: 60})
	require.NoError(t, err)

	assert.Equal(t, "canvaspad-20240506-070809.png", filepath.Base(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportEmptyCanvas(t *testing.T) {
	x := newExporter(t)
	_, err := x.Export(canvas.New(), types.Size{W: 10, H: 10})
	assert.ErrorIs(t, err, ErrEmptyCanvas)
}

func TestExportInvalidSize(t *testing.T) {
	x := newExporter(t)
	_, err := x.Render(sampleCanvas(), types.Size{})
	assert.Error(t, err)
}
