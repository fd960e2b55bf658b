// Package typeface resolves element styles to TrueType faces and measures
// text blocks in pixels.
package typeface

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bethropolis/canvaspad/internal/canvas"
	"github.com/bethropolis/canvaspad/internal/logger"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
)

type variant int

const (
	regular variant = iota
	bold
	italic
	boldItalic
)

func variantOf(style canvas.Style) variant {
	switch {
	case style.Bold() && style.Italic():
		return boldItalic
	case style.Bold():
		return bold
	case style.Italic():
		return italic
	default:
		return regular
	}
}

type family struct {
	name  string
	ttf   [4][]byte
	fonts [4]*truetype.Font
}

type faceKey struct {
	family  string
	size    int
	variant variant
}

// Registry maps family names to fonts and caches faces per size and variant.
type Registry struct {
	mu       sync.Mutex
	families map[string]*family // keyed by lowercase name
	aliases  map[string]string  // lowercase alias -> lowercase family
	order    []string
	fallback string
	faces    map[faceKey]font.Face
}

// NewRegistry returns a registry preloaded with the Go font families. Common
// web family names are aliased onto them; unknown names fall back to Go.
func NewRegistry() *Registry {
	r := &Registry{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
		faces:    make(map[faceKey]font.Face),
		fallback: strings.ToLower(FamilyGo),
	}
	r.Register(FamilyGo, goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
	r.Register(FamilyGoMono, gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF)
	// Smallcaps ships without bold cuts.
	r.Register(FamilyGoSmallcaps, gosmallcaps.TTF, gosmallcaps.TTF, gosmallcapsitalic.TTF, gosmallcapsitalic.TTF)

	for _, alias := range []string{"sans-serif", "arial", "helvetica", "verdana", "serif", "times new roman", "georgia"} {
		r.Alias(alias, FamilyGo)
	}
	for _, alias := range []string{"monospace", "courier", "courier new"} {
		r.Alias(alias, FamilyGoMono)
	}
	return r
}

// Register adds (or replaces) a family from raw TTF data. Fonts are parsed on
// first use.
func (r *Registry) Register(name string, regularTTF, boldTTF, italicTTF, boldItalicTTF []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, exists := r.families[key]; !exists {
		r.order = append(r.order, name)
	}
	r.families[key] = &family{
		name: name,
		ttf:  [4][]byte{regularTTF, boldTTF, italicTTF, boldItalicTTF},
	}
	for k := range r.faces {
		if k.family == key {
			delete(r.faces, k)
		}
	}
}

// Alias makes alias resolve to an already registered family.
func (r *Registry) Alias(alias, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[strings.ToLower(alias)] = strings.ToLower(target)
}

// Families returns registered family names in registration order.
func (r *Registry) Families() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Resolve returns the canonical family name that name renders with.
func (r *Registry) Resolve(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(name).name
}

func (r *Registry) lookup(name string) *family {
	key := strings.ToLower(strings.TrimSpace(name))
	if fam, ok := r.families[key]; ok {
		return fam
	}
	if target, ok := r.aliases[key]; ok {
		if fam, ok := r.families[target]; ok {
			return fam
		}
	}
	return r.families[r.fallback]
}

// Face returns the cached face for the style's family, size and variant.
func (r *Registry) Face(style canvas.Style) (font.Face, error) {
	if style.FontSizePx <= 0 {
		return nil, fmt.Errorf("invalid font size %d", style.FontSizePx)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	fam := r.lookup(style.FontFamily)
	if fam == nil {
		return nil, fmt.Errorf("no font registered for family %q", style.FontFamily)
	}
	v := variantOf(style)
	key := faceKey{family: strings.ToLower(fam.name), size: style.FontSizePx, variant: v}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	if fam.fonts[v] == nil {
		parsed, err := truetype.Parse(fam.ttf[v])
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", fam.name, err)
		}
		fam.fonts[v] = parsed
		logger.DebugTagf("typeface", "parsed %s variant %d", fam.name, v)
	}

	// At 72 DPI one point is one pixel.
	face := truetype.NewFace(fam.fonts[v], &truetype.Options{
		Size:    float64(style.FontSizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = face
	return face, nil
}
