// Package fonts loads the faces the drawing surfaces render labels with.
package fonts

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"floatmenu/menu"
)

// Sizes below MinScalable use the fixed 7x13 bitmap face; outlines that
// small are unreadable anyway.
const MinScalable = 8

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error
)

func goRegular() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Cache hands out one face per pixel size.
type Cache struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

func NewCache() *Cache {
	return &Cache{faces: make(map[float64]font.Face)}
}

// Face returns the face for size pixels, falling back to the bitmap face
// when the outline font cannot be used.
func (c *Cache) Face(size float64) font.Face {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := Load(size)
	if err != nil {
		f = basicfont.Face7x13
	}
	c.faces[size] = f
	return f
}

func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var first error
	for size, f := range c.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(c.faces, size)
	}
	return first
}

// Load builds a Go Regular face of size pixels.
func Load(size float64) (font.Face, error) {
	if size < MinScalable {
		return basicfont.Face7x13, nil
	}
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.1fpx: %w", size, err)
	}
	return face, nil
}

// Metrics converts a face's metrics into the menu's positive
// ascent/descent pair.
func Metrics(f font.Face) menu.Metrics {
	m := f.Metrics()
	return menu.Metrics{
		Ascent:  toFloat(m.Ascent),
		Descent: toFloat(m.Descent),
	}
}

// Width returns the advance width of s in pixels.
func Width(f font.Face, s string) float64 {
	return toFloat(font.MeasureString(f, s))
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// Dot converts a float position into a fixed-point dot, rounded to whole
// pixels so hinted glyphs stay sharp.
func Dot(x, y float64) fixed.Point26_6 {
	return fixed.P(int(math.Round(x)), int(math.Round(y)))
}
