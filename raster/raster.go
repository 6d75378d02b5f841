// Package raster draws the menu into an in-memory RGBA image. It backs the
// terminal host and the snapshot tool.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"floatmenu/fonts"
	"floatmenu/menu"
)

// arcStep is the flattening step for arcs, in degrees.
const arcStep = 1.0

type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	faces *fonts.Cache

	// Face, when set, is used for every text size instead of the cache.
	Face font.Face
}

func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
		faces: fonts.NewCache(),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill paints the whole canvas, typically with a background color.
func (c *Canvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Clear makes the whole canvas transparent.
func (c *Canvas) Clear() {
	c.Fill(color.Transparent)
}

func (c *Canvas) Close() error {
	return c.faces.Close()
}

func (c *Canvas) FillWedge(r menu.Rect, start, sweep float64, clr color.RGBA) {
	if !c.wedge(r, start, sweep) {
		return
	}
	c.paint(image.NewUniform(clr), draw.Over)
}

func (c *Canvas) ClearWedge(r menu.Rect, start, sweep float64) {
	if !c.wedge(r, start, sweep) {
		return
	}
	b := c.img.Bounds()
	mask := image.NewAlpha(b)
	c.z.DrawOp = draw.Src
	c.z.Draw(mask, b, image.Opaque, image.Point{})
	// Src through the mask keeps dst*(1-m) outside the wedge
	draw.DrawMask(c.img, b, image.Transparent, image.Point{}, mask, b.Min, draw.Src)
}

func (c *Canvas) FillCircle(center menu.Point, radius float64, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	c.begin()
	c.ring(center, radius, false)
	c.paint(image.NewUniform(clr), draw.Over)
}

func (c *Canvas) StrokeCircle(center menu.Point, radius float64, clr color.RGBA, width float64) {
	if radius <= 0 || width <= 0 {
		return
	}
	c.begin()
	c.ring(center, radius+width/2, false)
	if in := radius - width/2; in > 0 {
		// inner contour wound the other way cuts the hole
		c.ring(center, in, true)
	}
	c.paint(image.NewUniform(clr), draw.Over)
}

func (c *Canvas) DrawLine(p1, p2 menu.Point, clr color.RGBA, width float64) {
	d := p2.Sub(p1)
	n := math.Hypot(d.X, d.Y)
	if n == 0 || width <= 0 {
		return
	}
	// normal scaled to half the stroke width
	nx, ny := -d.Y/n*width/2, d.X/n*width/2
	c.begin()
	c.z.MoveTo(f32(p1.X+nx), f32(p1.Y+ny))
	c.z.LineTo(f32(p2.X+nx), f32(p2.Y+ny))
	c.z.LineTo(f32(p2.X-nx), f32(p2.Y-ny))
	c.z.LineTo(f32(p1.X-nx), f32(p1.Y-ny))
	c.z.ClosePath()
	c.paint(image.NewUniform(clr), draw.Over)
}

func (c *Canvas) DrawText(s string, pos menu.Point, clr color.RGBA, size float64) {
	if s == "" {
		return
	}
	face := c.face(size)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fonts.Dot(pos.X-fonts.Width(face, s)/2, pos.Y),
	}
	d.DrawString(s)
}

func (c *Canvas) Metrics(size float64) menu.Metrics {
	return fonts.Metrics(c.face(size))
}

func (c *Canvas) face(size float64) font.Face {
	if c.Face != nil {
		return c.Face
	}
	return c.faces.Face(size)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) paint(src image.Image, op draw.Op) {
	c.z.DrawOp = op
	c.z.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// wedge loads the pie slice of the ellipse inscribed in r into the
// rasterizer. It reports false for an empty slice.
func (c *Canvas) wedge(r menu.Rect, start, sweep float64) bool {
	rx, ry := r.Dx()/2, r.Dy()/2
	if rx <= 0 || ry <= 0 || sweep == 0 {
		return false
	}
	ctr := r.Center()
	c.begin()
	c.z.MoveTo(f32(ctr.X), f32(ctr.Y))
	steps := int(math.Ceil(math.Abs(sweep) / arcStep))
	for i := 0; i <= steps; i++ {
		a := (start + sweep*float64(i)/float64(steps)) * math.Pi / 180
		c.z.LineTo(f32(ctr.X+rx*math.Cos(a)), f32(ctr.Y+ry*math.Sin(a)))
	}
	c.z.ClosePath()
	return true
}

func (c *Canvas) ring(center menu.Point, radius float64, reverse bool) {
	steps := int(math.Ceil(360 / arcStep))
	for i := 0; i <= steps; i++ {
		deg := 360 * float64(i) / float64(steps)
		if reverse {
			deg = -deg
		}
		p := center.Polar(radius, deg)
		if i == 0 {
			c.z.MoveTo(f32(p.X), f32(p.Y))
			continue
		}
		c.z.LineTo(f32(p.X), f32(p.Y))
	}
	c.z.ClosePath()
}

func f32(v float64) float32 { return float32(v) }

var _ menu.Surface = (*Canvas)(nil)
