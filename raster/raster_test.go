package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"floatmenu/menu"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func at(c *Canvas, p menu.Point) color.RGBA {
	return c.Image().RGBAAt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

func renderMenu(t *testing.T) (*Canvas, *menu.Menu) {
	t.Helper()
	m := menu.New(menu.DefaultStyle())
	m.Recompute(200, 200) // outer 90, inner 36, hub 26
	m.SetTextStyle(menu.White, 10)
	m.SetSectorColor(3, red)
	m.SetCenterColor(blue)

	c := New(200, 200)
	t.Cleanup(func() { c.Close() })
	m.Render(c)
	return c, m
}

func TestRenderRing(t *testing.T) {
	c, m := renderMenu(t)
	ctr := m.Layout().Center

	require.Equal(t, red, at(c, ctr.Polar(80, 67.5)), "sector 3 body")
	require.Equal(t, menu.Black, at(c, ctr.Polar(80, -67.5)), "sector 0 body")
	require.Equal(t, uint8(0), at(c, ctr.Polar(31, 67.5)).A, "cleared between hub and ring")
	require.Equal(t, uint8(0), at(c, menu.Pt(2, 2)).A, "outside the ring")
}

func TestRenderKeepsEverySector(t *testing.T) {
	c, m := renderMenu(t)
	ctr := m.Layout().Center

	for i := range menu.SectorCount {
		p := at(c, ctr.Polar(80, menu.StartAngle(i)+menu.SectorSweep/2))
		require.Equal(t, uint8(255), p.A, "sector %d body", i)
	}
}

func TestRenderHub(t *testing.T) {
	c, m := renderMenu(t)
	ctr := m.Layout().Center

	require.Equal(t, blue, at(c, menu.Pt(ctr.X, ctr.Y+20)))
}

func TestRenderSeparator(t *testing.T) {
	c, m := renderMenu(t)
	ctr := m.Layout().Center

	// just on the sector 0 side of the boundary at -45°
	p := at(c, ctr.Polar(60, -46))
	require.Greater(t, p.G, uint8(200))
	require.Greater(t, p.B, uint8(200))
}

func TestRenderLabel(t *testing.T) {
	c, m := renderMenu(t)
	l := m.Layout()
	mid := l.Center.Polar(l.LabelRadius(), -67.5)

	white := 0
	for y := int(mid.Y) - 8; y <= int(mid.Y)+8; y++ {
		for x := int(mid.X) - 8; x <= int(mid.X)+8; x++ {
			if p := c.Image().RGBAAt(x, y); p.R > 128 && p.G > 128 && p.B > 128 {
				white++
			}
		}
	}
	require.Positive(t, white, "label A drawn around %v", mid)
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	c := New(100, 100)
	defer c.Close()
	c.StrokeCircle(menu.Pt(50, 50), 30, red, 4)

	require.Equal(t, uint8(0), at(c, menu.Pt(50, 50)).A)
	require.Equal(t, red, at(c, menu.Pt(80, 50)))
	require.Equal(t, uint8(0), at(c, menu.Pt(90, 50)).A)
}

func TestDrawLine(t *testing.T) {
	c := New(100, 100)
	defer c.Close()
	c.DrawLine(menu.Pt(10, 50), menu.Pt(90, 50), red, 4)

	require.Equal(t, red, at(c, menu.Pt(50, 49)))
	require.Equal(t, red, at(c, menu.Pt(50, 50)))
	require.Equal(t, uint8(0), at(c, menu.Pt(50, 45)).A)

	// zero-length lines draw nothing
	c.DrawLine(menu.Pt(5, 5), menu.Pt(5, 5), red, 4)
	require.Equal(t, uint8(0), at(c, menu.Pt(5, 5)).A)
}

func TestClearWedgeOnFilledCanvas(t *testing.T) {
	c := New(100, 100)
	defer c.Close()
	c.Fill(red)
	c.ClearWedge(menu.Square(menu.Pt(50, 50), 40), 0, 90)

	require.Equal(t, uint8(0), at(c, menu.Pt(70, 70)).A, "inside the cleared quarter")
	require.Equal(t, red, at(c, menu.Pt(30, 30)), "opposite quarter untouched")
	require.Equal(t, red, at(c, menu.Pt(95, 95)), "corner outside the ellipse untouched")
	require.Equal(t, red, at(c, menu.Pt(30, 70)), "neighbouring quarter untouched")
}

func TestDrawTextFixedFace(t *testing.T) {
	c := New(60, 30)
	defer c.Close()
	c.Face = basicfont.Face7x13

	require.Equal(t, menu.Metrics{Ascent: 11, Descent: 2}, c.Metrics(40))
	c.DrawText("", menu.Pt(30, 20), red, 40)
	require.Equal(t, uint8(0), at(c, menu.Pt(30, 15)).A)

	c.DrawText("HH", menu.Pt(30, 20), red, 40)
	found := false
	for x := 23; x < 37; x++ {
		if c.Image().RGBAAt(x, 15).A > 0 {
			found = true
		}
	}
	require.True(t, found)
}

func TestDegenerateMenu(t *testing.T) {
	m := menu.New(menu.DefaultStyle())
	m.Recompute(0, 0)
	c := New(0, 0)
	defer c.Close()
	require.NotPanics(t, func() { m.Render(c) })
}

func TestWritePNG(t *testing.T) {
	c, _ := renderMenu(t)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, c.Image().Bounds(), img.Bounds())
}
