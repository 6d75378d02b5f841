package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floatmenu/fonts"
	"floatmenu/menu"
)

// Screen draws the menu onto an ebiten image. Bind it to the frame's
// target before rendering.
type Screen struct {
	dst   *ebiten.Image
	faces *fonts.Cache
	white *ebiten.Image
}

func NewScreen(faces *fonts.Cache) *Screen {
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	return &Screen{
		faces: faces,
		white: src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (s *Screen) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Screen) FillWedge(r menu.Rect, start, sweep float64, clr color.RGBA) {
	s.wedge(r, start, sweep, clr, ebiten.BlendSourceOver)
}

func (s *Screen) ClearWedge(r menu.Rect, start, sweep float64) {
	s.wedge(r, start, sweep, color.RGBA{}, ebiten.BlendClear)
}

func (s *Screen) FillCircle(c menu.Point, radius float64, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, f32(c.X), f32(c.Y), f32(radius), clr, true)
}

func (s *Screen) StrokeCircle(c menu.Point, radius float64, clr color.RGBA, width float64) {
	if radius <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, f32(c.X), f32(c.Y), f32(radius), f32(width), clr, true)
}

func (s *Screen) DrawLine(p1, p2 menu.Point, clr color.RGBA, width float64) {
	vector.StrokeLine(s.dst, f32(p1.X), f32(p1.Y), f32(p2.X), f32(p2.Y), f32(width), clr, true)
}

func (s *Screen) DrawText(str string, pos menu.Point, clr color.RGBA, size float64) {
	if str == "" {
		return
	}
	face := s.faces.Face(size)
	x := pos.X - fonts.Width(face, str)/2
	text.Draw(s.dst, str, face, int(math.Round(x)), int(math.Round(pos.Y)), clr)
}

func (s *Screen) Metrics(size float64) menu.Metrics {
	return fonts.Metrics(s.faces.Face(size))
}

func (s *Screen) wedge(r menu.Rect, start, sweep float64, clr color.RGBA, blend ebiten.Blend) {
	radius := r.Dx() / 2
	if radius <= 0 || sweep == 0 {
		return
	}
	c := r.Center()

	var path vector.Path
	path.MoveTo(f32(c.X), f32(c.Y))
	path.Arc(f32(c.X), f32(c.Y), f32(radius), f32(rad(start)), f32(rad(start+sweep)), vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend}
	s.dst.DrawTriangles(vs, is, s.white, op)
}

// TruncStr cuts s to maxLen runes, marking the cut with a dot.
func TruncStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 1 {
		return ""
	}
	return string(r[:maxLen-1]) + "."
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func f32(v float64) float32 { return float32(v) }

var _ menu.Surface = (*Screen)(nil)
