package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floatmenu/menu"
)

// Slider maps a horizontal track onto the range [Min, Max].
type Slider struct {
	X, Y, W, H float32
	Min, Max   float64
	Value      float32
	Dragging   bool
	Label      string
	Unit       string
	Color      color.RGBA
}

func (s *Slider) Contains(p menu.Point) bool {
	fx, fy := float32(p.X), float32(p.Y)
	return fx >= s.X && fx <= s.X+s.W && fy >= s.Y-5 && fy <= s.Y+s.H+5
}

func (s *Slider) SetValueFromX(x float64) {
	if s.W <= 0 {
		return
	}
	v := (float32(x) - s.X) / s.W
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.Value = v
}

// Amount returns the value scaled into [Min, Max].
func (s *Slider) Amount() float64 {
	return s.Min + float64(s.Value)*(s.Max-s.Min)
}

// SetAmount positions the handle for an amount in [Min, Max].
func (s *Slider) SetAmount(v float64) {
	if s.Max <= s.Min {
		s.Value = 0
		return
	}
	f := (v - s.Min) / (s.Max - s.Min)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	s.Value = float32(f)
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, s.X, s.Y, s.W*s.Value, s.H, s.Color, false)
	vector.StrokeRect(screen, s.X, s.Y, s.W, s.H, 1, color.RGBA{80, 80, 80, 255}, false)
	handleX := s.X + s.W*s.Value
	vector.DrawFilledRect(screen, handleX-4, s.Y-3, 8, s.H+6, color.RGBA{200, 200, 200, 255}, false)
	labelText := fmt.Sprintf("%s: %.0f%s", s.Label, s.Amount(), s.Unit)
	ebitenutil.DebugPrintAt(screen, labelText, int(s.X), int(s.Y)-18)
}
