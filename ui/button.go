package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floatmenu/menu"
)

var buttonBorder = color.RGBA{100, 100, 100, 255}

// Button is a push button. It owns its palette; Pressed wins over Hovered.
type Button struct {
	X, Y, W, H float32
	Label      string

	Color      color.RGBA
	HoverColor color.RGBA
	PressColor color.RGBA

	Hovered bool
	Pressed bool
}

func (b *Button) Contains(p menu.Point) bool {
	fx, fy := float32(p.X), float32(p.Y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Fill is the body color for the current state.
func (b *Button) Fill() color.RGBA {
	switch {
	case b.Pressed:
		return b.PressColor
	case b.Hovered:
		return b.HoverColor
	}
	return b.Color
}

func (b *Button) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, b.Fill(), false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, buttonBorder, false)
	// debug font glyphs are 6x16
	x := int(b.X+b.W/2) - len(b.Label)*3
	y := int(b.Y+b.H/2) - 8
	ebitenutil.DebugPrintAt(screen, b.Label, x, y)
}
