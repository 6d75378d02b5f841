package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"floatmenu/config"
	"floatmenu/ui"
)

var (
	backgroundColor = color.RGBA{20, 25, 30, 255}
	panelColor      = color.RGBA{25, 28, 35, 255}
	panelBorder     = color.RGBA{50, 55, 65, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawMenu(screen)
	g.drawPanel(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), g.width-70, 4)
}

// drawMenu renders the menu into its own layer, and only after something
// invalidated it. Cleared wedges stay transparent over the background.
func (g *Game) drawMenu(screen *ebiten.Image) {
	w, h := g.width, g.menuHeight()
	if w <= 0 || h <= 0 {
		return
	}
	if g.screen == nil {
		g.screen = ui.NewScreen(g.faces)
	}
	if g.menuImg == nil || g.menuImg.Bounds().Dx() != w || g.menuImg.Bounds().Dy() != h {
		if g.menuImg != nil {
			g.menuImg.Dispose()
		}
		g.menuImg = ebiten.NewImage(w, h)
		g.dirty = true
	}
	if g.dirty {
		g.menuImg.Clear()
		g.screen.Bind(g.menuImg)
		g.menu.Render(g.screen)
		g.dirty = false
	}
	screen.DrawImage(g.menuImg, nil)
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	panelY := float32(g.menuHeight())
	vector.DrawFilledRect(screen, 5, panelY, float32(g.width-10), config.PANEL_HEIGHT-5, panelColor, false)
	vector.StrokeRect(screen, 5, panelY, float32(g.width-10), config.PANEL_HEIGHT-5, 1, panelBorder, false)

	status := fmt.Sprintf("Taps:%d | %s | [F2] border", g.taps.Total(), g.menu.TouchState())
	ebitenutil.DebugPrintAt(screen, status, 10, int(panelY)+2)

	g.slopSlider.Draw(screen)
	g.resetBtn.Draw(screen)

	y := int(panelY) + 58
	recent := g.taps.Recent(config.HISTORY_LINES)
	if len(recent) == 0 {
		ebitenutil.DebugPrintAt(screen, "(no taps)", 10, y)
		return
	}
	for _, ev := range recent {
		ebitenutil.DebugPrintAt(screen, ui.TruncStr(ev.String(), (g.width-20)/6), 10, y)
		y += 14
	}
}

func (g *Game) Close() error {
	if g.menuImg != nil {
		g.menuImg.Dispose()
		g.menuImg = nil
	}
	return g.faces.Close()
}
