package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"floatmenu/config"
	"floatmenu/fonts"
	"floatmenu/input"
	"floatmenu/log"
	"floatmenu/menu"
	"floatmenu/monitor"
	"floatmenu/ui"
)

// target is the widget that owns the current press.
type target int

const (
	targetNone target = iota
	targetMenu
	targetReset
	targetSlider
)

type hotkey struct {
	combo  input.KeyCombo
	action func(source string)
}

type Game struct {
	cfg   config.Config
	style menu.Style
	menu  *menu.Menu
	taps  *monitor.TapLog

	tracker input.PointerTracker
	hotkeys []hotkey
	capture target

	resetBtn   *ui.Button
	slopSlider *ui.Slider

	highlight   color.RGBA
	active      color.RGBA
	highlighted [menu.SectorCount]bool
	running     bool

	faces   *fonts.Cache
	screen  *ui.Screen
	menuImg *ebiten.Image
	dirty   bool

	width, height int
}

func NewGame(cfg config.Config) (*Game, error) {
	style, err := cfg.MenuStyle()
	if err != nil {
		return nil, err
	}
	highlight, err := cfg.Highlight()
	if err != nil {
		return nil, err
	}
	active, err := cfg.Active()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		style:     style,
		menu:      menu.New(style),
		taps:      monitor.NewTapLog(config.TAP_LOG_SIZE),
		highlight: highlight,
		active:    active,
		faces:     fonts.NewCache(),
		dirty:     true,
		resetBtn: &ui.Button{
			W:          90,
			H:          22,
			Label:      "Reset",
			Color:      color.RGBA{80, 40, 40, 255},
			HoverColor: color.RGBA{100, 50, 50, 255},
			PressColor: color.RGBA{130, 60, 60, 255},
		},
		slopSlider: &ui.Slider{
			H:     10,
			Min:   config.SLOP_MIN,
			Max:   config.SLOP_MAX,
			Color: color.RGBA{80, 140, 220, 255},
			Label: "Touch slop",
			Unit:  "px",
		},
	}
	g.menu.SetTouchSlop(cfg.Input.TouchSlop)
	g.slopSlider.SetAmount(g.menu.TouchSlop())

	g.menu.OnSectorTap = func(i int) { g.toggleSector(i, "pointer") }
	g.menu.OnCenterTap = func() { g.toggleCenter("pointer") }
	g.menu.OnInvalidate = func() { g.dirty = true }

	if err := g.bindHotkeys(cfg.Hotkeys); err != nil {
		return nil, err
	}

	g.Layout(cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

func (g *Game) bindHotkeys(hk config.HotkeyConfig) error {
	if len(hk.Sectors) > menu.SectorCount {
		return fmt.Errorf("hotkeys.sectors: at most %d keys, got %d", menu.SectorCount, len(hk.Sectors))
	}
	bind := func(key, s string, action func(string)) error {
		if s == "" {
			return nil
		}
		combo, err := input.ParseKeyCombo(s)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		g.hotkeys = append(g.hotkeys, hotkey{combo: combo, action: action})
		return nil
	}

	for i, s := range hk.Sectors {
		if err := bind(fmt.Sprintf("hotkeys.sectors[%d]", i), s, func(src string) { g.toggleSector(i, src) }); err != nil {
			return err
		}
	}
	if err := bind("hotkeys.center", hk.Center, g.toggleCenter); err != nil {
		return err
	}
	return bind("hotkeys.reset", hk.Reset, g.reset)
}

func (g *Game) Menu() *menu.Menu      { return g.menu }
func (g *Game) Taps() *monitor.TapLog { return g.taps }

// toggleSector flips the highlight of sector i.
func (g *Game) toggleSector(i int, source string) {
	g.highlighted[i] = !g.highlighted[i]
	if g.highlighted[i] {
		g.menu.SetSectorColor(i, g.highlight)
	} else {
		g.menu.ClearSectorColor(i)
	}
	label := g.menu.Label(i)
	g.taps.AddSector(i, label, source)
	log.Info("[game] sector %d %q on=%v (%s)", i, label, g.highlighted[i], source)
}

func (g *Game) toggleCenter(source string) {
	g.running = !g.running
	if g.running {
		g.menu.SetCenterLabelAndColor(g.cfg.Style.ActiveLabel, g.active)
	} else {
		g.menu.SetCenterLabelAndColor(g.style.CenterLabel, g.style.CenterColor)
	}
	g.taps.AddCenter(g.menu.Hub().Label, source)
	log.Info("[game] hub -> %q (%s)", g.menu.Hub().Label, source)
}

func (g *Game) reset(source string) {
	g.menu.ResetAllLabels()
	g.menu.SetDefaultSectorColor(g.style.SectorColor)
	g.highlighted = [menu.SectorCount]bool{}
	log.Info("[game] reset (%s)", source)
}

func (g *Game) targetAt(p menu.Point) target {
	switch {
	case g.resetBtn.Contains(p):
		return targetReset
	case g.slopSlider.Contains(p):
		return targetSlider
	case p.Y < float64(g.menuHeight()):
		return targetMenu
	}
	return targetNone
}

// handlePointer routes ev to the widget the press started on. That widget
// keeps every event until the press ends.
func (g *Game) handlePointer(ev menu.PointerEvent) {
	if ev.Action == menu.PointerDown {
		g.capture = g.targetAt(ev.Pos)
	}
	ended := ev.Action == menu.PointerUp || ev.Action == menu.PointerCancel

	switch g.capture {
	case targetMenu:
		if !g.menu.HandlePointer(ev) && ev.Action == menu.PointerUp {
			log.Debug("[game] release at (%.0f,%.0f) missed the menu", ev.Pos.X, ev.Pos.Y)
		}
	case targetReset:
		g.resetBtn.Pressed = !ended && g.resetBtn.Contains(ev.Pos)
		if ev.Action == menu.PointerUp && g.resetBtn.Contains(ev.Pos) {
			g.reset("pointer")
		}
	case targetSlider:
		g.slopSlider.Dragging = !ended
		if ev.Action != menu.PointerCancel {
			g.slopSlider.SetValueFromX(ev.Pos.X)
			g.menu.SetTouchSlop(g.slopSlider.Amount())
		}
	}

	if ended {
		if g.capture == targetSlider {
			log.Debug("[game] touch slop %.1f", g.menu.TouchSlop())
		}
		g.capture = targetNone
	}
}

func (g *Game) Update() error {
	for _, ev := range g.tracker.Poll() {
		g.handlePointer(ev)
	}
	g.resetBtn.Hovered = g.resetBtn.Contains(g.tracker.Position())

	for _, hk := range g.hotkeys {
		if hk.combo.JustPressed() {
			hk.action(hk.combo.String())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		on := !g.menu.Style().HubBorder
		g.menu.SetHubBorder(on)
		log.Info("[game] hub border %v", on)
	}

	return nil
}

// Layout gives the menu everything above the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.menu.Recompute(float64(g.width), float64(g.menuHeight()))
		g.placePanel()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) menuHeight() int {
	h := g.height - config.PANEL_HEIGHT
	if h < 0 {
		return 0
	}
	return h
}

func (g *Game) placePanel() {
	panelY := float32(g.menuHeight())
	g.resetBtn.X = float32(g.width) - g.resetBtn.W - 10
	g.resetBtn.Y = panelY + 32
	g.slopSlider.X = 10
	g.slopSlider.Y = panelY + 40
	g.slopSlider.W = float32(g.width) - g.resetBtn.W - 40
}
