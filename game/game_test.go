package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"floatmenu/config"
	"floatmenu/menu"
)

var highlightBlue = color.RGBA{0x1e, 0x88, 0xe5, 255}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(config.Default())
	require.NoError(t, err)
	return g
}

func (g *Game) tap(p menu.Point) {
	g.handlePointer(menu.PointerEvent{Action: menu.PointerDown, Pos: p})
	g.handlePointer(menu.PointerEvent{Action: menu.PointerUp, Pos: p})
}

func TestNewGameLayout(t *testing.T) {
	g := newTestGame(t)

	l := g.Menu().Layout()
	require.Equal(t, menu.Pt(200, 200), l.Center)
	require.Equal(t, 190.0, l.OuterRadius)
	require.True(t, g.dirty)
	require.InDelta(t, menu.DefaultTouchSlop, g.Menu().TouchSlop(), 1e-9)
	require.Len(t, g.hotkeys, menu.SectorCount+2)
}

func TestLayoutResize(t *testing.T) {
	g := newTestGame(t)
	g.dirty = false

	w, h := g.Layout(600, 320)
	require.Equal(t, 600, w)
	require.Equal(t, 320, h)
	require.Equal(t, 90.0, g.Menu().Layout().OuterRadius)
	require.True(t, g.dirty)
	require.Equal(t, float32(600-90-10), g.resetBtn.X)
	require.Equal(t, float32(200+32), g.resetBtn.Y)

	g.dirty = false
	g.Layout(600, 320)
	require.False(t, g.dirty, "same size is a no-op")

	g.Layout(300, 50)
	require.Equal(t, menu.HitNone, g.Menu().Layout().HitTest(menu.Pt(150, 0)).Kind)
}

func TestSectorTapToggles(t *testing.T) {
	g := newTestGame(t)
	top := menu.Pt(200, 50)

	g.tap(top)
	require.Equal(t, highlightBlue, g.Menu().Sectors()[0].Color)
	require.Equal(t, 1, g.Taps().Counts[0])
	require.Equal(t, "pointer", g.Taps().Events[0].Source)
	require.Equal(t, "A", g.Taps().Events[0].Label)

	g.tap(top)
	require.Equal(t, menu.Black, g.Menu().Sectors()[0].Color)
	require.Equal(t, 2, g.Taps().Total())
}

func TestCenterTapToggles(t *testing.T) {
	g := newTestGame(t)

	g.tap(menu.Pt(200, 200))
	hub := g.Menu().Hub()
	require.Equal(t, "Stop", hub.Label)
	require.Equal(t, color.RGBA{0xc6, 0x28, 0x28, 255}, hub.Color)
	require.Equal(t, menu.HitCenter, g.Taps().Events[0].Kind)

	g.tap(menu.Pt(200, 200))
	require.Equal(t, menu.Hub{Label: "Start", Color: menu.Black}, g.Menu().Hub())
}

func TestDragOnMenuIsNotATap(t *testing.T) {
	g := newTestGame(t)

	g.handlePointer(menu.PointerEvent{Action: menu.PointerDown, Pos: menu.Pt(200, 50)})
	g.handlePointer(menu.PointerEvent{Action: menu.PointerMove, Pos: menu.Pt(260, 50)})
	g.handlePointer(menu.PointerEvent{Action: menu.PointerUp, Pos: menu.Pt(260, 50)})
	require.Zero(t, g.Taps().Total())
	require.Equal(t, targetNone, g.capture)
}

func TestResetButton(t *testing.T) {
	g := newTestGame(t)
	g.tap(menu.Pt(200, 50))
	g.Menu().SetSectorLabel(2, "x")
	btn := menu.Pt(345, 443)

	// released off the button
	g.handlePointer(menu.PointerEvent{Action: menu.PointerDown, Pos: btn})
	require.True(t, g.resetBtn.Pressed)
	g.handlePointer(menu.PointerEvent{Action: menu.PointerUp, Pos: menu.Pt(200, 300)})
	require.False(t, g.resetBtn.Pressed)
	require.Equal(t, "x", g.Menu().Label(2))
	require.Equal(t, 1, g.Taps().Total(), "the release must not reach the menu")

	g.tap(btn)
	require.Equal(t, "C", g.Menu().Label(2))
	require.Equal(t, menu.Black, g.Menu().Sectors()[0].Color)
	require.False(t, g.highlighted[0])
}

func TestSlopSlider(t *testing.T) {
	g := newTestGame(t)

	g.handlePointer(menu.PointerEvent{Action: menu.PointerDown, Pos: menu.Pt(10, 445)})
	require.True(t, g.slopSlider.Dragging)
	require.InDelta(t, config.SLOP_MIN, g.Menu().TouchSlop(), 1e-6)

	g.handlePointer(menu.PointerEvent{Action: menu.PointerMove, Pos: menu.Pt(500, 445)})
	require.InDelta(t, config.SLOP_MAX, g.Menu().TouchSlop(), 1e-6)

	g.handlePointer(menu.PointerEvent{Action: menu.PointerUp, Pos: menu.Pt(500, 445)})
	require.False(t, g.slopSlider.Dragging)
	require.Equal(t, targetNone, g.capture)
}

func TestPanelPressIgnored(t *testing.T) {
	g := newTestGame(t)
	g.tap(menu.Pt(290, 500))
	require.Zero(t, g.Taps().Total())
	require.Equal(t, menu.Idle, g.Menu().TouchState())
}

func TestHotkeyActions(t *testing.T) {
	g := newTestGame(t)

	// hotkeys are bound in sector order, then center and reset
	g.hotkeys[3].action(g.hotkeys[3].combo.String())
	require.Equal(t, highlightBlue, g.Menu().Sectors()[3].Color)
	require.Equal(t, "4", g.Taps().Events[0].Source)

	g.hotkeys[menu.SectorCount].action("SPACE")
	require.Equal(t, "Stop", g.Menu().Hub().Label)

	g.hotkeys[menu.SectorCount+1].action("R")
	require.Equal(t, menu.Black, g.Menu().Sectors()[3].Color)
}

func TestNewGameErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Config)
		want string
	}{
		{"style", func(c *config.Config) { c.Style.TextColor = "white" }, "style.text_color"},
		{"highlight", func(c *config.Config) { c.Style.HighlightColor = "#xyz" }, "style.highlight_color"},
		{"center key", func(c *config.Config) { c.Hotkeys.Center = "HYPER+X" }, "hotkeys.center"},
		{"sector key", func(c *config.Config) { c.Hotkeys.Sectors[1] = "F99" }, "hotkeys.sectors[1]"},
		{"too many", func(c *config.Config) { c.Hotkeys.Sectors = append(c.Hotkeys.Sectors, "9") }, "at most"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.edit(&c)
			_, err := NewGame(c)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestEmptyHotkeysAreSkipped(t *testing.T) {
	c := config.Default()
	c.Hotkeys = config.HotkeyConfig{Sectors: []string{"", "2"}}
	g, err := NewGame(c)
	require.NoError(t, err)
	require.Len(t, g.hotkeys, 1)
}
