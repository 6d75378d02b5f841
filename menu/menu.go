// Package menu implements an eight-sector pie menu with a tappable hub. The
// menu owns its geometry, its drawing and its touch interpretation; hosts
// feed it bounds, pointer events and a Surface to draw on.
//
// A Menu is not safe for concurrent use. Hosts call it from their UI loop.
package menu

import (
	"image/color"

	"floatmenu/log"
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

const (
	SeparatorWidth = 4.0
	HubBorderWidth = 4.0

	// DefaultTouchSlop is used when the host has no movement tolerance of
	// its own.
	DefaultTouchSlop = 10.0
)

// Style is the visual configuration a Menu starts from.
type Style struct {
	SectorColor color.RGBA
	CenterColor color.RGBA
	TextColor   color.RGBA
	TextSize    float64
	Labels      [SectorCount]string
	CenterLabel string
	HubBorder   bool
}

func DefaultStyle() Style {
	return Style{
		SectorColor: Black,
		CenterColor: Black,
		TextColor:   White,
		TextSize:    40,
		Labels:      [SectorCount]string{"A", "B", "C", "D", "E", "F", "G", "H"},
		CenterLabel: "Start",
	}
}

type Sector struct {
	Label string
	Color color.RGBA
}

type Hub struct {
	Label string
	Color color.RGBA
}

type Menu struct {
	style Style

	defaultLabels [SectorCount]string
	sectors       [SectorCount]Sector
	defaultColor  color.RGBA
	hub           Hub

	layout Layout
	slop   float64
	touch  touchSession

	// OnSectorTap and OnCenterTap fire on a confirmed tap. OnInvalidate
	// fires whenever the menu needs to be drawn again. Nil callbacks are
	// skipped.
	OnSectorTap  func(index int)
	OnCenterTap  func()
	OnInvalidate func()
}

func New(style Style) *Menu {
	m := &Menu{
		style:         style,
		defaultLabels: style.Labels,
		defaultColor:  style.SectorColor,
		hub:           Hub{Label: style.CenterLabel, Color: style.CenterColor},
		slop:          DefaultTouchSlop,
	}
	for i := range m.sectors {
		m.sectors[i] = Sector{Label: style.Labels[i], Color: style.SectorColor}
	}
	return m
}

func (m *Menu) Style() Style   { return m.style }
func (m *Menu) Layout() Layout { return m.layout }
func (m *Menu) Hub() Hub       { return m.hub }

// Sectors returns a copy of the current sector state.
func (m *Menu) Sectors() [SectorCount]Sector { return m.sectors }

// DefaultLabels returns the labels ClearSectorLabel and ResetAllLabels
// restore.
func (m *Menu) DefaultLabels() [SectorCount]string { return m.defaultLabels }

func (m *Menu) DefaultSectorColor() color.RGBA { return m.defaultColor }

// Label returns the label of sector i, or "" for an index outside 0..7.
func (m *Menu) Label(i int) string {
	if !validIndex(i) {
		return ""
	}
	return m.sectors[i].Label
}

// Recompute updates the layout for new widget bounds.
func (m *Menu) Recompute(width, height float64) Layout {
	m.layout = Recompute(width, height)
	log.Debug("[menu] layout %vx%v center=(%.1f,%.1f) outer=%.1f inner=%.1f",
		width, height, m.layout.Center.X, m.layout.Center.Y, m.layout.OuterRadius, m.layout.InnerRadius)
	m.invalidate()
	return m.layout
}

// The index-taking mutators below ignore indexes outside 0..7. Hosts pass
// indexes straight from user data, and a stray index must not take the menu
// down.

func (m *Menu) SetSectorLabel(i int, label string) {
	if !validIndex(i) {
		return
	}
	m.sectors[i].Label = label
	m.invalidate()
}

// ClearSectorLabel restores the default label of sector i.
func (m *Menu) ClearSectorLabel(i int) {
	if !validIndex(i) {
		return
	}
	m.sectors[i].Label = m.defaultLabels[i]
	m.invalidate()
}

// SetAllLabels replaces both the current and the default labels. Anything
// other than exactly eight labels is ignored.
func (m *Menu) SetAllLabels(labels []string) {
	if len(labels) != SectorCount {
		log.Debug("[menu] ignoring %d labels", len(labels))
		return
	}
	copy(m.defaultLabels[:], labels)
	for i := range m.sectors {
		m.sectors[i].Label = m.defaultLabels[i]
	}
	m.invalidate()
}

func (m *Menu) ResetAllLabels() {
	for i := range m.sectors {
		m.sectors[i].Label = m.defaultLabels[i]
	}
	m.invalidate()
}

func (m *Menu) SetSectorColor(i int, c color.RGBA) {
	if !validIndex(i) {
		return
	}
	m.sectors[i].Color = c
	m.invalidate()
}

// SetDefaultSectorColor sets the fallback color and repaints every sector
// with it.
func (m *Menu) SetDefaultSectorColor(c color.RGBA) {
	m.defaultColor = c
	for i := range m.sectors {
		m.sectors[i].Color = c
	}
	m.invalidate()
}

func (m *Menu) ClearSectorColor(i int) {
	if !validIndex(i) {
		return
	}
	m.sectors[i].Color = m.defaultColor
	m.invalidate()
}

func (m *Menu) SetSectorLabelAndColor(i int, label string, c color.RGBA) {
	if !validIndex(i) {
		return
	}
	m.sectors[i] = Sector{Label: label, Color: c}
	m.invalidate()
}

func (m *Menu) ClearSector(i int) {
	if !validIndex(i) {
		return
	}
	m.sectors[i] = Sector{Label: m.defaultLabels[i], Color: m.defaultColor}
	m.invalidate()
}

func (m *Menu) SetCenterLabel(label string) {
	m.hub.Label = label
	m.invalidate()
}

func (m *Menu) SetCenterColor(c color.RGBA) {
	m.hub.Color = c
	m.invalidate()
}

func (m *Menu) SetCenterLabelAndColor(label string, c color.RGBA) {
	m.hub = Hub{Label: label, Color: c}
	m.invalidate()
}

// SetHubBorder toggles the white ring drawn around the hub.
func (m *Menu) SetHubBorder(on bool) {
	m.style.HubBorder = on
	m.invalidate()
}

func (m *Menu) SetTextStyle(c color.RGBA, size float64) {
	m.style.TextColor = c
	m.style.TextSize = size
	m.invalidate()
}

func (m *Menu) invalidate() {
	if m.OnInvalidate != nil {
		m.OnInvalidate()
	}
}

func validIndex(i int) bool {
	return i >= 0 && i < SectorCount
}
