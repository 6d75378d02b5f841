// Package term hosts the menu in a terminal. The menu is rasterized and shown
// as half-block characters; mouse presses and drags drive it like touches.
package term

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"floatmenu/fonts"
	"floatmenu/log"
	"floatmenu/menu"
	"floatmenu/monitor"
	"floatmenu/raster"
)

const (
	// TextSize selects the fixed bitmap face; scalable faces smear at one
	// pixel per half cell.
	TextSize = fonts.MinScalable - 1

	footerLines = 2
	markSuffix  = "*"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the terminal host.
type Model struct {
	menu      *menu.Menu
	style     menu.Style
	highlight color.RGBA
	active    color.RGBA
	taps      *monitor.TapLog

	canvas   *raster.Canvas
	renderer *lipgloss.Renderer
	lines    []string
	dirty    bool

	cols, rows int
	down       bool
	last       menu.Point
	marked     [menu.SectorCount]bool
	running    bool
	status     string
}

type Options struct {
	Style       menu.Style
	Highlight   color.RGBA
	Active      color.RGBA
	ActiveLabel string
	TouchSlop   float64
}

func New(opts Options) *Model {
	style := opts.Style
	style.TextSize = TextSize
	m := &Model{
		menu:      menu.New(style),
		style:     style,
		highlight: opts.Highlight,
		active:    opts.Active,
		taps:      monitor.NewTapLog(16),
		renderer:  lipgloss.NewRenderer(os.Stdout),
		dirty:     true,
		status:    "tap a sector",
	}
	m.menu.SetTouchSlop(opts.TouchSlop)
	m.menu.OnSectorTap = m.toggleSector
	m.menu.OnCenterTap = func() { m.toggleCenter(opts.ActiveLabel) }
	m.menu.OnInvalidate = func() { m.dirty = true }
	return m
}

func (m *Model) Menu() *menu.Menu { return m.menu }

func (m *Model) Taps() *monitor.TapLog { return m.taps }

func (m *Model) Status() string { return m.status }

// toggleSector marks sector i, or restores it when already marked.
func (m *Model) toggleSector(i int) {
	label := m.menu.Label(i)
	if m.marked[i] {
		m.menu.ClearSector(i)
	} else {
		m.menu.SetSectorLabelAndColor(i, label+markSuffix, m.highlight)
	}
	m.marked[i] = !m.marked[i]
	m.taps.AddSector(i, m.menu.DefaultLabels()[i], "mouse")
	m.status = fmt.Sprintf("sector %d %q", i, m.menu.DefaultLabels()[i])
	log.Debug("[term] %s", m.status)
}

func (m *Model) toggleCenter(activeLabel string) {
	m.running = !m.running
	if m.running {
		m.menu.SetCenterLabel(activeLabel)
		m.menu.SetCenterColor(m.active)
	} else {
		m.menu.SetCenterLabel(m.style.CenterLabel)
		m.menu.SetCenterColor(m.style.CenterColor)
	}
	m.taps.AddCenter(m.menu.Hub().Label, "mouse")
	m.status = fmt.Sprintf("hub %q", m.menu.Hub().Label)
	log.Debug("[term] %s", m.status)
}

func (m *Model) reset() {
	m.menu.ResetAllLabels()
	m.menu.SetDefaultSectorColor(m.style.SectorColor)
	m.marked = [menu.SectorCount]bool{}
	m.status = "reset"
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		for _, ev := range m.pointerEvents(tea.MouseEvent(msg)) {
			if !m.menu.HandlePointer(ev) && ev.Action == menu.PointerUp {
				m.status = "missed"
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.reset()
		case "b":
			m.menu.SetHubBorder(!m.menu.Style().HubBorder)
		case "esc":
			if m.down {
				m.down = false
				m.menu.HandlePointer(menu.PointerEvent{Action: menu.PointerCancel, Pos: m.last})
				m.status = "cancelled"
			}
		}
	}
	return m, nil
}

// pointerEvents turns a mouse event into menu pointer events. Only the left
// button presses; any release ends the press.
func (m *Model) pointerEvents(ev tea.MouseEvent) []menu.PointerEvent {
	pos := CellToPixel(ev.X, ev.Y)
	var out []menu.PointerEvent
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || m.down {
			return nil
		}
		m.down = true
		out = append(out, menu.PointerEvent{Action: menu.PointerDown, Pos: pos})
	case tea.MouseActionMotion:
		if !m.down || pos == m.last {
			return nil
		}
		out = append(out, menu.PointerEvent{Action: menu.PointerMove, Pos: pos})
	case tea.MouseActionRelease:
		if !m.down {
			return nil
		}
		m.down = false
		out = append(out, menu.PointerEvent{Action: menu.PointerUp, Pos: pos})
	}
	m.last = pos
	return out
}

func (m *Model) resize(cols, rows int) {
	m.cols, m.rows = cols, rows
	w, h := PixelSize(cols, rows-footerLines)
	if m.canvas != nil {
		m.canvas.Close()
	}
	m.canvas = raster.New(w, h)
	m.menu.Recompute(float64(w), float64(h))
}

func (m *Model) View() string {
	if m.canvas == nil {
		return "starting..."
	}
	if m.dirty {
		m.canvas.Clear()
		m.menu.Render(m.canvas)
		m.lines = renderCells(m.renderer, cells(m.canvas.Image()))
		m.dirty = false
	}

	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	state := fmt.Sprintf("%s | taps %d | slop %.0f", m.status, m.taps.Total(), m.menu.TouchSlop())
	b.WriteString(statusStyle.Render(state))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("click: tap  r: reset  b: border  esc: cancel  q: quit"))
	return b.String()
}

// Run starts the terminal host and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer func() {
		if m.canvas != nil {
			m.canvas.Close()
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
