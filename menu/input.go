package menu

import "floatmenu/log"

type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

type PointerEvent struct {
	Action PointerAction
	Pos    Point
}

type TouchState int

const (
	Idle TouchState = iota
	Pressed
	Dragging
)

func (s TouchState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// touchSession lives from a pointer-down to the matching up or cancel.
type touchSession struct {
	state TouchState
	down  Point
}

func (m *Menu) TouchState() TouchState { return m.touch.state }

func (m *Menu) TouchSlop() float64 { return m.slop }

// SetTouchSlop sets how far a pointer may travel before a press becomes a
// drag. A non-positive value restores DefaultTouchSlop.
func (m *Menu) SetTouchSlop(slop float64) {
	if slop <= 0 {
		slop = DefaultTouchSlop
	}
	m.slop = slop
}

// HandlePointer feeds one pointer event through the tap/drag state machine
// and reports whether the menu consumed it. A tap released outside the ring
// is not consumed, so the host may apply its own click handling.
func (m *Menu) HandlePointer(ev PointerEvent) bool {
	switch ev.Action {
	case PointerDown:
		m.touch = touchSession{state: Pressed, down: ev.Pos}
		return true

	case PointerMove:
		switch m.touch.state {
		case Pressed:
			if ev.Pos.Dist(m.touch.down) > m.slop {
				m.touch.state = Dragging
				log.Debug("[menu] drag started at (%.0f,%.0f)", ev.Pos.X, ev.Pos.Y)
			}
			return true
		case Dragging:
			return true
		}
		return false

	case PointerUp:
		state := m.touch.state
		m.touch = touchSession{}
		switch state {
		case Dragging:
			return true
		case Pressed:
			return m.dispatch(m.layout.HitTest(ev.Pos))
		}
		return false

	case PointerCancel:
		m.touch = touchSession{}
		return true
	}
	return false
}

func (m *Menu) dispatch(h Hit) bool {
	switch h.Kind {
	case HitCenter:
		log.Debug("[menu] center tapped")
		if m.OnCenterTap != nil {
			m.OnCenterTap()
		}
		return true
	case HitSector:
		log.Debug("[menu] sector %d tapped", h.Sector)
		if m.OnSectorTap != nil {
			m.OnSectorTap(h.Sector)
		}
		return true
	}
	return false
}
