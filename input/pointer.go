package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"floatmenu/menu"
)

// PointerTracker turns per-tick polling of the mouse and the first touch
// into menu pointer events. Only one pointer is tracked at a time.
type PointerTracker struct {
	down    bool
	last    menu.Point
	touchID ebiten.TouchID
	touch   bool

	touchIDs []ebiten.TouchID
}

// Poll reads ebiten's input state for this tick.
func (t *PointerTracker) Poll() []menu.PointerEvent {
	if t.down && !ebiten.IsFocused() {
		return t.Cancel()
	}

	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	if t.touch || (!t.down && len(t.touchIDs) > 0) {
		return t.pollTouch()
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return t.Track(pressed, menu.Pt(float64(mx), float64(my)))
}

func (t *PointerTracker) pollTouch() []menu.PointerEvent {
	if !t.touch {
		t.touch = true
		t.touchID = t.touchIDs[0]
	}
	for _, id := range t.touchIDs {
		if id == t.touchID {
			x, y := ebiten.TouchPosition(id)
			return t.Track(true, menu.Pt(float64(x), float64(y)))
		}
	}
	// the tracked finger lifted
	t.touch = false
	return t.Track(false, t.last)
}

// Track advances the tracker with the pointer state of one tick.
func (t *PointerTracker) Track(pressed bool, pos menu.Point) []menu.PointerEvent {
	var evs []menu.PointerEvent
	switch {
	case pressed && !t.down:
		t.down = true
		evs = append(evs, menu.PointerEvent{Action: menu.PointerDown, Pos: pos})
	case pressed && t.down:
		if pos != t.last {
			evs = append(evs, menu.PointerEvent{Action: menu.PointerMove, Pos: pos})
		}
	case !pressed && t.down:
		t.down = false
		evs = append(evs, menu.PointerEvent{Action: menu.PointerUp, Pos: pos})
	}
	t.last = pos
	return evs
}

// Cancel ends the current press, if any, without a release.
func (t *PointerTracker) Cancel() []menu.PointerEvent {
	if !t.down {
		return nil
	}
	t.down = false
	t.touch = false
	return []menu.PointerEvent{{Action: menu.PointerCancel, Pos: t.last}}
}

func (t *PointerTracker) Down() bool { return t.down }

func (t *PointerTracker) Position() menu.Point { return t.last }
