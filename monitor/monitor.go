package monitor

import (
	"fmt"
	"time"

	"floatmenu/menu"
)

type TapEvent struct {
	Time   time.Time
	Kind   menu.HitKind
	Sector int
	Label  string
	// Source is what produced the tap: "pointer" or a hotkey name.
	Source string
}

func (e TapEvent) String() string {
	stamp := e.Time.Format("15:04:05")
	if e.Kind == menu.HitCenter {
		return fmt.Sprintf("[%s] hub %q (%s)", stamp, e.Label, e.Source)
	}
	return fmt.Sprintf("[%s] sector %d %q (%s)", stamp, e.Sector, e.Label, e.Source)
}

// TapLog keeps the most recent taps, oldest first.
type TapLog struct {
	Events    []TapEvent
	MaxEvents int
	Counts    [menu.SectorCount]int
	HubCount  int

	now func() time.Time
}

func NewTapLog(max int) *TapLog {
	if max < 1 {
		max = 1
	}
	return &TapLog{
		Events:    make([]TapEvent, 0, max),
		MaxEvents: max,
		now:       time.Now,
	}
}

func (l *TapLog) AddSector(index int, label, source string) {
	if index >= 0 && index < menu.SectorCount {
		l.Counts[index]++
	}
	l.add(TapEvent{Kind: menu.HitSector, Sector: index, Label: label, Source: source})
}

func (l *TapLog) AddCenter(label, source string) {
	l.HubCount++
	l.add(TapEvent{Kind: menu.HitCenter, Label: label, Source: source})
}

func (l *TapLog) add(event TapEvent) {
	event.Time = l.now()
	l.Events = append(l.Events, event)
	if len(l.Events) > l.MaxEvents {
		copy(l.Events, l.Events[1:])
		l.Events = l.Events[:l.MaxEvents]
	}
}

// Recent returns up to n of the newest events, oldest first.
func (l *TapLog) Recent(n int) []TapEvent {
	if n <= 0 {
		return nil
	}
	start := 0
	if len(l.Events) > n {
		start = len(l.Events) - n
	}
	return append([]TapEvent(nil), l.Events[start:]...)
}

func (l *TapLog) Total() int {
	total := l.HubCount
	for _, c := range l.Counts {
		total += c
	}
	return total
}
