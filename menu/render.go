package menu

// Render draws the menu onto s. Sectors are drawn 0 through 7, then the hub
// border (when enabled), the hub disc and the hub label. Render does not
// change the menu.
func (m *Menu) Render(s Surface) {
	l := m.layout
	outer, inner := l.Outer(), l.Inner()
	size := m.style.TextSize
	shift := baselineShift(s.Metrics(size))

	for i, sec := range m.sectors {
		start := StartAngle(i)

		s.FillWedge(outer, start, SectorSweep, sec.Color)
		s.ClearWedge(inner, start, SectorSweep)

		at := l.Center.Polar(l.LabelRadius(), start+SectorSweep/2)
		at.Y += shift
		s.DrawText(sec.Label, at, m.style.TextColor, size)

		edge := start + SectorSweep
		s.DrawLine(l.Center.Polar(l.InnerRadius, edge), l.Center.Polar(l.OuterRadius, edge),
			White, SeparatorWidth)
	}

	hub := l.HubRadius()
	if m.style.HubBorder {
		s.StrokeCircle(l.Center, hub, White, HubBorderWidth)
	}
	s.FillCircle(l.Center, hub, m.hub.Color)
	s.DrawText(m.hub.Label, Point{X: l.Center.X, Y: l.Center.Y + shift}, m.style.TextColor, size)
}

// baselineShift moves a baseline so the glyph box, not the baseline, sits
// on the anchor point.
func baselineShift(fm Metrics) float64 {
	return (fm.Ascent - fm.Descent) / 2
}
