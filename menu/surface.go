package menu

import "image/color"

// Metrics are the vertical font metrics of a text size, both measured as
// positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
}

// Surface is the drawing API the menu renders onto. Angles are in degrees,
// 0 at 3 o'clock, sweeping clockwise. Wedges are pie slices of the ellipse
// inscribed in r, anchored at its center.
type Surface interface {
	FillWedge(r Rect, startAngle, sweepAngle float64, c color.RGBA)
	// ClearWedge composites the wedge to full transparency.
	ClearWedge(r Rect, startAngle, sweepAngle float64)
	FillCircle(center Point, radius float64, c color.RGBA)
	StrokeCircle(center Point, radius float64, c color.RGBA, width float64)
	DrawLine(p1, p2 Point, c color.RGBA, width float64)
	// DrawText draws s horizontally centered on pos.X with its baseline at
	// pos.Y.
	DrawText(s string, pos Point, c color.RGBA, size float64)
	Metrics(size float64) Metrics
}
