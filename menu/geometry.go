package menu

import "math"

const (
	SectorCount = 8
	SectorSweep = 360.0 / SectorCount

	// ArcGap is the inset between the widget bounds and the outer ring, and
	// between the inner ring and the hub.
	ArcGap = 10.0

	// InnerRatio is outerRadius / innerRadius.
	InnerRatio = 2.5

	// PreferredSizeDP is the size a host should give the widget when it has
	// no size constraint of its own.
	PreferredSizeDP = 200
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Polar returns the point at radius r and angle deg from p. Angles are in
// degrees, 0 at 3 o'clock, growing clockwise in screen space (y down).
func (p Point) Polar(r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: p.X + r*math.Cos(rad), Y: p.Y + r*math.Sin(rad)}
}

type Rect struct {
	Min, Max Point
}

// Square returns the bounding square of the circle at c with radius r.
func Square(c Point, r float64) Rect {
	return Rect{Min: Point{c.X - r, c.Y - r}, Max: Point{c.X + r, c.Y + r}}
}

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Layout is the geometry every part of the menu derives from. It is
// recomputed from the widget bounds and never edited in place.
type Layout struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
}

// Recompute derives the layout for a widget of the given pixel size.
// Degenerate sizes give non-positive radii, which hit nothing.
func Recompute(width, height float64) Layout {
	cx, cy := width/2, height/2
	outer := math.Min(cx, cy) - ArcGap
	return Layout{
		Center:      Point{X: cx, Y: cy},
		OuterRadius: outer,
		InnerRadius: outer / InnerRatio,
	}
}

// HubRadius is the radius of the center disc.
func (l Layout) HubRadius() float64 {
	return l.InnerRadius - ArcGap
}

// LabelRadius is the radius the sector labels sit on.
func (l Layout) LabelRadius() float64 {
	return (l.OuterRadius + l.InnerRadius) / 2
}

// Outer and Inner return the bounding squares of the two ring edges.
func (l Layout) Outer() Rect { return Square(l.Center, l.OuterRadius) }
func (l Layout) Inner() Rect { return Square(l.Center, l.InnerRadius) }

// StartAngle returns the leading edge of sector i in degrees. Sector 0 starts
// at 12 o'clock and the sectors run clockwise.
func StartAngle(i int) float64 {
	return float64(i)*SectorSweep - 90
}

type HitKind int

const (
	HitNone HitKind = iota
	HitCenter
	HitSector
)

func (k HitKind) String() string {
	switch k {
	case HitCenter:
		return "center"
	case HitSector:
		return "sector"
	}
	return "none"
}

type Hit struct {
	Kind   HitKind
	Sector int
}

// HitTest maps p to the hub, a sector, or nothing.
func (l Layout) HitTest(p Point) Hit {
	if l.OuterRadius <= 0 {
		return Hit{Kind: HitNone}
	}
	dist := p.Dist(l.Center)
	if dist <= l.HubRadius() {
		return Hit{Kind: HitCenter}
	}
	if dist > l.OuterRadius {
		return Hit{Kind: HitNone}
	}
	d := p.Sub(l.Center)
	angle := math.Mod(math.Atan2(d.Y, d.X)*180/math.Pi+360, 360)
	fixed := math.Mod(angle+90, 360)
	idx := int(math.Floor(fixed / SectorSweep))
	if idx < 0 {
		idx = 0
	}
	if idx >= SectorCount {
		idx = SectorCount - 1
	}
	return Hit{Kind: HitSector, Sector: idx}
}

// PreferredSize returns the preferred widget edge in pixels for a display
// density (pixels per density-independent unit).
func PreferredSize(density float64) int {
	if density <= 0 {
		density = 1
	}
	return int(PreferredSizeDP * density)
}
