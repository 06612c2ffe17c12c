package ringbar

import "math"

// Segment is a measurable piece of a path. Both segment kinds are
// parameterized uniformly by arc length: PointAt(t) for t in [0, 1]
// moves at constant speed from Start to End.
type Segment interface {
	// Start returns the starting point of the segment.
	Start() Point
	// End returns the ending point of the segment.
	End() Point
	// Length returns the arc length of the segment.
	Length() float64
	// PointAt evaluates the segment at parameter t (0 to 1).
	PointAt(t float64) Point
	// Tangent returns the unit direction of travel at parameter t.
	Tangent(t float64) Point
}

// LineSegment represents a straight segment from P0 to P1.
type LineSegment struct {
	P0, P1 Point
}

// NewLineSegment creates a new line segment.
func NewLineSegment(p0, p1 Point) LineSegment {
	return LineSegment{P0: p0, P1: p1}
}

// Start returns the starting point of the line.
func (l LineSegment) Start() Point {
	return l.P0
}

// End returns the ending point of the line.
func (l LineSegment) End() Point {
	return l.P1
}

// Length returns the length of the line segment.
func (l LineSegment) Length() float64 {
	return l.P0.Distance(l.P1)
}

// PointAt evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l LineSegment) PointAt(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the unit direction of the line. The parameter is
// accepted for interface symmetry; a line's direction is constant.
func (l LineSegment) Tangent(float64) Point {
	return l.P1.Sub(l.P0).Normalize()
}

// ArcSegment represents a circular arc around Center with the given
// Radius, from StartAngle sweeping by Sweep radians. A positive sweep
// proceeds clockwise on screen (y-down frame).
type ArcSegment struct {
	Center     Point
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// NewArcSegment creates a new circular arc segment.
func NewArcSegment(center Point, radius, startAngle, sweep float64) ArcSegment {
	return ArcSegment{Center: center, Radius: radius, StartAngle: startAngle, Sweep: sweep}
}

// Start returns the starting point of the arc.
func (a ArcSegment) Start() Point {
	return arcPoint(a.Center, a.Radius, a.StartAngle)
}

// End returns the ending point of the arc.
func (a ArcSegment) End() Point {
	return arcPoint(a.Center, a.Radius, a.StartAngle+a.Sweep)
}

// Length returns the arc length: |sweep| * radius.
func (a ArcSegment) Length() float64 {
	return math.Abs(a.Sweep) * a.Radius
}

// PointAt evaluates the arc at parameter t (0 to 1). Constant angular
// velocity on a circle is constant speed, so t is arc-length uniform.
func (a ArcSegment) PointAt(t float64) Point {
	return arcPoint(a.Center, a.Radius, a.StartAngle+t*a.Sweep)
}

// Tangent returns the unit tangent direction at parameter t,
// pointing in the direction of travel.
func (a ArcSegment) Tangent(t float64) Point {
	angle := a.StartAngle + t*a.Sweep
	// Derivative of (cos, sin) is (-sin, cos); flip for negative sweep.
	tan := Pt(-math.Sin(angle), math.Cos(angle))
	if a.Sweep < 0 {
		tan = tan.Mul(-1)
	}
	return tan
}

// Segments flattens the path's element list into an ordered slice of
// measurable segments. A Close element becomes an explicit closing line
// when the current point differs from the subpath start, so the closing
// edge participates in length measurement like any other segment.
func (p *Path) Segments() []Segment {
	if p == nil || len(p.elements) == 0 {
		return nil
	}

	segs := make([]Segment, 0, len(p.elements))
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			segs = append(segs, LineSegment{P0: current, P1: e.Point})
			current = e.Point
		case ArcTo:
			arc := ArcSegment{
				Center:     e.Center,
				Radius:     e.Radius,
				StartAngle: e.Start,
				Sweep:      e.Sweep,
			}
			segs = append(segs, arc)
			current = arc.End()
		case Close:
			if current != start {
				segs = append(segs, LineSegment{P0: current, P1: start})
			}
			current = start
		}
	}

	return segs
}
