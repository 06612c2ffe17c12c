package ringbar

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc around Center with the given Radius,
// starting at angle Start and sweeping by Sweep (both in radians).
// A positive sweep proceeds clockwise on screen (y-down frame).
type ArcTo struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of straight lines and circular arcs.
// Paths are built once per parameter set and treated as immutable afterwards;
// rebuild instead of mutating a path that is already being measured.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc around center (cx, cy) with radius r,
// from angle start sweeping by sweep radians. Angle 0 points right,
// angles increase clockwise on screen. The arc's own start point is
// derived from the circle geometry; callers are expected to position
// the current point there first (LineTo or MoveTo).
func (p *Path) ArcTo(cx, cy, r, start, sweep float64) {
	p.elements = append(p.elements, ArcTo{
		Center: Pt(cx, cy),
		Radius: r,
		Start:  start,
		Sweep:  sweep,
	})
	p.current = arcPoint(Pt(cx, cy), r, start+sweep)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Start returns the starting point of the current subpath.
func (p *Path) Start() Point {
	return p.start
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// arcPoint returns the point on the circle around center with the given
// radius at the given angle.
func arcPoint(center Point, r, angle float64) Point {
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}
