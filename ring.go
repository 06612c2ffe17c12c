package ringbar

import "math"

// Default shape parameters. A 360px square surface with a 50px corner
// radius and a 24px bar reads well on typical media surfaces and keeps
// the hover tolerance at its floor.
const (
	DefaultSize         = 360.0
	DefaultCornerRadius = 50.0
	DefaultBarWidth     = 24.0
)

// padMargin is the fixed inset added beyond the half stroke width so the
// stroke never clips the edge of the drawing surface.
const padMargin = 2.0

// Ring describes the shape of a seek ring: a closed rounded-rectangle
// path centered on a square drawing surface, stroked with a bar of the
// given width. The zero value is not useful; start from DefaultRing or
// the widget options.
type Ring struct {
	// Size is the outer square side length of the drawing surface.
	Size float64

	// CornerRadius is the requested corner radius. The effective radius
	// is clamped to half the drawable side, see EffectiveRadius.
	CornerRadius float64

	// BarWidth is the stroke thickness. It also drives the pointer
	// tolerance, see Tolerance.
	BarWidth float64
}

// DefaultRing returns a Ring with the default shape parameters.
func DefaultRing() Ring {
	return Ring{
		Size:         DefaultSize,
		CornerRadius: DefaultCornerRadius,
		BarWidth:     DefaultBarWidth,
	}
}

// Pad returns the inset from the surface edge to the path spine:
// half the bar width rounded up, plus a fixed margin. Clamped to half
// the size so degenerate inputs (BarWidth on the order of Size) collapse
// the path to a point instead of inverting the geometry.
func (r Ring) Pad() float64 {
	bw := math.Max(r.BarWidth, 0)
	pad := math.Ceil(bw/2) + padMargin
	if half := r.Size / 2; pad > half {
		pad = math.Max(half, 0)
	}
	return pad
}

// Side returns the drawable side length: the size minus padding on both
// sides. Zero when the parameters leave no room to draw.
func (r Ring) Side() float64 {
	side := r.Size - 2*r.Pad()
	if side < 0 {
		return 0
	}
	return side
}

// EffectiveRadius returns the corner radius actually used: the requested
// radius clamped to half the drawable side, preventing malformed arcs
// when the request exceeds what the shape can accommodate.
func (r Ring) EffectiveRadius() float64 {
	cr := math.Max(r.CornerRadius, 0)
	return math.Min(cr, r.Side()/2)
}

// Perimeter returns the analytic arc length of the ring path:
// four straight edges plus four quarter arcs. The measured length from
// Measure agrees with this up to floating point error; callers that need
// the measured value should prefer the Metric.
func (r Ring) Perimeter() float64 {
	side := r.Side()
	if side <= 0 {
		return 0
	}
	cr := r.EffectiveRadius()
	return 4*(side-2*cr) + 2*math.Pi*cr
}

// Tolerance returns the pointer match distance for this ring:
// the bar width, but never tighter than MinSeekTolerance so thin bars
// remain comfortably hoverable.
func (r Ring) Tolerance() float64 {
	return math.Max(r.BarWidth, MinSeekTolerance)
}

// Path builds the ring path: a closed rounded rectangle starting at the
// top-midpoint and proceeding clockwise. Edge order is top-right half
// edge, top-right arc, right edge, bottom-right arc, bottom edge,
// bottom-left arc, left edge, top-left arc, then the closing top-left
// half edge. Each arc sweeps a quarter turn clockwise.
//
// Path is a pure function of the ring parameters; call it again after
// any parameter change.
func (r Ring) Path() *Path {
	pad := r.Pad()
	side := r.Side()
	if side <= 0 {
		// Degenerate ring: a single point at the surface center.
		return BuildPath().MoveTo(r.Size/2, r.Size/2).Build()
	}

	cr := r.EffectiveRadius()
	x, y := pad, pad
	return BuildPath().
		MoveTo(x+side/2, y).
		LineTo(x+side-cr, y).
		ArcTo(x+side-cr, y+cr, cr, -math.Pi/2, math.Pi/2).
		LineTo(x+side, y+side-cr).
		ArcTo(x+side-cr, y+side-cr, cr, 0, math.Pi/2).
		LineTo(x+cr, y+side).
		ArcTo(x+cr, y+side-cr, cr, math.Pi/2, math.Pi/2).
		LineTo(x, y+cr).
		ArcTo(x+cr, y+cr, cr, math.Pi, math.Pi/2).
		Close().
		Build()
}
