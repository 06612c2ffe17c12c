// path_builder.go

package ringbar

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// ArcTo draws a circular arc around (cx, cy) with radius r, from angle
// start sweeping by sweep radians (positive = clockwise on screen).
func (b *PathBuilder) ArcTo(cx, cy, r, start, sweep float64) *PathBuilder {
	b.path.ArcTo(cx, cy, r, start, sweep)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path, clockwise from the top-left corner.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.MoveTo(x, y)
	b.path.LineTo(x+w, y)
	b.path.LineTo(x+w, y+h)
	b.path.LineTo(x, y+h)
	b.path.Close()
	return b
}

// RoundedRect adds a rounded rectangle to the path, clockwise from the
// start of the top edge. The radius is clamped to half the smaller
// dimension. Corners are exact quarter arcs, not Bezier approximations,
// so measured lengths along the path are exact.
func (b *PathBuilder) RoundedRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)
	r = max(r, 0)

	b.path.MoveTo(x+r, y)
	b.path.LineTo(x+w-r, y)
	b.path.ArcTo(x+w-r, y+r, r, -math.Pi/2, math.Pi/2)
	b.path.LineTo(x+w, y+h-r)
	b.path.ArcTo(x+w-r, y+h-r, r, 0, math.Pi/2)
	b.path.LineTo(x+r, y+h)
	b.path.ArcTo(x+r, y+h-r, r, math.Pi/2, math.Pi/2)
	b.path.LineTo(x, y+r)
	b.path.ArcTo(x+r, y+r, r, math.Pi, math.Pi/2)
	b.path.Close()
	return b
}

// Circle adds a full circle to the path as two half-turn arcs,
// clockwise from the rightmost point.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	b.path.MoveTo(cx+r, cy)
	b.path.ArcTo(cx, cy, r, 0, math.Pi)
	b.path.ArcTo(cx, cy, r, math.Pi, math.Pi)
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
