package ringbar

import "sort"

// PlaceholderLength is the path length reported before a path has been
// measured. Non-zero so naive progress math cannot divide by zero;
// consumers must still suppress seek interactions until measurement.
const PlaceholderLength = 1.0

// Metric is an arc-length measurement of a realized path. It caches a
// cumulative length table over the path's segments so point lookups cost
// one binary search. A Metric is bound to the path it measured; rebuild
// the metric whenever the path changes.
type Metric struct {
	segs  []Segment
	cum   []float64 // cum[i] = arc length before segs[i]; cum[len(segs)] = total
	total float64
	start Point
}

// Measure computes the arc-length metric of a path. The total length is
// the exact sum of the segment lengths (lines and circular arcs measure
// exactly, with no flattening error). Measuring a nil or empty path
// yields a zero-length metric.
func Measure(p *Path) *Metric {
	if p == nil {
		return &Metric{}
	}

	segs := p.Segments()
	cum := make([]float64, len(segs)+1)
	for i, seg := range segs {
		cum[i+1] = cum[i] + seg.Length()
	}

	return &Metric{
		segs:  segs,
		cum:   cum,
		total: cum[len(cum)-1],
		start: p.Start(),
	}
}

// TotalLength returns the total arc length of the measured path.
func (m *Metric) TotalLength() float64 {
	return m.total
}

// PointAtLength returns the point at arc length l from the path start,
// walking in path order. Values outside [0, TotalLength] are clamped.
// On a zero-length metric, returns the path's start point.
func (m *Metric) PointAtLength(l float64) Point {
	if m.total <= 0 || len(m.segs) == 0 {
		return m.start
	}
	if l <= 0 {
		return m.segs[0].Start()
	}
	if l >= m.total {
		return m.segs[len(m.segs)-1].End()
	}

	i, local := m.locate(l)
	seg := m.segs[i]
	sl := seg.Length()
	if sl == 0 {
		return seg.Start()
	}
	return seg.PointAt(local / sl)
}

// TangentAtLength returns the unit direction of travel at arc length l.
// Out-of-range values clamp to the nearest path end; a zero-length
// metric has no direction and returns the zero vector.
func (m *Metric) TangentAtLength(l float64) Point {
	if m.total <= 0 || len(m.segs) == 0 {
		return Point{}
	}
	if l <= 0 {
		return m.segs[0].Tangent(0)
	}
	if l >= m.total {
		return m.segs[len(m.segs)-1].Tangent(1)
	}

	i, local := m.locate(l)
	seg := m.segs[i]
	sl := seg.Length()
	if sl == 0 {
		return seg.Tangent(0)
	}
	return seg.Tangent(local / sl)
}

// locate finds the segment containing arc length l and the local length
// within it. Only valid for 0 < l < total.
func (m *Metric) locate(l float64) (int, float64) {
	// Smallest i with cum[i] >= l; step back when strictly above so the
	// containing segment is [cum[i], cum[i+1]].
	i := sort.SearchFloat64s(m.cum, l)
	if m.cum[i] > l {
		i--
	}
	return i, l - m.cum[i]
}
