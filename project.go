package ringbar

import "math"

const (
	// DefaultSamples is the number of evenly spaced arc-length samples
	// used by the projection scan. 480 balances precision near corners
	// against per-event cost; the scan is linear in the sample count.
	DefaultSamples = 480

	// MinSeekTolerance is the floor for the pointer match distance in
	// pixels. Bars thinner than this still get a comfortable hover
	// target.
	MinSeekTolerance = 24.0
)

// Projector maps a pointer position to the nearest arc-length location
// on a measured path, subject to a distance tolerance. The zero value
// uses DefaultSamples and MinSeekTolerance; NewProjector derives the
// tolerance from a ring's bar width.
//
// The scan samples the path at evenly spaced arc lengths and keeps the
// first sample achieving the minimum squared distance, so results are
// deterministic for a given metric and sample count. No spatial index:
// the path is small and queries arrive at interactive rate.
type Projector struct {
	// Samples is the number of arc-length samples per scan.
	// Zero or negative falls back to DefaultSamples.
	Samples int

	// Tolerance is the maximum pixel distance for a match.
	// Zero or negative falls back to MinSeekTolerance.
	Tolerance float64
}

// NewProjector returns a projector configured for a ring: default sample
// count and the ring's tolerance (bar width, floored at
// MinSeekTolerance).
func NewProjector(r Ring) Projector {
	return Projector{
		Samples:   DefaultSamples,
		Tolerance: r.Tolerance(),
	}
}

// Project finds the arc length on the measured path nearest to pt.
// Returns false when the metric is nil or unmeasured (zero total
// length), or when the nearest sampled location is farther than the
// tolerance. Projection against an unchanged metric is deterministic:
// equal inputs yield equal results.
func (pr Projector) Project(pt Point, m *Metric) (float64, bool) {
	if m == nil {
		return 0, false
	}
	total := m.TotalLength()
	if total <= 0 {
		return 0, false
	}

	n := pr.Samples
	if n <= 0 {
		n = DefaultSamples
	}
	tol := pr.Tolerance
	if tol <= 0 {
		tol = MinSeekTolerance
	}

	bestLen := 0.0
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		l := float64(i) / float64(n) * total
		d := pt.DistanceSquared(m.PointAtLength(l))
		if d < bestDist {
			bestDist = d
			bestLen = l
		}
	}

	if math.Sqrt(bestDist) > tol {
		return 0, false
	}
	return bestLen, true
}
