package ringbar

import (
	"math"
	"testing"
)

func defaultMetric() *Metric {
	return Measure(DefaultRing().Path())
}

func TestMeasureTotalLength(t *testing.T) {
	m := defaultMetric()
	want := 928 + 100*math.Pi
	if got := m.TotalLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalLength() = %v, want %v", got, want)
	}
}

func TestMeasureNilPath(t *testing.T) {
	m := Measure(nil)
	if m.TotalLength() != 0 {
		t.Errorf("TotalLength() = %v, want 0", m.TotalLength())
	}
	if got := m.PointAtLength(5); got != Pt(0, 0) {
		t.Errorf("PointAtLength(5) = %v, want origin", got)
	}
	if got := m.TangentAtLength(5); got != Pt(0, 0) {
		t.Errorf("TangentAtLength(5) = %v, want zero vector", got)
	}
}

func TestMeasureDegeneratePath(t *testing.T) {
	p := Ring{Size: 360, BarWidth: 800}.Path()
	m := Measure(p)

	if m.TotalLength() != 0 {
		t.Errorf("TotalLength() = %v, want 0", m.TotalLength())
	}
	// A point path has no extent; every lookup lands on its start.
	if got := m.PointAtLength(100); got != Pt(180, 180) {
		t.Errorf("PointAtLength(100) = %v, want (180, 180)", got)
	}
}

func TestPointAtLengthEndpoints(t *testing.T) {
	m := defaultMetric()

	if got := m.PointAtLength(0); got != Pt(180, 14) {
		t.Errorf("PointAtLength(0) = %v, want (180, 14)", got)
	}
	if got := m.PointAtLength(m.TotalLength()); got != Pt(180, 14) {
		t.Errorf("PointAtLength(total) = %v, want (180, 14)", got)
	}
}

func TestPointAtLengthClamps(t *testing.T) {
	m := defaultMetric()

	if got := m.PointAtLength(-50); got != Pt(180, 14) {
		t.Errorf("PointAtLength(-50) = %v, want start (180, 14)", got)
	}
	if got := m.PointAtLength(m.TotalLength() + 50); got != Pt(180, 14) {
		t.Errorf("PointAtLength(total+50) = %v, want end (180, 14)", got)
	}
}

func TestPointAtLengthQuarters(t *testing.T) {
	m := defaultMetric()
	total := m.TotalLength()

	tests := []struct {
		name string
		l    float64
		want Point
	}{
		{name: "quarter is right edge middle", l: total / 4, want: Pt(346, 180)},
		{name: "half is bottom edge middle", l: total / 2, want: Pt(180, 346)},
		{name: "three quarters is left edge middle", l: 3 * total / 4, want: Pt(14, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.PointAtLength(tt.l)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("PointAtLength(%v) = %v, want %v", tt.l, got, tt.want)
			}
		})
	}
}

func TestPointAtLengthOnArc(t *testing.T) {
	m := defaultMetric()

	// Middle of the top-right arc: half the top edge plus half a
	// quarter turn of radius 50.
	l := 116 + 12.5*math.Pi
	want := Pt(296+50*math.Cos(-math.Pi/4), 64+50*math.Sin(-math.Pi/4))
	if got := m.PointAtLength(l); got.Distance(want) > 1e-9 {
		t.Errorf("PointAtLength(%v) = %v, want %v", l, got, want)
	}
}

func TestPointAtLengthSkipsZeroSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 0)
	p.LineTo(20, 0)
	m := Measure(p)

	tests := []struct {
		l    float64
		want Point
	}{
		{l: 5, want: Pt(5, 0)},
		{l: 10, want: Pt(10, 0)},
		{l: 15, want: Pt(15, 0)},
	}

	for _, tt := range tests {
		if got := m.PointAtLength(tt.l); got.Distance(tt.want) > 1e-10 {
			t.Errorf("PointAtLength(%v) = %v, want %v", tt.l, got, tt.want)
		}
	}
}

func TestTangentAtLengthDirections(t *testing.T) {
	m := defaultMetric()
	total := m.TotalLength()

	tests := []struct {
		name string
		l    float64
		want Point
	}{
		{name: "start heads right", l: 0, want: Pt(1, 0)},
		{name: "right edge heads down", l: total / 4, want: Pt(0, 1)},
		{name: "bottom edge heads left", l: total / 2, want: Pt(-1, 0)},
		{name: "left edge heads up", l: 3 * total / 4, want: Pt(0, -1)},
		{name: "top-right arc diagonal", l: 116 + 12.5*math.Pi, want: Pt(math.Sqrt2/2, math.Sqrt2/2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TangentAtLength(tt.l)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("TangentAtLength(%v) = %v, want %v", tt.l, got, tt.want)
			}
		})
	}
}

func TestPointAtLengthAdvances(t *testing.T) {
	m := defaultMetric()
	total := m.TotalLength()
	const n = 480
	spacing := total / n

	prev := m.PointAtLength(0)
	for i := 1; i < n; i++ {
		pt := m.PointAtLength(float64(i) / n * total)
		d := prev.Distance(pt)
		if d <= 0 {
			t.Fatalf("sample %d did not advance from %v", i, prev)
		}
		// Chord between consecutive samples never exceeds the arc
		// spacing between them.
		if d > spacing+1e-9 {
			t.Fatalf("sample %d jumped %v, spacing is %v", i, d, spacing)
		}
		prev = pt
	}
}
