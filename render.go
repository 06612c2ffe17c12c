package ringbar

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// renderStep is the arc-length spacing between outline samples when a
// span is expanded to a stroke polygon. 2px keeps the sagitta error on
// the ring's arcs well under a tenth of a pixel.
const renderStep = 2.0

// Renderer rasterizes a seek ring into an RGBA image: the full track
// band, the played span, and the hover marker, in that order. Rendering
// is CPU-only via golang.org/x/image/vector.
type Renderer struct {
	// Track is the color of the full ring band.
	Track color.Color
	// Played is the color of the played span.
	Played color.Color
	// Marker is the color of the hover marker.
	Marker color.Color
	// Background fills the image first when non-nil; nil leaves the
	// backdrop transparent.
	Background color.Color
}

// NewRenderer returns a renderer with the default palette on a
// transparent backdrop.
func NewRenderer() Renderer {
	return Renderer{
		Track:  color.NRGBA{R: 0x34, G: 0x34, B: 0x46, A: 0xff},
		Played: color.NRGBA{R: 0x7a, G: 0xa2, B: 0xf7, A: 0xff},
		Marker: color.NRGBA{R: 0xf2, G: 0xf3, B: 0xf7, A: 0xff},
	}
}

// Frame renders the ring's current state into a fresh image sized to
// its drawing surface.
func (r Renderer) Frame(s *SeekRing) *image.RGBA {
	size := int(math.Ceil(s.Ring().Size))
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	hover, hovering := s.Hover()
	r.Draw(img, s.Ring(), s.Metric(), s.Progress(), hover, hovering)
	return img
}

// Draw rasterizes a ring state into dst. The metric supplies all
// geometry; an unmeasured (nil or zero-length) metric draws only the
// background. Progress is the played fraction in [0, 1]; hover is an
// arc length, honored when hovering is true.
func (r Renderer) Draw(dst *image.RGBA, ring Ring, m *Metric, progress, hover float64, hovering bool) {
	if r.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	}
	if m == nil || m.TotalLength() <= 0 || ring.BarWidth <= 0 {
		return
	}

	total := m.TotalLength()
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	r.strokeSpan(z, dst, m, 0, total, ring.BarWidth, true, r.Track)

	progress = clamp01(progress)
	if progress >= 1 {
		r.strokeSpan(z, dst, m, 0, total, ring.BarWidth, true, r.Played)
	} else if progress > 0 {
		r.strokeSpan(z, dst, m, 0, progress*total, ring.BarWidth, false, r.Played)
	}

	if hovering {
		from := math.Max(hover-HoverMarkLength/2, 0)
		to := math.Min(hover+HoverMarkLength/2, total)
		if to > from {
			r.strokeSpan(z, dst, m, from, to, ring.BarWidth, false, r.Marker)
		}
	}
}

// strokeSpan expands the arc-length span [from, to] into a stroke
// polygon of the given width and fills it with c. A closed span covers
// the whole loop and is filled as an annulus: one offset contour
// forward, the other reversed, so the hole keeps winding zero.
func (r Renderer) strokeSpan(z *vector.Rasterizer, dst *image.RGBA, m *Metric, from, to, width float64, closed bool, c color.Color) {
	if c == nil {
		return
	}
	span := to - from
	if span <= 0 {
		return
	}

	n := int(span/renderStep) + 1
	if n < 2 {
		n = 2
	}

	hw := width / 2
	var left, right []Point
	appendOffsets := func(l float64) {
		p := m.PointAtLength(l)
		nrm := m.TangentAtLength(l).Perp()
		left = append(left, p.Add(nrm.Mul(hw)))
		right = append(right, p.Sub(nrm.Mul(hw)))
	}

	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())

	if closed {
		// The loop's last sample meets the first; skip the duplicate.
		for i := 0; i < n; i++ {
			appendOffsets(from + span*float64(i)/float64(n))
		}
		contour(z, left, false)
		contour(z, right, true)
	} else {
		for i := 0; i <= n; i++ {
			appendOffsets(from + span*float64(i)/float64(n))
		}
		z.MoveTo(float32(left[0].X), float32(left[0].Y))
		for _, p := range left[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		for i := len(right) - 1; i >= 0; i-- {
			z.LineTo(float32(right[i].X), float32(right[i].Y))
		}
		z.ClosePath()
	}

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// contour emits a closed polygon, optionally in reverse order.
func contour(z *vector.Rasterizer, pts []Point, reverse bool) {
	if len(pts) == 0 {
		return
	}
	if reverse {
		z.MoveTo(float32(pts[len(pts)-1].X), float32(pts[len(pts)-1].Y))
		for i := len(pts) - 2; i >= 0; i-- {
			z.LineTo(float32(pts[i].X), float32(pts[i].Y))
		}
	} else {
		z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	z.ClosePath()
}
