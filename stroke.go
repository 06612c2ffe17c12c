package ringbar

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Stroke describes how a host should stroke the ring path. It carries
// only what the arc-length math determines: the bar width, the cap
// shape, and an optional dash pattern selecting which part of the path
// is visible. Color and compositing stay with the host.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStroke returns a Stroke with default settings:
// a solid 1-pixel line with butt caps.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		Cap:   LineCapButt,
		Dash:  nil,
	}
}

// TrackStroke returns the solid stroke for the full ring track band.
func TrackStroke(width float64) Stroke {
	return Stroke{
		Width: width,
		Cap:   LineCapButt,
	}
}

// ProgressStroke returns the stroke for the played fraction of the
// path: the bar width with a ProgressDash covering progress*total from
// the start. Round caps keep the leading edge soft on arcs.
func ProgressStroke(progress, total, width float64) Stroke {
	return Stroke{
		Width: width,
		Cap:   LineCapRound,
		Dash:  ProgressDash(progress, total),
	}
}

// HoverStroke returns the stroke marking a hover location: a short
// HoverDash centered at the given arc length.
func HoverStroke(location, total, width float64) Stroke {
	return Stroke{
		Width: width,
		Cap:   LineCapRound,
		Dash:  HoverDash(location, total),
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashOffset returns a copy of the Stroke with the dash offset set.
// If there is no dash pattern, this has no effect.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}
