package ringbar

// Option configures a SeekRing during creation.
//
// Example:
//
//	// Default 360px ring
//	ring := ringbar.New(player)
//
//	// Custom shape and a frame-driven measurement host
//	ring := ringbar.New(player,
//	    ringbar.WithSize(480),
//	    ringbar.WithBarWidth(16),
//	    ringbar.WithFrameScheduler(frames),
//	)
type Option func(*ringOptions)

// ringOptions holds optional configuration for SeekRing creation.
type ringOptions struct {
	ring    Ring
	samples int
	frames  FrameScheduler
}

// defaultRingOptions returns the default seek ring options.
func defaultRingOptions() ringOptions {
	return ringOptions{
		ring:    DefaultRing(),
		samples: DefaultSamples,
		frames:  immediateFrames{},
	}
}

// WithRing sets all shape parameters at once.
func WithRing(r Ring) Option {
	return func(o *ringOptions) {
		o.ring = r
	}
}

// WithSize sets the outer square side length of the drawing surface.
func WithSize(size float64) Option {
	return func(o *ringOptions) {
		o.ring.Size = size
	}
}

// WithCornerRadius sets the requested corner radius. Values beyond half
// the drawable side are clamped when the path is built.
func WithCornerRadius(radius float64) Option {
	return func(o *ringOptions) {
		o.ring.CornerRadius = radius
	}
}

// WithBarWidth sets the stroke thickness. The pointer tolerance follows
// it, floored at MinSeekTolerance.
func WithBarWidth(width float64) Option {
	return func(o *ringOptions) {
		o.ring.BarWidth = width
	}
}

// WithSamples sets the projection scan's sample count. More samples
// sharpen precision near corners at linear cost per pointer event.
func WithSamples(n int) Option {
	return func(o *ringOptions) {
		if n > 0 {
			o.samples = n
		}
	}
}

// WithFrameScheduler sets the scheduler used to defer path measurement
// to the host's next rendering frame. The default measures immediately,
// which is exact for the in-process geometry; frame-driven hosts pass a
// FrameQueue and flush it once per tick.
func WithFrameScheduler(fs FrameScheduler) Option {
	return func(o *ringOptions) {
		if fs != nil {
			o.frames = fs
		}
	}
}
