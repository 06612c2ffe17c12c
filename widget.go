package ringbar

import "time"

// SeekRing is an interactive ring seek bar: a closed rounded-rectangle
// path whose stroke renders playback progress and whose pointer events
// scrub playback. It owns the path geometry, its measurement, the
// pointer projection, and a mirror of the playback collaborator's state.
//
// A SeekRing is single-goroutine: all pointer methods, playback event
// delivery, frame callbacks, and accessors must run on one event
// goroutine. State is owned exclusively by the instance and mutated only
// from its own handlers, so no locking is involved. Event and pointer
// handlers run to completion without suspension.
type SeekRing struct {
	ring   Ring
	proj   Projector
	frames FrameScheduler
	player Player

	path    *Path
	metric  *Metric // nil until measured
	length  float64 // PlaceholderLength until measured
	version int     // bumped per rebuild; stale frame callbacks check it

	cancelMeasure func()
	unsubscribe   func()

	hover    float64
	hovering bool

	duration time.Duration
	position time.Duration
	playing  bool
	ended    bool

	closed bool
}

// New creates a seek ring attached to a playback collaborator and builds
// its initial path. The ring subscribes to the player's notifications;
// call Close to release the subscription. Pass a nil player for a
// detached ring that projects and measures but never seeks.
func New(player Player, opts ...Option) *SeekRing {
	o := defaultRingOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &SeekRing{
		ring:   o.ring,
		frames: o.frames,
		player: player,
		proj: Projector{
			Samples:   o.samples,
			Tolerance: o.ring.Tolerance(),
		},
	}
	s.rebuild()

	if player != nil {
		s.duration = player.Duration()
		s.position = player.Position()
		s.unsubscribe = player.Subscribe(s.handleEvent)
	}

	Logger().Info("seek ring attached",
		"size", s.ring.Size,
		"radius", s.ring.CornerRadius,
		"barWidth", s.ring.BarWidth)
	return s
}

// Close tears the ring down: the playback subscription is released and
// any pending measurement is canceled. Further calls are no-ops.
func (s *SeekRing) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.cancelMeasure != nil {
		s.cancelMeasure()
		s.cancelMeasure = nil
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	Logger().Info("seek ring detached")
}

// Ring returns the current shape parameters.
func (s *SeekRing) Ring() Ring {
	return s.ring
}

// Path returns the current ring path.
func (s *SeekRing) Path() *Path {
	return s.path
}

// Metric returns the current path metric, or nil before measurement.
func (s *SeekRing) Metric() *Metric {
	return s.metric
}

// PathLength returns the measured path length, or PlaceholderLength
// while measurement is pending. The placeholder keeps progress math
// finite; seek interactions stay suppressed until measurement.
func (s *SeekRing) PathLength() float64 {
	return s.length
}

// Measured reports whether the current path has been measured.
func (s *SeekRing) Measured() bool {
	return s.metric != nil
}

// Hover returns the hover arc length and whether a pointer is currently
// hovering within tolerance of the path.
func (s *SeekRing) Hover() (float64, bool) {
	return s.hover, s.hovering
}

// Duration returns the mirrored media duration.
func (s *SeekRing) Duration() time.Duration {
	return s.duration
}

// Position returns the mirrored playback position.
func (s *SeekRing) Position() time.Duration {
	return s.position
}

// Playing reports the mirrored playing state. After a committed seek it
// optimistically reads true even if the player rejected the play call.
func (s *SeekRing) Playing() bool {
	return s.playing
}

// Ended reports whether playback has reached end-of-media.
func (s *SeekRing) Ended() bool {
	return s.ended
}

// Progress returns the played fraction in [0, 1]; 0 until metadata
// provides a duration.
func (s *SeekRing) Progress() float64 {
	return ProgressForTime(s.position, s.duration)
}

// Resize sets the surface size and rebuilds the path.
func (s *SeekRing) Resize(size float64) {
	if size == s.ring.Size {
		return
	}
	s.ring.Size = size
	s.rebuild()
}

// SetCornerRadius sets the requested corner radius and rebuilds the path.
func (s *SeekRing) SetCornerRadius(radius float64) {
	if radius == s.ring.CornerRadius {
		return
	}
	s.ring.CornerRadius = radius
	s.rebuild()
}

// SetBarWidth sets the stroke thickness, adjusts the pointer tolerance,
// and rebuilds the path.
func (s *SeekRing) SetBarWidth(width float64) {
	if width == s.ring.BarWidth {
		return
	}
	s.ring.BarWidth = width
	s.proj.Tolerance = s.ring.Tolerance()
	s.rebuild()
}

// PointerMove projects the pointer position onto the path and updates
// the hover location. Out-of-tolerance positions clear it; so does an
// unmeasured path.
func (s *SeekRing) PointerMove(pt Point) {
	s.hover, s.hovering = s.proj.Project(pt, s.metric)
}

// PointerLeave clears the hover location immediately and unconditionally.
func (s *SeekRing) PointerLeave() {
	s.hover, s.hovering = 0, false
}

// PointerDown projects the pointer position like PointerMove, then
// commits a seek at the resulting hover location. The commit therefore
// always consumes the projection of the position just pressed.
func (s *SeekRing) PointerDown(pt Point) {
	s.PointerMove(pt)
	s.commitSeek()
}

// commitSeek converts the hover location to a playback position and
// requests the player to seek there and start playing. No-op without a
// hover match, a measured path, a known duration, or a player. Control
// rejections are swallowed; the mirrored state optimistically reflects
// the requested intent.
func (s *SeekRing) commitSeek() {
	if !s.hovering || s.metric == nil || s.duration <= 0 || s.player == nil {
		return
	}

	progress := ProgressAtLength(s.hover, s.length)
	t := TimeForProgress(progress, s.duration)

	if err := s.player.Seek(t); err != nil {
		Logger().Warn("seek rejected", "position", t, "err", err)
	}
	if err := s.player.Play(); err != nil {
		Logger().Warn("play rejected", "err", err)
	}

	s.position = t
	s.playing = true
	s.ended = false
	Logger().Debug("seek committed", "position", t, "progress", progress)
}

// handleEvent mirrors playback notifications into the ring's state.
func (s *SeekRing) handleEvent(ev Event) {
	switch ev.Kind {
	case EventLoadedMetadata:
		s.duration = ev.Duration
		s.position = ev.Position
		s.ended = s.atEnd()
	case EventTimeUpdate:
		s.position = ev.Position
		if ev.Duration > 0 {
			s.duration = ev.Duration
		}
		s.ended = s.atEnd()
	case EventPlay:
		s.playing = true
		s.ended = false
	case EventPause:
		s.playing = false
	case EventEnded:
		s.playing = false
		s.ended = true
		s.position = ev.Position
	}
}

// atEnd derives the ended state: the position has reached the duration
// up to the end guard.
func (s *SeekRing) atEnd() bool {
	return s.duration > 0 && s.position >= s.duration-SeekEndGuard
}

// TrackStroke returns the stroke for the full ring track band.
func (s *SeekRing) TrackStroke() Stroke {
	return TrackStroke(s.ring.BarWidth)
}

// ProgressStroke returns the stroke covering the played fraction of the
// path, derived from the mirrored position and the measured length.
func (s *SeekRing) ProgressStroke() Stroke {
	return ProgressStroke(s.Progress(), s.length, s.ring.BarWidth)
}

// HoverStroke returns the stroke marking the hover location, and false
// when no pointer is hovering within tolerance.
func (s *SeekRing) HoverStroke() (Stroke, bool) {
	if !s.hovering {
		return Stroke{}, false
	}
	return HoverStroke(s.hover, s.length, s.ring.BarWidth), true
}

// rebuild constructs the path for the current parameters and schedules
// its measurement on the next frame. A pending measurement is canceled
// first, and the scheduled callback is keyed to the path version so a
// stale frame never installs measurements for a replaced path. Until
// the measurement lands, the length reads PlaceholderLength and seek
// interactions stay suppressed.
func (s *SeekRing) rebuild() {
	if s.cancelMeasure != nil {
		s.cancelMeasure()
		s.cancelMeasure = nil
	}

	s.path = s.ring.Path()
	s.metric = nil
	s.length = PlaceholderLength
	s.hover, s.hovering = 0, false
	s.version++

	version := s.version
	s.cancelMeasure = s.frames.Schedule(func() {
		if version != s.version || s.closed {
			return
		}
		s.cancelMeasure = nil
		s.metric = Measure(s.path)
		s.length = s.metric.TotalLength()
		Logger().Debug("path measured", "length", s.length, "version", version)
	})
}
