package ringbar

import (
	"errors"
	"math"
	"testing"
	"time"
)

// fakePlayer is a scripted playback collaborator for widget tests. It
// records control calls and lets a test fan events out to subscribers.
type fakePlayer struct {
	duration time.Duration
	position time.Duration

	seeks  []time.Duration
	plays  int
	pauses int

	seekErr error
	playErr error

	nextID   int
	handlers map[int]func(Event)
}

func (p *fakePlayer) Duration() time.Duration { return p.duration }
func (p *fakePlayer) Position() time.Duration { return p.position }

func (p *fakePlayer) Seek(position time.Duration) error {
	p.seeks = append(p.seeks, position)
	if p.seekErr != nil {
		return p.seekErr
	}
	p.position = position
	return nil
}

func (p *fakePlayer) Play() error {
	if p.playErr != nil {
		return p.playErr
	}
	p.plays++
	return nil
}

func (p *fakePlayer) Pause() error {
	p.pauses++
	return nil
}

func (p *fakePlayer) Subscribe(fn func(Event)) (cancel func()) {
	if p.handlers == nil {
		p.handlers = make(map[int]func(Event))
	}
	id := p.nextID
	p.nextID++
	p.handlers[id] = fn
	return func() { delete(p.handlers, id) }
}

func (p *fakePlayer) emit(ev Event) {
	for _, fn := range p.handlers {
		fn(ev)
	}
}

func ringPerimeter() float64 {
	return 928 + 100*math.Pi
}

func TestSeekRingMeasuresOnCreate(t *testing.T) {
	p := &fakePlayer{duration: 100 * time.Second, position: 10 * time.Second}
	s := New(p)
	defer s.Close()

	if !s.Measured() {
		t.Fatal("Measured() = false, want immediate measurement")
	}
	if got := s.PathLength(); math.Abs(got-ringPerimeter()) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, ringPerimeter())
	}
	if s.Duration() != 100*time.Second {
		t.Errorf("Duration() = %v, want initial player duration", s.Duration())
	}
	if s.Position() != 10*time.Second {
		t.Errorf("Position() = %v, want initial player position", s.Position())
	}
	if math.Abs(s.Progress()-0.1) > 1e-12 {
		t.Errorf("Progress() = %v, want 0.1", s.Progress())
	}
}

func TestSeekRingDetached(t *testing.T) {
	s := New(nil)
	defer s.Close()

	if !s.Measured() {
		t.Fatal("Measured() = false, want true")
	}

	// Without a player the commit path is inert.
	s.PointerDown(Pt(180, 14))
	if s.Playing() {
		t.Error("Playing() = true after detached pointer down, want false")
	}
	if _, ok := s.Hover(); !ok {
		t.Error("Hover() missed on the path start, want hit")
	}
}

func TestSeekRingOptions(t *testing.T) {
	s := New(nil, WithSize(100), WithCornerRadius(10), WithBarWidth(8))
	defer s.Close()

	want := Ring{Size: 100, CornerRadius: 10, BarWidth: 8}
	if s.Ring() != want {
		t.Errorf("Ring() = %+v, want %+v", s.Ring(), want)
	}
	if got := s.PathLength(); math.Abs(got-want.Perimeter()) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, want.Perimeter())
	}
	if s.proj.Tolerance != MinSeekTolerance {
		t.Errorf("tolerance = %v, want floor %v for a thin bar", s.proj.Tolerance, MinSeekTolerance)
	}

	s2 := New(nil, WithSamples(-5))
	defer s2.Close()
	if s2.proj.Samples != DefaultSamples {
		t.Errorf("Samples = %d after invalid option, want default %d", s2.proj.Samples, DefaultSamples)
	}
}

func TestSeekRingDeferredMeasurement(t *testing.T) {
	q := NewFrameQueue()
	p := &fakePlayer{duration: 100 * time.Second}
	s := New(p, WithFrameScheduler(q))
	defer s.Close()

	if s.Measured() {
		t.Fatal("Measured() = true before Flush, want deferred")
	}
	if s.PathLength() != PlaceholderLength {
		t.Errorf("PathLength() = %v, want placeholder %v", s.PathLength(), PlaceholderLength)
	}

	// Pointer down on the (unmeasured) path start commits nothing.
	s.PointerDown(Pt(180, 14))
	if len(p.seeks) != 0 {
		t.Errorf("seeks before measurement = %v, want none", p.seeks)
	}

	q.Flush()

	if !s.Measured() {
		t.Fatal("Measured() = false after Flush, want true")
	}
	if got := s.PathLength(); math.Abs(got-ringPerimeter()) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, ringPerimeter())
	}

	s.PointerDown(Pt(180, 14))
	if len(p.seeks) != 1 {
		t.Errorf("seeks after measurement = %v, want one", p.seeks)
	}
}

func TestSeekRingPointerMove(t *testing.T) {
	s := New(nil)
	defer s.Close()

	s.PointerMove(Pt(346, 180))
	l, ok := s.Hover()
	if !ok {
		t.Fatal("Hover() missed on right edge middle, want hit")
	}
	if want := 232 + 25*math.Pi; math.Abs(l-want) > 1e-6 {
		t.Errorf("Hover() = %v, want %v", l, want)
	}

	// Interior point clears the hover.
	s.PointerMove(Pt(180, 180))
	if _, ok := s.Hover(); ok {
		t.Error("Hover() hit at surface center, want miss")
	}

	s.PointerMove(Pt(346, 180))
	s.PointerLeave()
	if l, ok := s.Hover(); ok || l != 0 {
		t.Errorf("Hover() after PointerLeave = (%v, %v), want (0, false)", l, ok)
	}
}

func TestSeekRingPointerDown(t *testing.T) {
	p := &fakePlayer{duration: 100 * time.Second}
	s := New(p)
	defer s.Close()

	// Path start: progress zero.
	s.PointerDown(Pt(180, 14))
	if len(p.seeks) != 1 || p.seeks[0] != 0 {
		t.Fatalf("seeks = %v, want [0s]", p.seeks)
	}
	if p.plays != 1 {
		t.Errorf("plays = %d, want 1", p.plays)
	}
	if !s.Playing() {
		t.Error("Playing() = false after committed seek, want true")
	}

	// Right edge middle: a quarter of the way around, so a quarter of
	// the duration, up to the projection's sampling resolution.
	s.PointerDown(Pt(346, 180))
	if len(p.seeks) != 2 {
		t.Fatalf("seeks = %v, want two", p.seeks)
	}
	resolution := 100 * time.Second / DefaultSamples
	if diff := p.seeks[1] - 25*time.Second; diff < -resolution || diff > resolution {
		t.Errorf("seek position = %v, want 25s within %v", p.seeks[1], resolution)
	}
	if s.Position() != p.seeks[1] {
		t.Errorf("Position() = %v, want mirrored seek %v", s.Position(), p.seeks[1])
	}
}

func TestSeekRingPointerDownOffPath(t *testing.T) {
	p := &fakePlayer{duration: 100 * time.Second}
	s := New(p)
	defer s.Close()

	s.PointerDown(Pt(180, 180))
	if len(p.seeks) != 0 || p.plays != 0 {
		t.Errorf("seeks = %v, plays = %d after off-path press, want none", p.seeks, p.plays)
	}
}

func TestSeekRingPointerDownWithoutDuration(t *testing.T) {
	p := &fakePlayer{}
	s := New(p)
	defer s.Close()

	s.PointerDown(Pt(180, 14))
	if len(p.seeks) != 0 || p.plays != 0 {
		t.Errorf("seeks = %v, plays = %d with unknown duration, want none", p.seeks, p.plays)
	}
	if s.Playing() {
		t.Error("Playing() = true, want false")
	}
}

func TestSeekRingOptimisticOnRejection(t *testing.T) {
	p := &fakePlayer{
		duration: 100 * time.Second,
		seekErr:  errors.New("not seekable"),
		playErr:  errors.New("autoplay blocked"),
	}
	s := New(p)
	defer s.Close()

	s.PointerDown(Pt(346, 180))

	// Rejections are swallowed; the mirror reflects the intent.
	if !s.Playing() {
		t.Error("Playing() = false after rejected play, want optimistic true")
	}
	if s.Position() == 0 {
		t.Error("Position() = 0 after rejected seek, want requested position")
	}
	if s.Ended() {
		t.Error("Ended() = true after committed seek, want false")
	}
}

func TestSeekRingEventMirroring(t *testing.T) {
	newAttached := func() (*fakePlayer, *SeekRing) {
		p := &fakePlayer{}
		return p, New(p)
	}

	t.Run("loadedmetadata sets duration", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventLoadedMetadata, Duration: 100 * time.Second})
		if s.Duration() != 100*time.Second {
			t.Errorf("Duration() = %v, want 100s", s.Duration())
		}
	})

	t.Run("timeupdate advances position", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventLoadedMetadata, Duration: 100 * time.Second})
		p.emit(Event{Kind: EventTimeUpdate, Position: 25 * time.Second, Duration: 100 * time.Second})
		if s.Position() != 25*time.Second {
			t.Errorf("Position() = %v, want 25s", s.Position())
		}
		if math.Abs(s.Progress()-0.25) > 1e-12 {
			t.Errorf("Progress() = %v, want 0.25", s.Progress())
		}
	})

	t.Run("timeupdate without duration keeps the known one", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventLoadedMetadata, Duration: 100 * time.Second})
		p.emit(Event{Kind: EventTimeUpdate, Position: 30 * time.Second})
		if s.Duration() != 100*time.Second {
			t.Errorf("Duration() = %v, want 100s preserved", s.Duration())
		}
	})

	t.Run("play and pause toggle", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventPlay})
		if !s.Playing() {
			t.Error("Playing() = false after play event")
		}
		p.emit(Event{Kind: EventPause})
		if s.Playing() {
			t.Error("Playing() = true after pause event")
		}
	})

	t.Run("ended stops playback", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventPlay})
		p.emit(Event{Kind: EventEnded, Position: 100 * time.Second, Duration: 100 * time.Second})
		if !s.Ended() {
			t.Error("Ended() = false after ended event")
		}
		if s.Playing() {
			t.Error("Playing() = true after ended event")
		}
		if s.Position() != 100*time.Second {
			t.Errorf("Position() = %v, want 100s", s.Position())
		}
	})

	t.Run("play clears ended", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventEnded, Position: 100 * time.Second, Duration: 100 * time.Second})
		p.emit(Event{Kind: EventPlay})
		if s.Ended() {
			t.Error("Ended() = true after play event, want cleared")
		}
	})

	t.Run("timeupdate inside the end guard derives ended", func(t *testing.T) {
		p, s := newAttached()
		defer s.Close()

		p.emit(Event{Kind: EventTimeUpdate, Position: 99995 * time.Millisecond, Duration: 100 * time.Second})
		if !s.Ended() {
			t.Error("Ended() = false at 99.995s of 100s, want true")
		}

		p.emit(Event{Kind: EventTimeUpdate, Position: 99980 * time.Millisecond, Duration: 100 * time.Second})
		if s.Ended() {
			t.Error("Ended() = true at 99.98s of 100s, want false")
		}
	})
}

func TestSeekRingResize(t *testing.T) {
	s := New(nil)
	defer s.Close()

	s.PointerMove(Pt(346, 180))
	s.Resize(500)

	if _, ok := s.Hover(); ok {
		t.Error("Hover() survived a rebuild, want cleared")
	}
	want := Ring{Size: 500, CornerRadius: 50, BarWidth: 24}.Perimeter()
	if got := s.PathLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, want)
	}
}

func TestSeekRingResizeDeferred(t *testing.T) {
	q := NewFrameQueue()
	s := New(nil, WithFrameScheduler(q))
	defer s.Close()
	q.Flush()

	s.Resize(500)
	if s.Measured() {
		t.Fatal("Measured() = true right after Resize, want pending")
	}

	// A second rebuild before the flush supersedes the first; only the
	// latest geometry may land.
	s.Resize(600)
	q.Flush()

	want := Ring{Size: 600, CornerRadius: 50, BarWidth: 24}.Perimeter()
	if got := s.PathLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, want)
	}
}

func TestSeekRingSetBarWidth(t *testing.T) {
	s := New(nil)
	defer s.Close()

	s.SetBarWidth(40)
	if s.proj.Tolerance != 40 {
		t.Errorf("tolerance = %v, want 40", s.proj.Tolerance)
	}
	want := Ring{Size: 360, CornerRadius: 50, BarWidth: 40}.Perimeter()
	if got := s.PathLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, want)
	}

	s.SetBarWidth(8)
	if s.proj.Tolerance != MinSeekTolerance {
		t.Errorf("tolerance = %v, want floor %v", s.proj.Tolerance, MinSeekTolerance)
	}
}

func TestSeekRingSetCornerRadius(t *testing.T) {
	s := New(nil)
	defer s.Close()

	s.SetCornerRadius(0)
	want := Ring{Size: 360, CornerRadius: 0, BarWidth: 24}.Perimeter()
	if got := s.PathLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("PathLength() = %v, want %v", got, want)
	}
}

func TestSeekRingClose(t *testing.T) {
	p := &fakePlayer{duration: 100 * time.Second}
	s := New(p)

	if len(p.handlers) != 1 {
		t.Fatalf("handlers after New = %d, want 1", len(p.handlers))
	}

	s.Close()
	s.Close() // idempotent

	if len(p.handlers) != 0 {
		t.Errorf("handlers after Close = %d, want 0", len(p.handlers))
	}
}

func TestSeekRingCloseCancelsMeasurement(t *testing.T) {
	q := NewFrameQueue()
	s := New(nil, WithFrameScheduler(q))

	s.Close()
	q.Flush()

	if s.Measured() {
		t.Error("Measured() = true after Close, want measurement canceled")
	}
}

func TestSeekRingStrokes(t *testing.T) {
	p := &fakePlayer{}
	s := New(p)
	defer s.Close()

	p.emit(Event{Kind: EventLoadedMetadata, Duration: 100 * time.Second})
	p.emit(Event{Kind: EventTimeUpdate, Position: 25 * time.Second, Duration: 100 * time.Second})

	track := s.TrackStroke()
	if track.Width != 24 || track.IsDashed() {
		t.Errorf("TrackStroke() = %+v, want solid 24px", track)
	}

	progress := s.ProgressStroke()
	if progress.Dash == nil {
		t.Fatal("ProgressStroke().Dash = nil, want progress pattern")
	}
	if want := 0.25 * s.PathLength(); math.Abs(progress.Dash.Array[0]-want) > 1e-9 {
		t.Errorf("ProgressStroke().Dash.Array[0] = %v, want %v", progress.Dash.Array[0], want)
	}

	if _, ok := s.HoverStroke(); ok {
		t.Error("HoverStroke() = ok without hover, want false")
	}

	s.PointerMove(Pt(346, 180))
	hs, ok := s.HoverStroke()
	if !ok {
		t.Fatal("HoverStroke() missed while hovering, want stroke")
	}
	l, _ := s.Hover()
	if want := s.PathLength() - (l - HoverMarkLength/2); math.Abs(hs.Dash.Offset-want) > 1e-9 {
		t.Errorf("HoverStroke().Dash.Offset = %v, want %v", hs.Dash.Offset, want)
	}
}
