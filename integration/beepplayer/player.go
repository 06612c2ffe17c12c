// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package beepplayer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/samber/lo"

	"github.com/gogpu/ringbar"
)

// Common errors returned by the player.
var (
	// ErrPlayerClosed is returned when operations are attempted on a closed player.
	ErrPlayerClosed = errors.New("beepplayer: player is closed")

	// ErrUnsupportedFormat is returned for file extensions without a decoder.
	ErrUnsupportedFormat = errors.New("beepplayer: unsupported format")
)

// Player plays one audio file through the beep speaker and implements
// ringbar.Player. Control methods and Poll must run on a single event
// goroutine; the speaker mixes on its own goroutine behind beep's lock.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl

	// ended is set by the speaker goroutine when the stream drains.
	ended atomic.Bool

	subs   []subscription
	nextID int

	metaSent   bool
	endedSent  bool
	lastPos    time.Duration
	lastPaused bool

	closed bool
}

type subscription struct {
	id int
	fn func(ringbar.Event)
}

// Open decodes an audio file, initializes the speaker for its sample
// rate, and queues the stream paused. Supported extensions: .mp3, .wav,
// .flac.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("beepplayer: open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("beepplayer: decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("beepplayer: speaker init: %w", err)
	}

	p := &Player{
		streamer:   streamer,
		format:     format,
		lastPaused: true,
	}
	p.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	speaker.Play(p.sequence())

	ringbar.Logger().Debug("media opened",
		"path", path,
		"duration", format.SampleRate.D(streamer.Len()),
		"sampleRate", format.SampleRate)
	return p, nil
}

// sequence builds the speaker pipeline: the pausable stream followed by
// an end-of-stream callback. The callback runs on the speaker goroutine
// at the exact moment the stream drains, so it only flips the atomic.
func (p *Player) sequence() beep.Streamer {
	return beep.Seq(p.ctrl, beep.Callback(func() {
		p.ended.Store(true)
	}))
}

// Duration returns the media duration.
func (p *Player) Duration() time.Duration {
	if p.closed {
		return 0
	}
	speaker.Lock()
	n := p.streamer.Len()
	speaker.Unlock()
	return p.format.SampleRate.D(n)
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.closed {
		return 0
	}
	speaker.Lock()
	n := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(n)
}

// Seek sets the playback position, clamped to the stream's extent.
func (p *Player) Seek(position time.Duration) error {
	if p.closed {
		return ErrPlayerClosed
	}
	if position < 0 {
		position = 0
	}

	speaker.Lock()
	defer speaker.Unlock()
	n := p.format.SampleRate.N(position)
	if l := p.streamer.Len(); n > l {
		n = l
	}
	if err := p.streamer.Seek(n); err != nil {
		return fmt.Errorf("beepplayer: seek: %w", err)
	}
	return nil
}

// Play starts or resumes playback. Once the stream has drained, its
// speaker sequence is spent; Play then rewinds the stream if it still
// sits at the end and queues a fresh sequence before unpausing.
func (p *Player) Play() error {
	if p.closed {
		return ErrPlayerClosed
	}

	if p.ended.CompareAndSwap(true, false) {
		speaker.Lock()
		atEnd := p.streamer.Position() >= p.streamer.Len()
		speaker.Unlock()
		if atEnd {
			if err := p.Seek(0); err != nil {
				p.ended.Store(true)
				return err
			}
		}
		speaker.Play(p.sequence())
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause pauses playback, keeping the stream position.
func (p *Player) Pause() error {
	if p.closed {
		return ErrPlayerClosed
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Subscribe registers fn for playback events and returns its cancel
// function. Events are delivered from Poll, on the caller's goroutine.
func (p *Player) Subscribe(fn func(ringbar.Event)) (cancel func()) {
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, subscription{id: id, fn: fn})
	return func() {
		p.subs = lo.Reject(p.subs, func(s subscription, _ int) bool {
			return s.id == id
		})
	}
}

// Poll reads the player state and emits events for whatever changed
// since the last call: metadata on the first call, position advances,
// pause flips, and end-of-stream. Hosts call Poll from the goroutine
// that drives the ring's pointer events, typically once per tick;
// handlers run inline before Poll returns.
func (p *Player) Poll() {
	if p.closed {
		return
	}

	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	total := p.format.SampleRate.D(p.streamer.Len())
	paused := p.ctrl.Paused
	speaker.Unlock()

	if !p.metaSent {
		p.metaSent = true
		p.emit(ringbar.Event{Kind: ringbar.EventLoadedMetadata, Position: pos, Duration: total})
	}
	if pos != p.lastPos {
		p.lastPos = pos
		p.emit(ringbar.Event{Kind: ringbar.EventTimeUpdate, Position: pos, Duration: total})
	}
	if paused != p.lastPaused {
		p.lastPaused = paused
		kind := ringbar.EventPlay
		if paused {
			kind = ringbar.EventPause
		}
		p.emit(ringbar.Event{Kind: kind, Position: pos, Duration: total})
	}

	if p.ended.Load() {
		if !p.endedSent {
			p.endedSent = true
			p.emit(ringbar.Event{Kind: ringbar.EventEnded, Position: pos, Duration: total})
		}
	} else {
		p.endedSent = false
	}
}

func (p *Player) emit(ev ringbar.Event) {
	for _, s := range p.subs {
		s.fn(ev)
	}
}

// Close stops playback and releases the stream. Close is idempotent.
func (p *Player) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	speaker.Clear()
	if err := p.streamer.Close(); err != nil {
		return fmt.Errorf("beepplayer: close stream: %w", err)
	}
	return nil
}
