package ringbar

import "time"

// EventKind identifies a playback notification.
type EventKind int

const (
	// EventLoadedMetadata fires once the media's duration is known.
	EventLoadedMetadata EventKind = iota
	// EventTimeUpdate fires when the playback position advances.
	EventTimeUpdate
	// EventPlay fires when playback starts or resumes.
	EventPlay
	// EventPause fires when playback pauses.
	EventPause
	// EventEnded fires when playback reaches end-of-media.
	EventEnded
)

// String returns the event kind's name for logging.
func (k EventKind) String() string {
	switch k {
	case EventLoadedMetadata:
		return "loadedmetadata"
	case EventTimeUpdate:
		return "timeupdate"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	}
	return "unknown"
}

// Event is a playback notification. Position and Duration carry the
// player's state at the moment the event fired, so handlers never need
// to call back into the player.
type Event struct {
	Kind     EventKind
	Position time.Duration
	Duration time.Duration
}

// Player is the playback collaborator a seek ring controls. The media
// itself (decoding, clocking, output) stays behind this interface;
// the ring only reads duration and position and issues seek, play,
// and pause requests.
//
// Control calls must tolerate rejection by returning an error instead
// of panicking; the ring swallows such errors and keeps its optimistic
// state, matching a best-effort seek policy.
//
// Subscribe registers a notification handler and returns its cancel
// function. Implementations must invoke handlers on the goroutine that
// drives the ring's events (see the concurrency note on SeekRing);
// handlers run to completion without suspension.
type Player interface {
	// Duration returns the media duration, zero until metadata loads.
	Duration() time.Duration
	// Position returns the current playback position.
	Position() time.Duration
	// Seek requests the playback position be set to the given time.
	Seek(position time.Duration) error
	// Play requests playback to start or resume.
	Play() error
	// Pause requests playback to pause.
	Pause() error
	// Subscribe registers fn for playback notifications and returns a
	// cancel function that deregisters it.
	Subscribe(fn func(Event)) (cancel func())
}
