// Package ringbar implements an interactive ring seek bar for Go.
//
// # Overview
//
// ringbar draws a closed rounded-rectangle path around a media surface
// and makes it scrubbable: playback progress renders as a partial
// stroke along the path, and a pointer position maps to the nearest
// point on the path and from there to a playback time. The package is
// the path-geometry and pointer-projection engine; media decoding and
// clocking stay behind the Player interface, and visual styling stays
// with the host.
//
// # Quick Start
//
//	import "github.com/gogpu/ringbar"
//
//	// Attach a ring to a playback collaborator
//	ring := ringbar.New(player, ringbar.WithSize(360))
//	defer ring.Close()
//
//	// Route pointer events from the host surface
//	ring.PointerMove(ringbar.Pt(x, y))
//	ring.PointerDown(ringbar.Pt(x, y)) // projects, then seeks
//
//	// Derive render state
//	stroke := ring.ProgressStroke()
//	img := ringbar.NewRenderer().Frame(ring)
//
// # Architecture
//
// Three layers, composed top-down:
//   - Path construction: Ring, Path, PathBuilder, Segment
//   - Measurement: Metric (total length, point/tangent at length)
//   - Interaction: Projector (nearest-point scan), progress/time
//     conversions, SeekRing (event handling and playback mirroring)
//
// Rendering support is derived from the same arc-length math: dash
// descriptors (ProgressDash, HoverDash), stroke descriptors, and a CPU
// rasterizer (Renderer) built on golang.org/x/image/vector.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// # Concurrency
//
// A SeekRing is single-goroutine: pointer events, playback
// notifications, and frame callbacks all run on one event goroutine and
// run to completion. SetLogger/Logger are the only concurrency-safe
// entry points.
package ringbar

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
