// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package beepplayer adapts a beep audio stream to the ringbar.Player
// interface, so a seek ring can scrub real audio files.
//
// # Pipeline
//
//	file -> decoder (mp3/wav/flac) -> beep.Ctrl -> speaker
//
// The Ctrl provides pause and resume; a callback appended after the
// stream flags end-of-media. Duration, position and seeking go through
// the decoded stream under the speaker lock.
//
// # Event pump
//
// beep mixes audio on its own goroutine, but a ringbar.SeekRing must
// only be touched from one goroutine. The bridge is Poll: hosts call it from
// their event loop, typically once per tick, and it emits ringbar
// events for everything that changed since the previous call. Handlers
// therefore always run on the host's event goroutine; the only state
// crossing goroutines is the end-of-stream flag, which is atomic.
//
// # Usage
//
//	player, err := beepplayer.Open("track.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer player.Close()
//
//	ring := ringbar.New(player)
//	defer ring.Close()
//
//	for range ticker.C {
//		player.Poll()
//		// pointer events, drawing ...
//	}
//
// The player owns the speaker: Open initializes it for the file's
// sample rate and Close clears it. One player at a time.
package beepplayer
