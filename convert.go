package ringbar

import "time"

// SeekEndGuard is subtracted from the duration when converting progress
// to a playback position, so a seek can never land exactly on
// end-of-media and immediately trip an ended transition.
const SeekEndGuard = 10 * time.Millisecond

// ProgressAtLength converts an arc length along the path to normalized
// progress in [0, 1]. Returns 0 when the total length is not positive
// (unmeasured or degenerate path).
func ProgressAtLength(l, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return clamp01(l / total)
}

// ProgressForTime converts a playback position to normalized progress
// in [0, 1]. Returns 0 when the duration is unknown (zero before
// metadata loads) or not positive.
func ProgressForTime(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return clamp01(float64(position) / float64(duration))
}

// TimeForProgress converts normalized progress to a playback position,
// clamped to [0, duration-SeekEndGuard]. Durations shorter than the
// guard always map to position 0.
func TimeForProgress(progress float64, duration time.Duration) time.Duration {
	if duration <= 0 {
		return 0
	}
	limit := duration - SeekEndGuard
	if limit < 0 {
		limit = 0
	}
	t := time.Duration(clamp01(progress) * float64(duration))
	if t > limit {
		t = limit
	}
	return t
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
