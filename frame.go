package ringbar

// FrameScheduler defers a callback to the host's next rendering frame.
// The seek ring uses it to measure a rebuilt path one frame after the
// rebuild, so hosts that lay geometry out asynchronously measure settled
// geometry. The returned cancel function must prevent the callback from
// running if invoked first; canceling after the callback ran is a no-op.
//
// Schedule and the scheduled callbacks are part of the ring's
// single-goroutine event discipline: hosts must run callbacks on the
// same goroutine that delivers pointer and playback events.
type FrameScheduler interface {
	Schedule(fn func()) (cancel func())
}

// immediateFrames runs callbacks synchronously. It is the default
// scheduler: the in-process geometry needs no layout pass, so measuring
// in the same frame is exact.
type immediateFrames struct{}

func (immediateFrames) Schedule(fn func()) (cancel func()) {
	fn()
	return func() {}
}

// frameTask is one scheduled callback. Cancel clears fn in place, so a
// cancel arriving after Flush discarded the queue is still a no-op.
type frameTask struct {
	fn func()
}

// FrameQueue is a FrameScheduler for frame-driven hosts: callbacks
// queue until the host calls Flush, typically once per rendering tick.
// Not safe for concurrent use; like the ring itself it belongs to one
// event goroutine.
type FrameQueue struct {
	tasks []*frameTask
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// Schedule queues fn for the next Flush and returns a cancel function.
func (q *FrameQueue) Schedule(fn func()) (cancel func()) {
	t := &frameTask{fn: fn}
	q.tasks = append(q.tasks, t)
	return func() {
		t.fn = nil
	}
}

// Flush runs all pending callbacks in schedule order and clears the
// queue. Callbacks scheduled during Flush run on the next Flush.
func (q *FrameQueue) Flush() {
	pending := q.tasks
	q.tasks = nil
	for _, t := range pending {
		if t.fn != nil {
			t.fn()
		}
	}
}

// Len returns the number of scheduled, not yet canceled callbacks.
func (q *FrameQueue) Len() int {
	n := 0
	for _, t := range q.tasks {
		if t.fn != nil {
			n++
		}
	}
	return n
}
