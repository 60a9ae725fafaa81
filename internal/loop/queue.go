// Package loop runs timer and animation-frame callbacks as serialized turns
// on the goroutine that drives it.
package loop

import (
	"time"

	"lifeview/internal/core"
)

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// Queue holds pending software timers and animation-frame callbacks. It is
// not safe for concurrent use; hosts call it from their own event loop.
type Queue struct {
	clock  core.Clock
	timers []timer
	frames []func()
	seq    uint64
}

// NewQueue returns a queue reading time from clock.
func NewQueue(clock core.Clock) *Queue {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Queue{clock: clock}
}

// AfterFunc schedules fn to run once d has elapsed on the queue's clock.
func (q *Queue) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	q.seq++
	q.timers = append(q.timers, timer{due: q.clock.Now().Add(d), seq: q.seq, fn: fn})
}

// RequestFrame schedules fn for the next RunFrame call.
func (q *Queue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.frames = append(q.frames, fn)
}

// RunTimers runs every timer that is due, earliest first, and returns how
// many ran. Timers scheduled while running are only considered if already
// due.
func (q *Queue) RunTimers() int {
	ran := 0
	for {
		now := q.clock.Now()
		next := -1
		for i, t := range q.timers {
			if t.due.After(now) {
				continue
			}
			if next < 0 || t.due.Before(q.timers[next].due) ||
				(t.due.Equal(q.timers[next].due) && t.seq < q.timers[next].seq) {
				next = i
			}
		}
		if next < 0 {
			return ran
		}
		fn := q.timers[next].fn
		q.timers = append(q.timers[:next], q.timers[next+1:]...)
		fn()
		ran++
	}
}

// RunFrame runs the frame callbacks requested before the call. Callbacks
// requested while running wait for the next frame.
func (q *Queue) RunFrame() int {
	frames := q.frames
	q.frames = nil
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

// NextDue returns the due time of the earliest pending timer.
func (q *Queue) NextDue() (time.Time, bool) {
	if len(q.timers) == 0 {
		return time.Time{}, false
	}
	due := q.timers[0].due
	for _, t := range q.timers[1:] {
		if t.due.Before(due) {
			due = t.due
		}
	}
	return due, true
}

// pending returns the number of timers and frame callbacks waiting.
func (q *Queue) pending() (timers, frames int) {
	return len(q.timers), len(q.frames)
}
