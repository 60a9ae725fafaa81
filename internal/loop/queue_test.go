package loop

import (
	"testing"
	"time"

	"lifeview/internal/core"
)

func TestTimersRunInDueOrder(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	q := NewQueue(clock)

	var order []string
	q.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	q.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	q.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	if n := q.RunTimers(); n != 0 {
		t.Fatalf("ran %d timers before any were due", n)
	}

	clock.Advance(10 * time.Millisecond)
	if n := q.RunTimers(); n != 2 {
		t.Fatalf("ran %d timers at 10ms, expected 2", n)
	}
	clock.Advance(20 * time.Millisecond)
	q.RunTimers()

	if got := len(order); got != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order %v, expected [a b c]", order)
	}
}

func TestZeroDelayTimerScheduledFromTimerRunsSameTurn(t *testing.T) {
	clock := core.NewManualClock(time.Unix(0, 0))
	q := NewQueue(clock)

	ran := 0
	q.AfterFunc(0, func() {
		ran++
		q.AfterFunc(0, func() { ran++ })
		q.AfterFunc(time.Second, func() { ran++ })
	})
	q.RunTimers()
	if ran != 2 {
		t.Fatalf("ran %d callbacks, expected 2", ran)
	}
	if timers, _ := q.pending(); timers != 1 {
		t.Fatalf("%d timers pending, expected 1", timers)
	}
	due, ok := q.NextDue()
	if !ok || !due.Equal(time.Unix(1, 0)) {
		t.Fatalf("next due %v ok=%v", due, ok)
	}
}

func TestFrameRequestedDuringFrameWaits(t *testing.T) {
	q := NewQueue(core.NewManualClock(time.Unix(0, 0)))

	frames := 0
	var again func()
	again = func() {
		frames++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	for i := 0; i < 3; i++ {
		if n := q.RunFrame(); n != 1 {
			t.Fatalf("frame %d ran %d callbacks, expected 1", i, n)
		}
	}
	if frames != 3 {
		t.Fatalf("ran %d frames, expected 3", frames)
	}
}

func TestNilCallbacksIgnored(t *testing.T) {
	q := NewQueue(nil)
	q.AfterFunc(time.Second, nil)
	q.RequestFrame(nil)
	if timers, frames := q.pending(); timers != 0 || frames != 0 {
		t.Fatalf("pending %d timers %d frames, expected none", timers, frames)
	}
	if _, ok := q.NextDue(); ok {
		t.Fatal("NextDue reported a timer on an empty queue")
	}
}
