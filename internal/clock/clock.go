// Package clock abstracts wall-clock time and timers so the page's
// timer-driven state machines can be stepped deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock tells time and schedules callbacks.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FrameScheduler runs work on the next display-refresh tick, the
// equivalent of a browser's request-animation-frame primitive.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// DefaultFrameInterval is one tick of a 60Hz display.
const DefaultFrameInterval = time.Second / 60

// Frames schedules frame callbacks on a clock at a fixed interval.
type Frames struct {
	clk      Clock
	interval time.Duration

	mu      sync.Mutex
	pending map[*frameTimer]struct{}
	stopped bool
}

type frameTimer struct{ t Timer }

// NewFrames returns a FrameScheduler firing interval after each request.
// A non-positive interval uses DefaultFrameInterval.
func NewFrames(clk Clock, interval time.Duration) *Frames {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Frames{clk: clk, interval: interval, pending: make(map[*frameTimer]struct{})}
}

// RequestFrame schedules fn for the next frame. Requests made after Stop
// are dropped.
func (f *Frames) RequestFrame(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	ft := &frameTimer{}
	ft.t = f.clk.AfterFunc(f.interval, func() {
		f.mu.Lock()
		_, live := f.pending[ft]
		delete(f.pending, ft)
		f.mu.Unlock()
		if live {
			fn()
		}
	})
	f.pending[ft] = struct{}{}
}

// Stop cancels every pending frame.
func (f *Frames) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	for ft := range f.pending {
		ft.t.Stop()
		delete(f.pending, ft)
	}
}
