package motion

import (
	"math"
	"sync"
	"time"

	"github.com/27piyush27/folio/internal/clock"
)

// DefaultCountDuration is how long a stat takes to count up.
const DefaultCountDuration = 2 * time.Second

// CountAt returns the displayed value of a counter heading to target,
// elapsed into a count of the given duration.
func CountAt(target int, elapsed, duration time.Duration) int {
	if duration <= 0 || elapsed >= duration {
		return target
	}
	p := EaseOutCubic(float64(elapsed) / float64(duration))
	return int(math.Floor(p * float64(target)))
}

// Counter animates a number from zero to Target one frame at a time.
type Counter struct {
	Target   int
	Duration time.Duration

	clk    clock.Clock
	frames clock.FrameScheduler

	mu      sync.Mutex
	start   time.Time
	value   int
	running bool
	gen     int
	onValue func(int)
}

// NewCounter creates a stopped counter.
func NewCounter(target int, duration time.Duration, clk clock.Clock, frames clock.FrameScheduler) *Counter {
	return &Counter{Target: target, Duration: duration, clk: clk, frames: frames}
}

// OnValue registers a listener for every displayed value.
func (c *Counter) OnValue(fn func(int)) {
	c.mu.Lock()
	c.onValue = fn
	c.mu.Unlock()
}

// Start begins counting from zero. Starting a running counter restarts it.
func (c *Counter) Start() {
	c.mu.Lock()
	c.gen++
	c.start = c.clk.Now()
	c.value = 0
	c.running = true
	gen := c.gen
	c.mu.Unlock()
	c.frames.RequestFrame(func() { c.frame(gen) })
}

// Stop freezes the counter at its current value.
func (c *Counter) Stop() {
	c.mu.Lock()
	c.gen++
	c.running = false
	c.mu.Unlock()
}

// Value returns the last displayed value.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Running reports whether frames are still being requested.
func (c *Counter) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Counter) frame(gen int) {
	c.mu.Lock()
	if gen != c.gen || !c.running {
		c.mu.Unlock()
		return
	}
	c.value = CountAt(c.Target, c.clk.Now().Sub(c.start), c.Duration)
	done := c.value >= c.Target
	if done {
		c.running = false
	}
	v, fn := c.value, c.onValue
	c.mu.Unlock()

	if fn != nil {
		fn(v)
	}
	if !done {
		c.frames.RequestFrame(func() { c.frame(gen) })
	}
}
