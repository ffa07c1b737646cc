package motion

import (
	"sync"
	"time"

	"github.com/27piyush27/folio/internal/clock"
)

// SettleDelay is how long the pointer must rest before the follower moves.
const SettleDelay = 10 * time.Millisecond

// Cursor follows the pointer, updating only once movement pauses.
type Cursor struct {
	clk   clock.Clock
	delay time.Duration

	mu       sync.Mutex
	pending  Point
	pos      Point
	timer    clock.Timer
	stopped  bool
	onSettle func(Point)
}

// NewCursor creates a follower. A non-positive delay uses SettleDelay.
func NewCursor(clk clock.Clock, delay time.Duration) *Cursor {
	if delay <= 0 {
		delay = SettleDelay
	}
	return &Cursor{clk: clk, delay: delay}
}

// OnSettle registers the listener called with each settled position.
func (c *Cursor) OnSettle(fn func(Point)) {
	c.mu.Lock()
	c.onSettle = fn
	c.mu.Unlock()
}

// Move records a pointer position and restarts the settle timer.
func (c *Cursor) Move(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.pending = p
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clk.AfterFunc(c.delay, c.settle)
}

func (c *Cursor) settle() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.pos = c.pending
	c.timer = nil
	p, fn := c.pos, c.onSettle
	c.mu.Unlock()

	if fn != nil {
		fn(p)
	}
}

// Position returns the last settled position.
func (c *Cursor) Position() Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pos
}

// Stop cancels any pending update and ignores later moves.
func (c *Cursor) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
