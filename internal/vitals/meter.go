// Package vitals measures and records page performance: frame rate, load
// time and memory use.
package vitals

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/27piyush27/folio/internal/clock"
)

// Window is the shortest span a frame-rate reading covers.
const Window = time.Second

// MemoryInterval is how often memory use is sampled.
const MemoryInterval = 5 * time.Second

// Meter counts rendered frames and reports frames per second once per
// Window.
type Meter struct {
	clk clock.Clock

	mu     sync.Mutex
	frames int
	since  time.Time
	fps    int
}

// NewMeter starts a meter at the clock's current time.
func NewMeter(clk clock.Clock) *Meter {
	return &Meter{clk: clk, since: clk.Now()}
}

// Frame records one rendered frame. It reports whether a new reading was
// produced.
func (m *Meter) Frame() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frames++
	elapsed := m.clk.Now().Sub(m.since)
	if elapsed < Window {
		return false
	}
	m.fps = int(math.Round(float64(m.frames) * float64(time.Second) / float64(elapsed)))
	m.frames = 0
	m.since = m.clk.Now()
	return true
}

// FPS returns the latest reading, zero before the first full window.
func (m *Meter) FPS() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps
}

// HeapMB reports the process's live heap in megabytes.
func HeapMB() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return float64(ms.HeapAlloc) / (1 << 20)
}
