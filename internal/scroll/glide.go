package scroll

import "time"

// GlideDuration is the length of an in-page smooth scroll.
const GlideDuration = 800 * time.Millisecond

// Glide animates the scroll offset between two positions.
type Glide struct {
	From     float64
	To       float64
	Duration time.Duration
}

// NewGlide returns a Glide from the current offset to target over GlideDuration.
func NewGlide(from, to float64) Glide {
	return Glide{From: from, To: to, Duration: GlideDuration}
}

// Offset returns the scroll position after elapsed.
func (g Glide) Offset(elapsed time.Duration) float64 {
	return g.From + (g.To-g.From)*EaseInOutCubic(g.Progress(elapsed))
}

// Progress returns the linear progress in [0,1].
func (g Glide) Progress(elapsed time.Duration) float64 {
	if g.Duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(g.Duration)
	return min(max(p, 0), 1)
}

// Done reports whether the glide has reached its target.
func (g Glide) Done(elapsed time.Duration) bool {
	return g.Progress(elapsed) >= 1
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}
