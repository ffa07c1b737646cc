// Package typewriter cycles a list of phrases, typing and deleting them one
// character at a time.
package typewriter

import (
	"errors"
	"sync"
	"time"

	"github.com/27piyush27/folio/internal/clock"
)

// ErrNoPhrases is returned by NewRotator when there is nothing to display.
var ErrNoPhrases = errors.New("typewriter: no phrases")

// Phase is the rotator's current activity.
type Phase string

const (
	Typing   Phase = "typing"
	Pausing  Phase = "pausing"
	Deleting Phase = "deleting"
)

// Timing holds the tick intervals.
type Timing struct {
	Speed       time.Duration
	DeleteSpeed time.Duration
	Pause       time.Duration
	StartDelay  time.Duration
}

// DefaultTiming matches the hero banner.
var DefaultTiming = Timing{
	Speed:       100 * time.Millisecond,
	DeleteSpeed: 50 * time.Millisecond,
	Pause:       2000 * time.Millisecond,
	StartDelay:  500 * time.Millisecond,
}

// State is the typewriter's position in the phrase cycle.
type State struct {
	Phase Phase  `json:"phase"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Step advances s by one tick and returns the new state together with the
// delay before the next tick. With no phrases it returns s unchanged and a
// zero delay.
func (s State) Step(phrases []string, t Timing) (State, time.Duration) {
	if len(phrases) == 0 {
		return s, 0
	}
	if s.Phase == "" {
		s.Phase = Typing
	}
	s.Index %= len(phrases)
	full := []rune(phrases[s.Index])
	shown := []rune(s.Text)

	switch s.Phase {
	case Typing:
		if len(shown) < len(full) {
			s.Text = string(full[:len(shown)+1])
		}
		if len([]rune(s.Text)) >= len(full) {
			s.Phase = Pausing
			return s, t.Pause
		}
		return s, t.Speed
	case Pausing:
		s.Phase = Deleting
		return s, t.DeleteSpeed
	default:
		if len(shown) > 0 {
			s.Text = string(shown[:len(shown)-1])
		}
		if s.Text == "" {
			s.Phase = Typing
			s.Index = (s.Index + 1) % len(phrases)
			return s, t.Speed
		}
		return s, t.DeleteSpeed
	}
}

// Rotator drives State on a clock. It is safe for concurrent use.
type Rotator struct {
	phrases []string
	timing  Timing
	clk     clock.Clock

	mu      sync.Mutex
	state   State
	timer   clock.Timer
	running bool
	onFrame func(State)
}

// NewRotator returns a stopped Rotator over phrases.
func NewRotator(phrases []string, timing Timing, clk clock.Clock) (*Rotator, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	return &Rotator{
		phrases: append([]string(nil), phrases...),
		timing:  timing,
		clk:     clk,
		state:   State{Phase: Typing},
	}, nil
}

// OnFrame registers fn to receive every state the rotator enters.
func (r *Rotator) OnFrame(fn func(State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onFrame = fn
}

// Start schedules the first tick after the start delay. Starting a running
// rotator does nothing.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.timer = r.clk.AfterFunc(r.timing.StartDelay, r.tick)
}

// Stop cancels the pending tick. The displayed text is kept, so Start
// resumes where the rotator left off.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Reset stops the rotator and returns it to the first phrase.
func (r *Rotator) Reset() {
	r.Stop()
	r.mu.Lock()
	r.state = State{Phase: Typing}
	r.mu.Unlock()
}

// State returns the current state.
func (r *Rotator) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Text returns the currently displayed text.
func (r *Rotator) Text() string { return r.State().Text }

func (r *Rotator) tick() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	next, delay := r.state.Step(r.phrases, r.timing)
	r.state = next
	r.timer = r.clk.AfterFunc(delay, r.tick)
	fn := r.onFrame
	r.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}
