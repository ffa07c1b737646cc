package tui

import "sync"

// tickFrames is a frame scheduler drained by the program's tick message,
// so engine frame callbacks run on the update goroutine.
type tickFrames struct {
	mu      sync.Mutex
	pending []func()
	stopped bool
}

func (f *tickFrames) RequestFrame(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.pending = append(f.pending, fn)
}

// flush runs the callbacks requested before this frame. Callbacks that
// request another frame are queued for the next flush.
func (f *tickFrames) flush() {
	f.mu.Lock()
	fns := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (f *tickFrames) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.pending = nil
}
