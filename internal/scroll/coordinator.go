// Package scroll tracks which page section is in view and which elements
// have been revealed, measuring at most once per display frame.
package scroll

import (
	"sync"

	"github.com/27piyush27/folio/internal/clock"
)

const (
	// ActiveRatio is the visible fraction a section must exceed to become active.
	ActiveRatio = 0.5
	// RevealLine is the fraction of the viewport height an element's top
	// edge must cross to be revealed.
	RevealLine = 0.8
	// RootMargin shrinks the observed viewport at the top and bottom.
	RootMargin = 50.0
)

// Rect is an element's vertical extent in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the document offset of the element's bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Layout resolves element ids to their current bounds. ok is false when the
// element is not mounted.
type Layout interface {
	Bounds(id string) (r Rect, ok bool)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(id string) (Rect, bool)

func (f LayoutFunc) Bounds(id string) (Rect, bool) { return f(id) }

// Section is the coordinator's view of one navigable section.
type Section struct {
	ID         string `json:"id"`
	Active     bool   `json:"active"`
	AnimatedIn bool   `json:"animated_in"`
}

// Coordinator derives the active section and one-shot reveals from the
// scroll offset. It is safe for concurrent use.
type Coordinator struct {
	// OnActive is called after the active section changes.
	OnActive func(id string)
	// OnReveal is called once per element, the first time it is revealed.
	OnReveal func(id string)

	frames   clock.FrameScheduler
	layout   Layout
	sections []string

	mu       sync.Mutex
	targets  []string
	revealed map[string]bool
	active   string
	scrollY  float64
	viewport float64
	ticking  bool
	measured int
}

// New returns a Coordinator over the given section ids, in document order.
// The first id starts active.
func New(sectionIDs []string, layout Layout, viewportHeight float64, frames clock.FrameScheduler) *Coordinator {
	c := &Coordinator{
		frames:   frames,
		layout:   layout,
		sections: append([]string(nil), sectionIDs...),
		targets:  append([]string(nil), sectionIDs...),
		revealed: make(map[string]bool),
		viewport: viewportHeight,
	}
	if len(sectionIDs) > 0 {
		c.active = sectionIDs[0]
	}
	return c
}

// Track registers reveal-only elements that are not navigation sections.
func (c *Coordinator) Track(ids ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		if !contains(c.targets, id) {
			c.targets = append(c.targets, id)
		}
	}
}

// OnScroll records a new scroll offset. Measurement happens on the next
// frame; further events before then are coalesced into it.
func (c *Coordinator) OnScroll(y float64) {
	c.mu.Lock()
	c.scrollY = y
	if c.ticking {
		c.mu.Unlock()
		return
	}
	c.ticking = true
	c.mu.Unlock()
	c.frames.RequestFrame(c.frame)
}

// Resize updates the viewport height and schedules a measurement.
func (c *Coordinator) Resize(height float64) {
	c.mu.Lock()
	c.viewport = height
	y := c.scrollY
	c.mu.Unlock()
	c.OnScroll(y)
}

// Refresh schedules a measurement at the current offset, as done once on mount.
func (c *Coordinator) Refresh() {
	c.mu.Lock()
	y := c.scrollY
	c.mu.Unlock()
	c.OnScroll(y)
}

// Active returns the id of the active section.
func (c *Coordinator) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Revealed reports whether the element has animated in.
func (c *Coordinator) Revealed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed[id]
}

// Measurements returns how many frames have been measured.
func (c *Coordinator) Measurements() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.measured
}

// Sections returns a snapshot of every section in document order.
func (c *Coordinator) Sections() []Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Section, len(c.sections))
	for i, id := range c.sections {
		out[i] = Section{ID: id, Active: id == c.active, AnimatedIn: c.revealed[id]}
	}
	return out
}

func (c *Coordinator) frame() {
	c.mu.Lock()
	c.ticking = false
	c.measured++
	y, vh := c.scrollY, c.viewport

	prev := c.active
	if id, ok := c.firstVisible(y, vh); ok {
		c.active = id
	}
	changed := c.active != prev
	active := c.active

	var newly []string
	for _, id := range c.targets {
		if c.revealed[id] {
			continue
		}
		r, ok := c.layout.Bounds(id)
		if !ok {
			continue
		}
		if r.Top-y < vh*RevealLine {
			c.revealed[id] = true
			newly = append(newly, id)
		}
	}
	onActive, onReveal := c.OnActive, c.OnReveal
	c.mu.Unlock()

	if changed && onActive != nil {
		onActive(active)
	}
	if onReveal != nil {
		for _, id := range newly {
			onReveal(id)
		}
	}
}

// firstVisible returns the first section whose visible ratio exceeds
// ActiveRatio. Callers hold c.mu.
func (c *Coordinator) firstVisible(y, vh float64) (string, bool) {
	for _, id := range c.sections {
		r, ok := c.layout.Bounds(id)
		if !ok {
			continue
		}
		if VisibleRatio(r, y, vh) > ActiveRatio {
			return id, true
		}
	}
	return "", false
}

// VisibleRatio returns the fraction of r inside the viewport at offset y,
// after shrinking the viewport by RootMargin at both ends.
func VisibleRatio(r Rect, y, viewportHeight float64) float64 {
	if r.Height <= 0 {
		return 0
	}
	top := max(r.Top, y+RootMargin)
	bottom := min(r.Bottom(), y+viewportHeight-RootMargin)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / r.Height
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
