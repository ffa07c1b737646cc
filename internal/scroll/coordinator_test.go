package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/27piyush27/folio/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func pageLayout() LayoutFunc {
	rects := map[string]Rect{
		"home":     {Top: 0, Height: 800},
		"about":    {Top: 800, Height: 600},
		"projects": {Top: 1400, Height: 1000},
		"contact":  {Top: 2400, Height: 600},
		"stats":    {Top: 500, Height: 100},
	}
	return func(id string) (Rect, bool) {
		r, ok := rects[id]
		return r, ok
	}
}

func newCoordinator(t *testing.T, ids ...string) (*Coordinator, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(epoch)
	frames := clock.NewFrames(clk, 0)
	t.Cleanup(frames.Stop)
	if len(ids) == 0 {
		ids = []string{"home", "about", "projects", "contact"}
	}
	return New(ids, pageLayout(), 800, frames), clk
}

func scrollTo(c *Coordinator, clk *clock.Fake, y float64) {
	c.OnScroll(y)
	clk.Advance(clock.DefaultFrameInterval)
}

func TestInitialActiveIsFirstSection(t *testing.T) {
	c, _ := newCoordinator(t)
	assert.Equal(t, "home", c.Active())
	assert.Zero(t, c.Measurements())
}

func TestActiveFollowsScroll(t *testing.T) {
	c, clk := newCoordinator(t)
	var changes []string
	c.OnActive = func(id string) { changes = append(changes, id) }

	scrollTo(c, clk, 900)
	assert.Equal(t, "about", c.Active())

	scrollTo(c, clk, 1600)
	assert.Equal(t, "projects", c.Active())

	scrollTo(c, clk, 2300)
	assert.Equal(t, "contact", c.Active())

	assert.Equal(t, []string{"about", "projects", "contact"}, changes)
}

func TestActiveKeptWhenNothingQualifies(t *testing.T) {
	c, clk := newCoordinator(t)
	scrollTo(c, clk, 900)
	require.Equal(t, "about", c.Active())

	// Straddling about and projects, neither exceeds half visibility.
	scrollTo(c, clk, 1150)
	assert.Equal(t, "about", c.Active())
}

func TestScrollEventsCoalescePerFrame(t *testing.T) {
	c, clk := newCoordinator(t)
	for y := 0.0; y <= 900; y += 100 {
		c.OnScroll(y)
	}
	clk.Advance(clock.DefaultFrameInterval)

	assert.Equal(t, 1, c.Measurements())
	assert.Equal(t, "about", c.Active())

	clk.Advance(time.Second)
	assert.Equal(t, 1, c.Measurements())
}

func TestMissingSectionSkipped(t *testing.T) {
	c, clk := newCoordinator(t, "home", "skills", "about")
	scrollTo(c, clk, 900)
	assert.Equal(t, "about", c.Active())
	for _, s := range c.Sections() {
		if s.ID == "skills" {
			assert.False(t, s.Active)
			assert.False(t, s.AnimatedIn)
		}
	}
}

func TestRevealIsMonotonicAndFiresOnce(t *testing.T) {
	c, clk := newCoordinator(t)
	c.Track("stats")
	reveals := map[string]int{}
	c.OnReveal = func(id string) { reveals[id]++ }

	c.Refresh()
	clk.Advance(clock.DefaultFrameInterval)
	assert.True(t, c.Revealed("home"))
	assert.True(t, c.Revealed("stats"))
	assert.False(t, c.Revealed("about"))

	scrollTo(c, clk, 900)
	assert.True(t, c.Revealed("about"))
	assert.True(t, c.Revealed("projects"))

	scrollTo(c, clk, 0)
	scrollTo(c, clk, 950)
	for _, id := range []string{"home", "stats", "about", "projects"} {
		assert.True(t, c.Revealed(id), id)
		assert.Equal(t, 1, reveals[id], id)
	}
	assert.False(t, c.Revealed("contact"))
}

func TestAtMostOneActiveForAllOffsets(t *testing.T) {
	c, clk := newCoordinator(t)
	for y := 0.0; y <= 3000; y += 37 {
		scrollTo(c, clk, y)
		active := 0
		for _, s := range c.Sections() {
			if s.Active {
				active++
			}
		}
		require.LessOrEqual(t, active, 1, "offset %v", y)
	}
}

func TestResizeRemeasures(t *testing.T) {
	c, clk := newCoordinator(t)
	c.Resize(200)
	clk.Advance(clock.DefaultFrameInterval)
	assert.Equal(t, 1, c.Measurements())
	assert.False(t, c.Revealed("stats"))
}

func TestVisibleRatio(t *testing.T) {
	r := Rect{Top: 800, Height: 600}
	assert.InDelta(t, 0.75, VisibleRatio(r, 900, 800), 1e-9)
	assert.Zero(t, VisibleRatio(r, 0, 800))
	assert.Zero(t, VisibleRatio(Rect{Top: 10}, 0, 800))
}

func TestGlide(t *testing.T) {
	g := NewGlide(100, 900)
	assert.Equal(t, 100.0, g.Offset(0))
	assert.InDelta(t, 500.0, g.Offset(GlideDuration/2), 1e-9)
	assert.Equal(t, 900.0, g.Offset(GlideDuration))
	assert.Equal(t, 900.0, g.Offset(2*GlideDuration))
	assert.True(t, g.Done(GlideDuration))
	assert.False(t, g.Done(GlideDuration/2))
	assert.Equal(t, 1.0, Glide{From: 0, To: 1}.Progress(0))
}
