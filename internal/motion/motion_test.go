package motion

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/27piyush27/folio/internal/clock"
)

func TestMagnet(t *testing.T) {
	center := Point{100, 100}

	assert.Equal(t, Identity, Magnet(Point{300, 100}, center))
	assert.Equal(t, Identity, Magnet(Point{200, 100}, center), "exactly at the radius rests")

	tr := Magnet(Point{150, 100}, center)
	// d=50, strength=0.5, dx=50*0.5*0.2
	assert.InDelta(t, 5.0, tr.DX, 1e-9)
	assert.InDelta(t, 0.0, tr.DY, 1e-9)
	assert.Equal(t, MagnetHoverMag, tr.Scale)

	tr = Magnet(center, center)
	assert.Equal(t, Transform{Scale: MagnetHoverMag}, tr)
}

func TestNavOffset(t *testing.T) {
	assert.Equal(t, 0.0, NavOffset(0))
	assert.InDelta(t, -50.0, NavOffset(500), 1e-9)
	assert.Equal(t, -100.0, NavOffset(5000))
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.Equal(t, 1.0, EaseOutCubic(3))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-9)
}

func TestCountAt(t *testing.T) {
	assert.Equal(t, 0, CountAt(15, 0, time.Second))
	assert.Equal(t, 13, CountAt(15, 500*time.Millisecond, time.Second))
	assert.Equal(t, 15, CountAt(15, time.Second, time.Second))
	assert.Equal(t, 15, CountAt(15, 0, 0))
}

func TestCounterRunsToTarget(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	frames := clock.NewFrames(clk, 100*time.Millisecond)
	c := NewCounter(15, time.Second, clk, frames)

	var seen []int
	c.OnValue(func(v int) { seen = append(seen, v) })
	c.Start()
	require.True(t, c.Running())

	clk.Advance(2 * time.Second)

	require.NotEmpty(t, seen)
	assert.Equal(t, 15, seen[len(seen)-1])
	assert.Len(t, seen, 10, "one value per frame until the target")
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
	assert.False(t, c.Running())
	assert.Zero(t, clk.Pending())
}

func TestCounterStop(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	frames := clock.NewFrames(clk, 100*time.Millisecond)
	c := NewCounter(100, time.Second, clk, frames)

	c.Start()
	clk.Advance(300 * time.Millisecond)
	v := c.Value()
	require.Greater(t, v, 0)

	c.Stop()
	clk.Advance(time.Second)
	assert.Equal(t, v, c.Value())
	assert.False(t, c.Running())
}

func TestCursorSettles(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	cur := NewCursor(clk, 0)

	var settled []Point
	cur.OnSettle(func(p Point) { settled = append(settled, p) })

	cur.Move(Point{1, 1})
	clk.Advance(5 * time.Millisecond)
	cur.Move(Point{2, 2})
	clk.Advance(5 * time.Millisecond)
	cur.Move(Point{3, 3})
	assert.Empty(t, settled, "still moving")

	clk.Advance(SettleDelay)
	if diff := cmp.Diff([]Point{{3, 3}}, settled); diff != "" {
		t.Fatalf("settled positions (-want +got):\n%s", diff)
	}
	assert.Equal(t, Point{3, 3}, cur.Position())
}

func TestCursorStop(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	cur := NewCursor(clk, 0)

	cur.Move(Point{4, 4})
	cur.Stop()
	assert.Zero(t, clk.Pending())

	cur.Move(Point{5, 5})
	clk.Advance(time.Second)
	assert.Equal(t, Point{}, cur.Position())
}

func TestCursorRealClockTeardown(t *testing.T) {
	defer goleak.VerifyNone(t)

	cur := NewCursor(clock.Real(), time.Hour)
	cur.Move(Point{1, 1})
	cur.Stop()
}
