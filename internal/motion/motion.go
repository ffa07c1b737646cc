// Package motion holds the page's small pointer and scroll effects.
package motion

import "math"

// Point is a position in CSS pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Magnetic button constants.
const (
	MagnetRadius   = 100.0
	MagnetPull     = 0.2
	MagnetHoverMag = 1.02
)

// Transform is a translate-and-scale applied to an element.
type Transform struct {
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
	Scale float64 `json:"scale"`
}

// Identity leaves an element where it is.
var Identity = Transform{Scale: 1}

// Magnet returns the offset of a magnetic button centred at center while
// the pointer is at p. Outside MagnetRadius the button rests.
func Magnet(p, center Point) Transform {
	dx, dy := p.X-center.X, p.Y-center.Y
	d := math.Hypot(dx, dy)
	if d >= MagnetRadius {
		return Identity
	}
	strength := (MagnetRadius - d) / MagnetRadius
	return Transform{
		DX:    dx * strength * MagnetPull,
		DY:    dy * strength * MagnetPull,
		Scale: MagnetHoverMag,
	}
}

// NavOffset is the navigation bar's vertical parallax for scroll offset y,
// never more than 100px up.
func NavOffset(y float64) float64 {
	return math.Max(-100, y*-0.1)
}

// EaseOutCubic decelerates to rest at t=1.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
