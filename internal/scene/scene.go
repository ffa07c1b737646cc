// Package scene describes the hero's decorative 3D ensemble: animated
// primitives, a particle field and a constellation of connected points.
// Rendering is left to the client; every pose is a pure function of
// elapsed time.
package scene

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a point or rotation in scene space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Kind is a primitive's geometry.
type Kind string

const (
	Orb         Kind = "orb"
	Torus       Kind = "torus"
	Icosahedron Kind = "icosahedron"
)

// Float configures the ambient bobbing applied on top of a shape's pose.
type Float struct {
	Speed             float64 `json:"speed"`
	RotationIntensity float64 `json:"rotation_intensity"`
	FloatIntensity    float64 `json:"float_intensity"`
}

// Shape is one animated primitive.
type Shape struct {
	Kind     Kind    `json:"kind"`
	Position Vec3    `json:"position"`
	Color    string  `json:"color"`
	Scale    float64 `json:"scale"`
	Float    Float   `json:"float"`
}

// Pose is a shape's transform at an instant.
type Pose struct {
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
	Scale    float64 `json:"scale"`
}

// Pose returns the shape's transform t seconds after mount.
func (s Shape) Pose(t float64) Pose {
	p := Pose{Position: s.Position, Scale: s.Scale}
	switch s.Kind {
	case Orb:
		p.Position.Y = s.Position.Y + math.Sin(t*0.8+s.Position.X)*0.6
		p.Rotation = Vec3{X: t * 0.2, Z: t * 0.15}
	case Torus:
		p.Rotation = Vec3{X: t * 0.3, Y: t * 0.2}
		p.Scale = s.Scale * (1 + math.Sin(t*1.5)*0.05)
	case Icosahedron:
		p.Rotation = Vec3{Y: t * 0.4}
		p.Position.Y = s.Position.Y + math.Sin(t*0.6)*0.4
	}
	return p
}

// Light is a point or ambient light source.
type Light struct {
	Ambient   bool    `json:"ambient,omitempty"`
	Position  Vec3    `json:"position"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color,omitempty"`
}

// Camera is the fixed viewpoint. The scene auto-rotates around it at
// AutoRotateSpeed with zoom and pan disabled.
type Camera struct {
	Position        Vec3    `json:"position"`
	FOV             float64 `json:"fov"`
	AutoRotateSpeed float64 `json:"auto_rotate_speed"`
}

// Scene is the complete decorative ensemble.
type Scene struct {
	Camera    Camera    `json:"camera"`
	Lights    []Light   `json:"lights"`
	Shapes    []Shape   `json:"shapes"`
	Particles []Vec3    `json:"particles"`
	Segments  []Segment `json:"segments"`
}

const (
	ParticleCount = 200
	ParticleSpan  = 25.0
	NodeCount     = 30
	NodeSpan      = 12.0
	LinkDistance  = 4.0
)

// Default returns the hero ensemble with particles and connections drawn
// from rng.
func Default(rng *rand.Rand) Scene {
	return Scene{
		Camera: Camera{Position: Vec3{Z: 10}, FOV: 60, AutoRotateSpeed: 0.3},
		Lights: []Light{
			{Ambient: true, Intensity: 0.3},
			{Position: Vec3{10, 10, 10}, Intensity: 1.5, Color: "#a78bfa"},
			{Position: Vec3{-10, -5, -10}, Intensity: 0.8, Color: "#6366f1"},
			{Position: Vec3{0, -10, 5}, Intensity: 0.5, Color: "#22d3ee"},
		},
		Shapes: []Shape{
			{Kind: Orb, Position: Vec3{-3.5, 1.5, -2}, Color: "#8b5cf6", Scale: 0.8, Float: Float{1.5, 0.8, 1.5}},
			{Kind: Orb, Position: Vec3{3, -1, -1}, Color: "#06b6d4", Scale: 0.6, Float: Float{1.5, 0.8, 1.5}},
			{Kind: Orb, Position: Vec3{0, 3, -4}, Color: "#a78bfa", Scale: 1, Float: Float{1.5, 0.8, 1.5}},
			{Kind: Torus, Position: Vec3{-2, -2.5, 0.5}, Color: "#c084fc", Scale: 1, Float: Float{2, 1.2, 2}},
			{Kind: Icosahedron, Position: Vec3{2.5, 2, -2.5}, Color: "#7c3aed", Scale: 1, Float: Float{1.8, 0.6, 1.8}},
		},
		Particles: ParticleField(rng, ParticleCount, ParticleSpan),
		Segments:  ConnectedLines(rng, NodeCount, NodeSpan, LinkDistance),
	}
}

// ParticleField scatters n points uniformly in a cube of side span
// centred on the origin.
func ParticleField(rng *rand.Rand, n int, span float64) []Vec3 {
	pts := make([]Vec3, n)
	for i := range pts {
		pts[i] = randomPoint(rng, span)
	}
	return pts
}

// ParticleRotation returns the particle field's rotation t seconds after mount.
func ParticleRotation(t float64) Vec3 {
	return Vec3{X: math.Sin(t*0.02) * 0.1, Y: t * 0.03}
}

// Segment is a line drawn between two nearby nodes.
type Segment struct {
	From Vec3 `json:"from"`
	To   Vec3 `json:"to"`
}

// ConnectedLines places n nodes in a cube of side span and links every
// pair closer than threshold.
func ConnectedLines(rng *rand.Rand, n int, span, threshold float64) []Segment {
	nodes := make([]Vec3, n)
	for i := range nodes {
		nodes[i] = randomPoint(rng, span)
	}
	return Link(nodes, threshold)
}

// Link returns a segment for every pair of nodes closer than threshold,
// in index order.
func Link(nodes []Vec3, threshold float64) []Segment {
	var segs []Segment
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Dist(nodes[j]) < threshold {
				segs = append(segs, Segment{From: nodes[i], To: nodes[j]})
			}
		}
	}
	return segs
}

// LinesRotation returns the constellation's rotation t seconds after mount.
func LinesRotation(t float64) Vec3 {
	return Vec3{Y: t * 0.02}
}

func randomPoint(rng *rand.Rand, span float64) Vec3 {
	return Vec3{
		X: (rng.Float64() - 0.5) * span,
		Y: (rng.Float64() - 0.5) * span,
		Z: (rng.Float64() - 0.5) * span,
	}
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
