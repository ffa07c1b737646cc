package scene

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEnsemble(t *testing.T) {
	s := Default(NewRand(1))

	require.Len(t, s.Shapes, 5)
	kinds := map[Kind]int{}
	for _, sh := range s.Shapes {
		kinds[sh.Kind]++
	}
	assert.Equal(t, map[Kind]int{Orb: 3, Torus: 1, Icosahedron: 1}, kinds)
	assert.Len(t, s.Lights, 4)
	assert.Equal(t, Vec3{Z: 10}, s.Camera.Position)
	assert.Equal(t, 60.0, s.Camera.FOV)
	assert.Len(t, s.Particles, ParticleCount)
}

func TestSceneIsDeterministicForSeed(t *testing.T) {
	a := Default(NewRand(42))
	b := Default(NewRand(42))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different scenes (-a +b):\n%s", diff)
	}

	c := Default(NewRand(43))
	assert.NotEqual(t, a.Particles, c.Particles)
}

func TestParticlesStayInsideCube(t *testing.T) {
	for _, p := range ParticleField(NewRand(7), 500, 25) {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			assert.True(t, c >= -12.5 && c < 12.5, "coordinate %v outside cube", c)
		}
	}
}

func TestLinkThreshold(t *testing.T) {
	nodes := []Vec3{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{10, 10, 10},
	}
	segs := Link(nodes, 4)

	// (0,0,0)-(3,0,0) is 3 apart; (0,0,0)-(0,4,0) is exactly 4 and excluded;
	// (3,0,0)-(0,4,0) is 5 apart.
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{From: nodes[0], To: nodes[1]}, segs[0])
}

func TestConnectedLinesRespectThreshold(t *testing.T) {
	for _, seg := range ConnectedLines(NewRand(3), NodeCount, NodeSpan, LinkDistance) {
		assert.Less(t, seg.From.Dist(seg.To), LinkDistance)
	}
}

func TestOrbPose(t *testing.T) {
	orb := Shape{Kind: Orb, Position: Vec3{-3.5, 1.5, -2}, Scale: 0.8}

	p0 := orb.Pose(0)
	assert.InDelta(t, 1.5+math.Sin(-3.5)*0.6, p0.Position.Y, 1e-9)
	assert.Equal(t, Vec3{}, p0.Rotation)

	p := orb.Pose(10)
	assert.InDelta(t, 2.0, p.Rotation.X, 1e-9)
	assert.InDelta(t, 1.5, p.Rotation.Z, 1e-9)
	assert.Equal(t, 0.8, p.Scale)
	assert.Equal(t, -3.5, p.Position.X)
}

func TestTorusBreathes(t *testing.T) {
	torus := Shape{Kind: Torus, Scale: 1}
	for _, tt := range []float64{0, 0.5, 1, 2, 7.3} {
		s := torus.Pose(tt).Scale
		assert.True(t, s >= 0.95-1e-9 && s <= 1.05+1e-9, "scale %v at t=%v", s, tt)
	}
}

func TestIcosahedronBobs(t *testing.T) {
	ico := Shape{Kind: Icosahedron, Position: Vec3{2.5, 2, -2.5}, Scale: 1}
	p := ico.Pose(math.Pi / 1.2) // sin(0.6t) == 1
	assert.InDelta(t, 2.4, p.Position.Y, 1e-9)
	assert.InDelta(t, 0.4*math.Pi/1.2, p.Rotation.Y, 1e-9)
}

func TestChooseFallsBack(t *testing.T) {
	s := Default(NewRand(1))

	v := Choose(SurfaceFunc(func() bool { return false }), s)
	assert.False(t, v.Live())
	assert.Equal(t, DefaultFallback, v.Fallback)

	v = Choose(nil, s)
	assert.False(t, v.Live())

	v = Choose(SurfaceFunc(func() bool { return true }), s)
	require.True(t, v.Live())
	assert.Len(t, v.Scene.Shapes, 5)
}

func TestSceneEndpoint(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/scene?seed=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var v View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	require.NotNil(t, v.Scene)
	assert.Len(t, v.Scene.Particles, ParticleCount)

	req = httptest.NewRequest(http.MethodGet, "/api/scene?webgl=0", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	v = View{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	assert.Nil(t, v.Scene)
	assert.NotEmpty(t, v.Fallback.Gradient)

	req = httptest.NewRequest(http.MethodGet, "/api/scene?seed=abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPosesEndpoint(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/scene/poses?t=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp posesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Shapes, 5)
	assert.InDelta(t, 0.3, resp.Particles.Y, 1e-9)
	assert.InDelta(t, 0.2, resp.Lines.Y, 1e-9)
}
