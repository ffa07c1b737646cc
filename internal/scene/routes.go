package scene

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DefaultSeed is used when a request does not pick one.
const DefaultSeed = 27

// RegisterRoutes mounts the scene description endpoints.
func RegisterRoutes(r chi.Router) {
	r.Get("/api/scene", handleScene)
	r.Get("/api/scene/poses", handlePoses)
}

func handleScene(w http.ResponseWriter, r *http.Request) {
	seed := uint64(DefaultSeed)
	if raw := r.URL.Query().Get("seed"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "seed must be a non-negative integer"})
			return
		}
		seed = n
	}

	// The browser reports its own capability; a client asking with
	// webgl=0 gets the gradient backdrop.
	surface := SurfaceFunc(func() bool { return r.URL.Query().Get("webgl") != "0" })
	writeJSON(w, http.StatusOK, Choose(surface, Default(NewRand(seed))))
}

type posesResponse struct {
	T         float64 `json:"t"`
	Shapes    []Pose  `json:"shapes"`
	Particles Vec3    `json:"particles_rotation"`
	Lines     Vec3    `json:"lines_rotation"`
}

func handlePoses(w http.ResponseWriter, r *http.Request) {
	var t float64
	if raw := r.URL.Query().Get("t"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "t must be a number of seconds"})
			return
		}
		t = v
	}

	s := Default(NewRand(DefaultSeed))
	resp := posesResponse{
		T:         t,
		Shapes:    make([]Pose, len(s.Shapes)),
		Particles: ParticleRotation(t),
		Lines:     LinesRotation(t),
	}
	for i, sh := range s.Shapes {
		resp.Shapes[i] = sh.Pose(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
