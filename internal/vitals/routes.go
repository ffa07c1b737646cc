package vitals

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/metrics"
)

// RegisterRoutes mounts the vitals API.
func RegisterRoutes(r chi.Router, store *Store, m *metrics.Metrics, logger *zap.Logger) {
	r.Route("/api/vitals", func(r chi.Router) {
		r.Post("/", handleRecord(store, m, logger))
		r.Get("/", handleRecent(store))
		r.Get("/summary", handleSummary(store))
	})
}

func handleRecord(store *Store, m *metrics.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sample Sample
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&sample); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if sample.LoadTimeMS < 0 || sample.FPS < 0 || sample.MemoryMB < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "measurements must be non-negative"})
			return
		}
		sample.ID = ""
		sample.CreatedAt = time.Time{}
		sample.UserAgent = r.UserAgent()

		if err := store.Record(r.Context(), &sample); err != nil {
			logger.Error("recording vitals", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not record sample"})
			return
		}
		if sample.LoadTimeMS > 0 {
			m.VitalsLoadTime.Observe(sample.LoadTimeMS / 1000)
		}
		if sample.FPS > 0 {
			m.VitalsFPS.Observe(float64(sample.FPS))
		}
		writeJSON(w, http.StatusCreated, sample)
	}
}

func handleRecent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		samples, err := store.Recent(r.Context(), limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if samples == nil {
			samples = []Sample{}
		}
		writeJSON(w, http.StatusOK, samples)
	}
}

func handleSummary(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := store.Summarize(r.Context(), r.URL.Query().Get("page"))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
