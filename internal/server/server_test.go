package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, nil, zap.NewNop())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{AllowedOrigins: []string{"*"}, AllowedHeaders: []string{"content-type", "x-client-info"}}, nil, zap.NewNop())

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "x-client-info")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(strings.ToLower(got), "x-client-info") {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "folio_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	srv := New(Config{Metrics: true}, reg, zap.NewNop())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "folio_test_total 1") {
		t.Errorf("metrics body missing counter:\n%s", w.Body.String())
	}

	srv = New(Config{Metrics: false}, reg, zap.NewNop())
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("metrics disabled: expected 404, got %d", w.Code)
	}
}

func TestTimeoutSkipsStreamingRoutes(t *testing.T) {
	srv := New(Config{RequestTimeout: time.Minute}, nil, zap.NewNop())

	deadline := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			w.Write([]byte("deadline"))
			return
		}
		w.Write([]byte("none"))
	}
	srv.Router().Get("/timed", deadline)
	srv.Streaming().Get("/stream", deadline)

	for path, want := range map[string]string{"/timed": "deadline", "/stream": "none"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Body.String() != want {
			t.Errorf("%s: got %q, want %q", path, w.Body.String(), want)
		}
	}
}

func TestRecoverer(t *testing.T) {
	srv := New(Config{}, nil, zap.NewNop())
	srv.Router().Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
