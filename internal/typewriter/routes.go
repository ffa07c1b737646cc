package typewriter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/clock"
)

// frameBuffer is how many frames a slow client may fall behind before
// frames are dropped.
const frameBuffer = 16

// Stream serves a rotator's frames as server-sent events, one rotator per
// connection.
type Stream struct {
	Phrases []string
	Timing  Timing
	Clock   clock.Clock
	Logger  *zap.Logger
}

// RegisterRoutes mounts the hero typewriter stream as server-sent events
// and as a WebSocket.
func RegisterRoutes(r chi.Router, s *Stream) {
	r.Get("/api/hero/typewriter", s.ServeHTTP)
	r.Get("/api/hero/typewriter/ws", s.ServeWebSocket)
}

func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	rot, err := NewRotator(s.Phrases, s.Timing, s.Clock)
	if err != nil {
		// Nothing to type: the hero line stays blank.
		writeFrame(w, State{Phase: Typing})
		flusher.Flush()
		return
	}

	frames := make(chan State, frameBuffer)
	rot.OnFrame(func(st State) {
		select {
		case frames <- st:
		default:
			s.Logger.Debug("typewriter client behind, dropping frame")
		}
	})
	rot.Start()
	defer rot.Stop()

	fmt.Fprint(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case st := <-frames:
			writeFrame(w, st)
			flusher.Flush()
		}
	}
}

func writeFrame(w http.ResponseWriter, st State) {
	data, _ := json.Marshal(st)
	fmt.Fprintf(w, "event: frame\ndata: %s\n\n", data)
}
