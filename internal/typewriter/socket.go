package typewriter

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket pushes the same frames as ServeHTTP as JSON text
// messages. The first message is the rotator's initial state.
func (s *Stream) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Debug("typewriter websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	rot, err := NewRotator(s.Phrases, s.Timing, s.Clock)
	if err != nil {
		closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "no phrases")
		if conn.WriteJSON(State{Phase: Typing}) == nil {
			conn.WriteMessage(websocket.CloseMessage, closing) //nolint:errcheck
		}
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

	if err := conn.WriteJSON(rot.State()); err != nil {
		return
	}

	// The client never sends anything; reading detects the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.Logger.Debug("typewriter websocket read", zap.Error(err))
				}
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case st := <-frames:
			if err := conn.WriteJSON(st); err != nil {
				return
			}
		}
	}
}
