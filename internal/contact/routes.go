package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/metrics"
)

// RegisterRoutes mounts the contact endpoint. Submissions are validated and
// acknowledged; the message itself is not delivered anywhere.
func RegisterRoutes(r chi.Router, m *metrics.Metrics, logger *zap.Logger) {
	r.Post("/api/contact", handleSubmit(m, logger))
}

type submitResponse struct {
	State State  `json:"state,omitempty"`
	Error string `json:"error,omitempty"`
	Field Field  `json:"field,omitempty"`
}

func handleSubmit(m *metrics.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub Submission
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&sub); err != nil {
			m.ContactSubmissions.WithLabelValues("malformed").Inc()
			writeJSON(w, http.StatusBadRequest, submitResponse{Error: "invalid request body"})
			return
		}

		if err := Validate(sub); err != nil {
			var fe *FieldError
			errors.As(err, &fe)
			m.ContactSubmissions.WithLabelValues("invalid").Inc()
			writeJSON(w, http.StatusUnprocessableEntity, submitResponse{Error: err.Error(), Field: fe.Field})
			return
		}

		m.ContactSubmissions.WithLabelValues("accepted").Inc()
		logger.Info("contact submission accepted", zap.Int("message_length", len(sub.Message)))
		writeJSON(w, http.StatusOK, submitResponse{State: Sent})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
