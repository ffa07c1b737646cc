package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/metrics"
)

func setupRouter() chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, metrics.NewUnregistered(), zap.NewNop())
	return r
}

func post(r chi.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactEndpointAccepts(t *testing.T) {
	w := post(setupRouter(), `{"name":"Jane","email":"jane@x.com","message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp submitResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.State != Sent {
		t.Errorf("state = %q, want %q", resp.State, Sent)
	}
}

func TestContactEndpointReportsField(t *testing.T) {
	w := post(setupRouter(), `{"name":"Jane","email":"not-an-email"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var resp submitResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Field != FieldEmail {
		t.Errorf("field = %q, want %q", resp.Field, FieldEmail)
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestContactEndpointMalformed(t *testing.T) {
	w := post(setupRouter(), `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
