package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// gatewayStub serves canned SSE completions and records request bodies.
type gatewayStub struct {
	mu     sync.Mutex
	bodies []map[string]interface{}
	auth   []string
	status int
	chunks []string
}

func (g *gatewayStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var decoded map[string]interface{}
	json.Unmarshal(body, &decoded)

	g.mu.Lock()
	g.bodies = append(g.bodies, decoded)
	g.auth = append(g.auth, r.Header.Get("Authorization"))
	g.mu.Unlock()

	if g.status != 0 && g.status != http.StatusOK {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(g.status)
		fmt.Fprint(w, `{"error":{"message":"nope","type":"limit"}}`)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	for _, c := range g.chunks {
		payload, _ := json.Marshal(map[string]interface{}{
			"id":      "x",
			"object":  "chat.completion.chunk",
			"choices": []map[string]interface{}{{"index": 0, "delta": map[string]string{"content": c}}},
		})
		fmt.Fprintf(w, "data: %s\n\n", payload)
	}
	fmt.Fprint(w, "data: [DONE]\n\n")
}

func newStub(t *testing.T, g *gatewayStub) string {
	t.Helper()
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func TestGatewayStreamsDeltas(t *testing.T) {
	stub := &gatewayStub{chunks: []string{"Hel", "lo", "!"}}
	p := NewGatewayProvider(newStub(t, stub), "secret", "google/gemini-3-flash-preview", nil)

	var got strings.Builder
	err := p.Stream(context.Background(), CompletionRequest{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(d string) error {
		got.WriteString(d)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if got.String() != "Hello!" {
		t.Errorf("got %q, want %q", got.String(), "Hello!")
	}

	if len(stub.bodies) != 1 {
		t.Fatalf("expected 1 request, got %d", len(stub.bodies))
	}
	body := stub.bodies[0]
	if body["model"] != "google/gemini-3-flash-preview" {
		t.Errorf("model = %v", body["model"])
	}
	if body["stream"] != true {
		t.Errorf("stream = %v, want true", body["stream"])
	}
	msgs := body["messages"].([]interface{})
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	first := msgs[0].(map[string]interface{})
	if first["role"] != "system" || first["content"] != "be brief" {
		t.Errorf("first message = %v", first)
	}
	if stub.auth[0] != "Bearer secret" {
		t.Errorf("authorization = %q", stub.auth[0])
	}
}

func TestGatewayModelOverride(t *testing.T) {
	stub := &gatewayStub{chunks: []string{"ok"}}
	p := NewGatewayProvider(newStub(t, stub), "k", "default-model", nil)

	err := p.Stream(context.Background(), CompletionRequest{
		Model:    "other-model",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(string) error { return nil })
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if stub.bodies[0]["model"] != "other-model" {
		t.Errorf("model = %v, want other-model", stub.bodies[0]["model"])
	}
}

func TestGatewayReportsStatus(t *testing.T) {
	stub := &gatewayStub{status: http.StatusTooManyRequests}
	p := NewGatewayProvider(newStub(t, stub), "k", "m", nil)

	err := p.Stream(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(string) error { return nil })

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", se.Status)
	}
}

func TestGatewayCallbackAborts(t *testing.T) {
	stub := &gatewayStub{chunks: []string{"a", "b", "c"}}
	p := NewGatewayProvider(newStub(t, stub), "k", "m", nil)

	stop := errors.New("stop")
	calls := 0
	err := p.Stream(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(string) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	getenv := func(string) string { return "" }
	_, err := NewProvider("http://example.invalid/v1", "m", "LOVABLE_API_KEY", getenv, nil)
	if err == nil {
		t.Fatal("expected error for missing credential")
	}
	if err.Error() != "LOVABLE_API_KEY is not configured" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFactoryCreatesGatewayProvider(t *testing.T) {
	getenv := func(k string) string {
		if k == "MY_KEY" {
			return "secret"
		}
		return ""
	}
	p, err := NewProvider("http://example.invalid/v1", "m", "MY_KEY", getenv, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "gateway" {
		t.Errorf("expected name 'gateway', got %q", p.Name())
	}
}

func TestRoles(t *testing.T) {
	if RoleSystem != "system" {
		t.Errorf("expected 'system', got %q", RoleSystem)
	}
	if RoleUser != "user" {
		t.Errorf("expected 'user', got %q", RoleUser)
	}
	if RoleAssistant != "assistant" {
		t.Errorf("expected 'assistant', got %q", RoleAssistant)
	}
}

func TestRoleUnmarshalRejectsUnknown(t *testing.T) {
	var m Message
	if err := json.Unmarshal([]byte(`{"role":"user","content":"hi"}`), &m); err != nil {
		t.Fatalf("valid role rejected: %v", err)
	}
	if m.Role != RoleUser {
		t.Errorf("role = %q", m.Role)
	}

	for _, bad := range []string{`{"role":"tool","content":"x"}`, `{"role":"","content":"x"}`, `{"role":3}`} {
		if err := json.Unmarshal([]byte(bad), &m); err == nil {
			t.Errorf("expected %s to be rejected", bad)
		}
	}
}

func TestWithSystem(t *testing.T) {
	msgs := []Message{{Role: RoleUser, Content: "hi"}}
	if got := WithSystem("", msgs); len(got) != 1 {
		t.Errorf("empty system should not add a message, got %d", len(got))
	}
	got := WithSystem("rules", msgs)
	if len(got) != 2 || got[0].Role != RoleSystem || got[1].Content != "hi" {
		t.Errorf("unexpected messages %+v", got)
	}
}
