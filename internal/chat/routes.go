package chat

import (
	"os"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat endpoint and its preflight.
func RegisterRoutes(r chi.Router, p *Proxy) {
	r.Post("/api/chat", p.ServeHTTP)
	r.Options("/api/chat", p.ServeHTTP)
}

func envLookup(name string) string { return os.Getenv(name) }
