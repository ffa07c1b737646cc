// Package chat relays portfolio-assistant conversations to the inference
// gateway and streams the answer back untouched.
package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/llm"
	"github.com/27piyush27/folio/internal/metrics"
)

// AllowedHeaders is sent on every response so browser clients of the
// hosted edge function keep working.
const AllowedHeaders = "authorization, x-client-info, apikey, content-type, x-supabase-client-platform, x-supabase-client-platform-version, x-supabase-client-runtime, x-supabase-client-runtime-version"

const maxBodyBytes = 1 << 20

// Options configures a Proxy.
type Options struct {
	// BaseURL is the gateway's OpenAI-compatible root, without the
	// /chat/completions suffix.
	BaseURL   string
	Model     string
	APIKeyEnv string
	// System is prepended to every conversation.
	System string
}

// Proxy is the stateless chat endpoint.
type Proxy struct {
	opts    Options
	client  *http.Client
	getenv  func(string) string
	limiter Limiter
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// Option customises a Proxy.
type Option func(*Proxy)

// WithLimiter enables per-client rate limiting.
func WithLimiter(l Limiter) Option { return func(p *Proxy) { p.limiter = l } }

// WithHTTPClient replaces the client used to reach the gateway.
func WithHTTPClient(c *http.Client) Option { return func(p *Proxy) { p.client = c } }

// WithGetenv replaces the credential lookup.
func WithGetenv(f func(string) string) Option { return func(p *Proxy) { p.getenv = f } }

// NewProxy creates a proxy. The credential is looked up on every request.
func NewProxy(opts Options, m *metrics.Metrics, logger *zap.Logger, options ...Option) *Proxy {
	p := &Proxy{
		opts:    opts,
		client:  http.DefaultClient,
		getenv:  envLookup,
		metrics: m,
		logger:  logger,
	}
	for _, o := range options {
		o(p)
	}
	return p
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	apiKey := p.getenv(p.opts.APIKeyEnv)
	if apiKey == "" {
		p.fail(w, &credentialError{Var: p.opts.APIKeyEnv})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		p.metrics.ChatRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		p.metrics.ChatRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "messages must not be empty"})
		return
	}

	if p.limiter != nil {
		ok, err := p.limiter.Allow(r.Context(), clientKey(r))
		if err != nil {
			// Fail open when the limiter backend is unreachable.
			p.logger.Warn("rate limiter unavailable", zap.Error(err))
		} else if !ok {
			p.fail(w, ErrRateLimited)
			return
		}
	}

	resp, err := p.forward(r, apiKey, req.Messages)
	if err != nil {
		p.fail(w, err)
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	n, err := relay(w, resp.Body)
	p.metrics.ChatStreamBytes.Add(float64(n))
	if err != nil {
		p.metrics.ChatRequests.WithLabelValues("interrupted").Inc()
		p.logger.Debug("chat stream interrupted", zap.Int64("bytes", n), zap.Error(err))
		return
	}
	p.metrics.ChatRequests.WithLabelValues(outcome(nil)).Inc()
}

// forward sends the conversation upstream. A non-nil response is always 2xx.
func (p *Proxy) forward(r *http.Request, apiKey string, msgs []llm.Message) (*http.Response, error) {
	body, err := json.Marshal(llm.ChatCompletionRequest(p.opts.Model, llm.WithSystem(p.opts.System, msgs)))
	if err != nil {
		return nil, fmt.Errorf("encoding gateway request: %w", err)
	}

	url := strings.TrimSuffix(p.opts.BaseURL, "/") + "/chat/completions"
	upReq, err := http.NewRequestWithContext(r.Context(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building gateway request: %w", err)
	}
	upReq.Header.Set("Authorization", "Bearer "+apiKey)
	upReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(upReq)
	if err != nil {
		return nil, fmt.Errorf("calling gateway: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(detail)}
	}
	return resp, nil
}

func (p *Proxy) fail(w http.ResponseWriter, err error) {
	status, msg := classify(err)
	p.metrics.ChatRequests.WithLabelValues(outcome(err)).Inc()

	var ue *UpstreamError
	if errors.As(err, &ue) {
		p.logger.Error("gateway error", zap.Int("status", ue.Status), zap.String("body", ue.Body))
	} else if status == http.StatusInternalServerError {
		p.logger.Error("chat request failed", zap.Error(err))
	}
	writeJSON(w, status, errorBody{Error: msg})
}

// relay copies src to w, flushing after every chunk so events reach the
// client as the gateway produces them.
func relay(w http.ResponseWriter, src io.Reader) (int64, error) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 32<<10)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			written, werr := w.Write(buf[:n])
			total += int64(written)
			if werr != nil {
				return total, werr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", AllowedHeaders)
}

// clientKey identifies the caller for rate limiting. RemoteAddr already
// reflects X-Forwarded-For when the RealIP middleware runs first.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
