package chat

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingCredential means the gateway key variable is unset.
	ErrMissingCredential = errors.New("gateway credential is not configured")
	// ErrRateLimited is returned when the caller or the gateway throttles.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrUpstreamUnavailable is the gateway's payment-required condition.
	ErrUpstreamUnavailable = errors.New("upstream temporarily unavailable")
)

// Messages sent to callers for each failure class.
const (
	msgRateLimited = "Rate limit exceeded. Please try again shortly."
	msgUnavailable = "AI service temporarily unavailable."
	msgUpstream    = "AI service error"
)

// UpstreamError is a non-success answer from the gateway.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gateway responded %d", e.Status)
}

// Unwrap maps the gateway status onto the package sentinels.
func (e *UpstreamError) Unwrap() error {
	switch e.Status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrUpstreamUnavailable
	}
	return nil
}

// credentialError names the missing variable.
type credentialError struct {
	Var string
}

func (e *credentialError) Error() string { return e.Var + " is not configured" }

func (e *credentialError) Unwrap() error { return ErrMissingCredential }

// classify returns the HTTP status and caller-facing message for err.
func classify(err error) (int, string) {
	var ce *credentialError
	switch {
	case errors.As(err, &ce):
		return http.StatusInternalServerError, ce.Error()
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, msgRateLimited
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusPaymentRequired, msgUnavailable
	}
	return http.StatusInternalServerError, msgUpstream
}

// outcome is the metrics label for err.
func outcome(err error) string {
	switch {
	case err == nil:
		return "streamed"
	case errors.Is(err, ErrMissingCredential):
		return "unconfigured"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "unavailable"
	}
	return "upstream_error"
}
