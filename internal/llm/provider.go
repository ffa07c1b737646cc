package llm

import "context"

// Provider streams chat completions.
type Provider interface {
	// Stream sends the request and calls onDelta with each content fragment
	// as it arrives. An error from onDelta aborts the stream.
	Stream(ctx context.Context, req CompletionRequest, onDelta func(string) error) error
	// Name returns the name of this provider.
	Name() string
}
