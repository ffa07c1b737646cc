package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// GatewayProvider implements Provider against an OpenAI-compatible
// inference gateway.
type GatewayProvider struct {
	client *openai.Client
	model  string
}

// NewGatewayProvider creates a provider for the gateway at baseURL
// (e.g. https://ai.gateway.lovable.dev/v1). A nil httpClient uses the
// library default.
func NewGatewayProvider(baseURL, apiKey, model string, httpClient *http.Client) *GatewayProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &GatewayProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *GatewayProvider) Name() string {
	return "gateway"
}

func (p *GatewayProvider) Stream(ctx context.Context, req CompletionRequest, onDelta func(string) error) error {
	stream, err := p.client.CreateChatCompletionStream(ctx, ChatCompletionRequest(p.modelFor(req), WithSystem(req.System, req.Messages)))
	if err != nil {
		return wrapStatus(err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return wrapStatus(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if delta := resp.Choices[0].Delta.Content; delta != "" {
			if err := onDelta(delta); err != nil {
				return err
			}
		}
	}
}

func (p *GatewayProvider) modelFor(req CompletionRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return p.model
}

// ChatCompletionRequest builds the streamed request body the gateway expects.
func ChatCompletionRequest(model string, msgs []Message) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	}
}

// StatusError carries the HTTP status of a failed gateway call.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned %d: %v", e.Status, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

func wrapStatus(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &StatusError{Status: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &StatusError{Status: reqErr.HTTPStatusCode, Err: err}
	}
	return err
}
