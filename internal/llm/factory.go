package llm

import (
	"fmt"
	"net/http"
)

// NewProvider creates the gateway provider, reading the credential from the
// environment variable named keyEnv via getenv.
func NewProvider(baseURL, model, keyEnv string, getenv func(string) string, httpClient *http.Client) (Provider, error) {
	apiKey := getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not configured", keyEnv)
	}
	return NewGatewayProvider(baseURL, apiKey, model, httpClient), nil
}
